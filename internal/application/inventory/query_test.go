package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	domaininv "github.com/Gloweldev/ArximiaBackend/internal/domain/inventory"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }

func newQuery(users map[string]*entity.User, products ...*entity.Product) (*inventory.QueryUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{movRepo: &fakeMovementRepo{}, invRepo: newFakeInventoryRepo()}
	productRepo := newFakeProductRepo(products...)
	if users == nil {
		users = map[string]*entity.User{}
	}
	query := inventory.NewQueryUseCase(runner.invRepo, runner.movRepo, productRepo, &fakeUserRepo{users: users})
	return query, runner
}

func TestGetOrCreate_CreaRegistroEnCeroLaPrimeraVez(t *testing.T) {
	query, _ := newQuery(nil, preparedProduct("p1", "c1", 12))
	ctx := context.Background()

	rec, created, err := query.GetOrCreate(ctx, "p1", "c1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Zero(t, rec.Sealed)
	assert.Zero(t, rec.Preparation.CurrentPortions)
	// La definición de porciones se siembra del catálogo.
	assert.Equal(t, 12, rec.Preparation.PortionsPerUnit)

	// Segunda lectura: mismo registro, ya no es creación.
	again, created, err := query.GetOrCreate(ctx, "p1", "c1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, rec.ID, again.ID)
}

func TestGetOrCreate_ProductoInexistente(t *testing.T) {
	query, _ := newQuery(nil)
	_, _, err := query.GetOrCreate(context.Background(), "fantasma", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByClub_EstadosContraElIdealDelDueno(t *testing.T) {
	users := map[string]*entity.User{
		"owner1": {ID: "owner1", IdealStock: 5},
	}
	query, runner := newQuery(users, sealedProduct("p1", "c1"), sealedProduct("p2", "c1"), sealedProduct("p3", "c1"))
	engine := inventory.NewRegisterMovementUseCase(runner, newFakeProductRepo(
		sealedProduct("p1", "c1"), sealedProduct("p2", "c1"), sealedProduct("p3", "c1"),
	))
	ctx := context.Background()

	for id, qty := range map[string]int{"p1": 10, "p2": 3} {
		_, err := engine.Apply(ctx, inventory.MovementInput{
			ProductID: id, ClubID: "c1", Type: entity.MovementCompra,
			Unit: entity.UnitSealed, Quantity: qty, UserID: "u1",
		})
		require.NoError(t, err)
	}
	// p3 existe pero con saldo cero.
	_, _, err := query.GetOrCreate(ctx, "p3", "c1")
	require.NoError(t, err)

	items, err := query.ListByClub(ctx, "c1", "owner1")
	require.NoError(t, err)
	require.Len(t, items, 3)

	statusByProduct := make(map[string]domaininv.Status)
	for _, it := range items {
		require.NotNil(t, it.Product, "cada fila lleva su producto del catálogo")
		statusByProduct[it.Record.ProductID] = it.SealedStatus
	}
	assert.Equal(t, domaininv.StatusNormal, statusByProduct["p1"])   // 10 >= 5
	assert.Equal(t, domaininv.StatusLow, statusByProduct["p2"])      // 0 < 3 < 5
	assert.Equal(t, domaininv.StatusCritical, statusByProduct["p3"]) // 0
}

func TestListByClub_SinDuenoUsaElIdealPorDefecto(t *testing.T) {
	query, runner := newQuery(nil, sealedProduct("p1", "c1"))
	engine := inventory.NewRegisterMovementUseCase(runner, newFakeProductRepo(sealedProduct("p1", "c1")))

	_, err := engine.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitSealed, Quantity: 4, UserID: "u1",
	})
	require.NoError(t, err)

	items, err := query.ListByClub(context.Background(), "c1", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domaininv.StatusLow, items[0].SealedStatus) // 4 < 5 por defecto
}
