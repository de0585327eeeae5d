package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	records map[string]*entity.InventoryRecord // clave productID|clubID
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: make(map[string]*entity.InventoryRecord)}
}

func invKey(productID, clubID string) string { return productID + "|" + clubID }

func (f *fakeInventoryRepo) Get(productID, clubID string) (*entity.InventoryRecord, error) {
	return f.records[invKey(productID, clubID)], nil
}

func (f *fakeInventoryRepo) GetForUpdate(productID, clubID string) (*entity.InventoryRecord, error) {
	return f.records[invKey(productID, clubID)], nil
}

func (f *fakeInventoryRepo) Create(rec *entity.InventoryRecord) error {
	key := invKey(rec.ProductID, rec.ClubID)
	if _, ok := f.records[key]; ok {
		return nil // ON CONFLICT DO NOTHING
	}
	f.records[key] = rec
	return nil
}

func (f *fakeInventoryRepo) Upsert(rec *entity.InventoryRecord) error {
	f.records[invKey(rec.ProductID, rec.ClubID)] = rec
	return nil
}

func (f *fakeInventoryRepo) ListByClub(clubID string) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, r := range f.records {
		if r.ClubID == clubID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(f.movements) - 1; i >= 0; i-- {
		if f.movements[i].ProductID == productID {
			out = append(out, f.movements[i])
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListForReplay(productID, clubID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.ProductID == productID && m.ClubID == clubID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) ListByClub(clubID string, includeArchived bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.ClubID == clubID && (includeArchived || !p.Archived) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) SearchByName(clubID, prefix string, limit int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) SetArchived(id string, a bool) error {
	f.products[id].Archived = a
	return nil
}

// fakeTxRunner serializa los callbacks con un mutex: emula el bloqueo de
// fila de la transacción real.
type fakeTxRunner struct {
	mu      sync.Mutex
	movRepo *fakeMovementRepo
	invRepo *fakeInventoryRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.movRepo, f.invRepo)
}

// firstWriteRaceRepo emula la semántica real del primer movimiento: FOR
// UPDATE sobre una fila ausente no bloquea nada, así que otro escritor puede
// confirmar su primer movimiento entre nuestra lectura nil y nuestro INSERT
// (que entonces entra en conflicto y no inserta). La primera lectura devuelve
// nil; las siguientes ven la fila del ganador.
type firstWriteRaceRepo struct {
	*fakeInventoryRepo
	sawAbsent bool
}

func (f *firstWriteRaceRepo) GetForUpdate(productID, clubID string) (*entity.InventoryRecord, error) {
	if !f.sawAbsent {
		f.sawAbsent = true
		return nil, nil
	}
	return f.fakeInventoryRepo.GetForUpdate(productID, clubID)
}

// raceTxRunner como fakeTxRunner pero con el repo de inventario intercambiable.
type raceTxRunner struct {
	movRepo *fakeMovementRepo
	invRepo repository.InventoryRepository
}

func (f *raceTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
) error) error {
	return fn(f.movRepo, f.invRepo)
}

func newEngine(products ...*entity.Product) (*inventory.RegisterMovementUseCase, *fakeTxRunner, *fakeProductRepo) {
	runner := &fakeTxRunner{movRepo: &fakeMovementRepo{}, invRepo: newFakeInventoryRepo()}
	productRepo := newFakeProductRepo(products...)
	return inventory.NewRegisterMovementUseCase(runner, productRepo), runner, productRepo
}

func sealedProduct(id, clubID string) *entity.Product {
	return &entity.Product{ID: id, ClubID: clubID, Type: entity.ProductSealed, Name: "Proteína Gold"}
}

func preparedProduct(id, clubID string, portions int) *entity.Product {
	return &entity.Product{ID: id, ClubID: clubID, Type: entity.ProductPrepared, Name: "Creatina", Portions: portions}
}

// ── Tests del motor de movimientos ────────────────────────────────────────────

func TestApply_CompraCreaRegistroPerezosamente(t *testing.T) {
	engine, runner, _ := newEngine(sealedProduct("p1", "c1"))

	rec, err := engine.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", ClubID: "c1",
		Type: entity.MovementCompra, Unit: entity.UnitSealed,
		Quantity: 10, UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Sealed)
	assert.Len(t, runner.movRepo.movements, 1)
	assert.Equal(t, entity.MovementCompra, runner.movRepo.movements[0].Type)
}

func TestApply_SecuenciaDeVentasHastaAgotarStock(t *testing.T) {
	engine, runner, _ := newEngine(sealedProduct("p1", "c1"))
	ctx := context.Background()

	_, err := engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitSealed, Quantity: 10, UserID: "u1",
	})
	require.NoError(t, err)

	for _, qty := range []int{3, 4, 3} {
		_, err := engine.Apply(ctx, inventory.MovementInput{
			ProductID: "p1", ClubID: "c1", Type: entity.MovementVenta,
			Unit: entity.UnitSealed, Quantity: qty, UserID: "u1",
		})
		require.NoError(t, err)
	}

	rec, _ := runner.invRepo.Get("p1", "c1")
	assert.Equal(t, 0, rec.Sealed)

	// Stock agotado: la siguiente venta se rechaza sin escritura parcial.
	movsBefore := len(runner.movRepo.movements)
	_, err = engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementVenta,
		Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, runner.movRepo.movements, movsBefore, "el rechazo no debe anotar movimiento")

	rec, _ = runner.invRepo.Get("p1", "c1")
	assert.Equal(t, 0, rec.Sealed, "el saldo no cambia tras el rechazo")
}

func TestApply_CompraPorPorcionUsaPorcionesPorEnvase(t *testing.T) {
	engine, runner, _ := newEngine(preparedProduct("p2", "c1", 20))
	ctx := context.Background()

	// Compra de 2 envases con 20 porciones cada uno.
	rec, err := engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p2", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitPortion, Quantity: 2, UserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Preparation.Units)
	assert.Equal(t, 40, rec.Preparation.CurrentPortions)

	// Consumir más porciones de las disponibles se rechaza.
	_, err = engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p2", ClubID: "c1", Type: entity.MovementUso,
		Unit: entity.UnitPortion, Quantity: 45, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := runner.invRepo.Get("p2", "c1")
	assert.Equal(t, 40, got.Preparation.CurrentPortions)
}

func TestApply_CombinacionInvalidaFallaAntesDeLaTransaccion(t *testing.T) {
	engine, runner, _ := newEngine(sealedProduct("p1", "c1"))

	_, err := engine.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementUso,
		Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.movRepo.movements)
	assert.Empty(t, runner.invRepo.records)
}

func TestApply_ValidacionesDeEntrada(t *testing.T) {
	engine, _, _ := newEngine(sealedProduct("p1", "c1"))
	ctx := context.Background()

	_, err := engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementVenta, Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField, "club_id requerido")

	_, err = engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementVenta, Unit: entity.UnitSealed, Quantity: 0, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = engine.Apply(ctx, inventory.MovementInput{
		ProductID: "inexistente", ClubID: "c1", Type: entity.MovementVenta, Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos ventas concurrentes sobre la última unidad: exactamente una gana.
func TestApply_VentasConcurrentesSobreUltimaUnidad(t *testing.T) {
	engine, _, _ := newEngine(sealedProduct("p1", "c1"))
	ctx := context.Background()

	_, err := engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
	})
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Apply(ctx, inventory.MovementInput{
				ProductID: "p1", ClubID: "c1", Type: entity.MovementVenta,
				Unit: entity.UnitSealed, Quantity: 1, UserID: "u1",
			})
		}(i)
	}
	wg.Wait()

	ok, insufficient := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "solo una venta debe ganar la última unidad")
	assert.Equal(t, n-1, insufficient)
}

// El perdedor de la carrera del primer movimiento debe continuar con la fila
// que ganó el INSERT, no con su registro en memoria: de lo contrario su
// Upsert pisa el saldo del ganador y el log deja de coincidir con el caché.
func TestApply_PerdedorDelPrimerMovimientoUsaLaFilaGanadora(t *testing.T) {
	now := time.Now()
	base := newFakeInventoryRepo()
	winner := entity.NewInventoryRecord("rec-ganador", "p1", "c1", 0, now)
	winner.Sealed = 5
	require.NoError(t, base.Create(winner))

	movRepo := &fakeMovementRepo{movements: []*entity.Movement{{
		ID: "m-ganador", ProductID: "p1", ClubID: "c1",
		Type: entity.MovementCompra, Unit: entity.UnitSealed, Quantity: 5,
		UserID: "u1", Date: now,
	}}}
	runner := &raceTxRunner{movRepo: movRepo, invRepo: &firstWriteRaceRepo{fakeInventoryRepo: base}}
	engine := inventory.NewRegisterMovementUseCase(runner, newFakeProductRepo(sealedProduct("p1", "c1")))

	rec, err := engine.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitSealed, Quantity: 5, UserID: "u2",
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-ganador", rec.ID, "debe operar sobre la fila que ganó el INSERT")

	// El saldo cacheado cuenta ambas compras, igual que el log.
	total := 0
	for _, m := range movRepo.movements {
		total += m.Quantity
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, 10, rec.Sealed)

	stored, _ := base.Get("p1", "c1")
	assert.Equal(t, 10, stored.Sealed)
}

// Mismo caso para la reconstrucción: si la fila aparece entre la lectura nil
// y el INSERT, el repliegue debe aterrizar sobre la fila ganadora.
func TestRebuildFromLog_RegistroRecienCreadoReplegaSobreLaFilaGanadora(t *testing.T) {
	now := time.Now()
	base := newFakeInventoryRepo()
	winner := entity.NewInventoryRecord("rec-ganador", "p1", "c1", 0, now)
	winner.Sealed = 5
	require.NoError(t, base.Create(winner))

	movRepo := &fakeMovementRepo{movements: []*entity.Movement{{
		ID: "m-ganador", ProductID: "p1", ClubID: "c1",
		Type: entity.MovementCompra, Unit: entity.UnitSealed, Quantity: 5,
		UserID: "u1", Date: now,
	}}}
	runner := &raceTxRunner{movRepo: movRepo, invRepo: &firstWriteRaceRepo{fakeInventoryRepo: base}}
	engine := inventory.NewRegisterMovementUseCase(runner, newFakeProductRepo(sealedProduct("p1", "c1")))

	rebuilt, err := engine.RebuildFromLog(context.Background(), "p1", "c1")
	require.NoError(t, err)

	assert.Equal(t, "rec-ganador", rebuilt.ID)
	assert.Equal(t, 5, rebuilt.Sealed, "el repliegue del log reproduce el saldo del ganador")
}

func TestRebuildFromLog_ReponeSaldosCorruptos(t *testing.T) {
	engine, runner, _ := newEngine(preparedProduct("p2", "c1", 10))
	ctx := context.Background()

	_, err := engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p2", ClubID: "c1", Type: entity.MovementCompra,
		Unit: entity.UnitPortion, Quantity: 3, UserID: "u1",
	})
	require.NoError(t, err)
	_, err = engine.Apply(ctx, inventory.MovementInput{
		ProductID: "p2", ClubID: "c1", Type: entity.MovementVenta,
		Unit: entity.UnitPortion, Quantity: 12, UserID: "u1",
	})
	require.NoError(t, err)

	// Corromper el saldo cacheado por fuera del motor.
	rec, _ := runner.invRepo.Get("p2", "c1")
	rec.Preparation.CurrentPortions = 7777

	rebuilt, err := engine.RebuildFromLog(ctx, "p2", "c1")
	require.NoError(t, err)
	assert.Equal(t, 18, rebuilt.Preparation.CurrentPortions) // 3*10 - 12
	assert.Equal(t, 3, rebuilt.Preparation.Units)
}
