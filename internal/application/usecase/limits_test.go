package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/usecase"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

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

type fakeClubRepo struct {
	clubs map[string]*entity.Club
}

func (f *fakeClubRepo) Create(c *entity.Club) error { f.clubs[c.ID] = c; return nil }
func (f *fakeClubRepo) GetByID(id string) (*entity.Club, error) {
	return f.clubs[id], nil
}
func (f *fakeClubRepo) ListByOwner(ownerID string) ([]*entity.Club, error) {
	var out []*entity.Club
	for _, c := range f.clubs {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeClubRepo) CountByOwner(ownerID string) (int, error) {
	n := 0
	for _, c := range f.clubs {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}
func (f *fakeClubRepo) Update(c *entity.Club) error { f.clubs[c.ID] = c; return nil }

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.employees[e.ID] = e; return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.employees[id], nil
}
func (f *fakeEmployeeRepo) ListByOwner(ownerID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.employees {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) CountByOwner(ownerID string) (int, error) {
	n := 0
	for _, e := range f.employees {
		if e.OwnerID == ownerID && e.Active {
			n++
		}
	}
	return n, nil
}
func (f *fakeEmployeeRepo) Update(e *entity.Employee) error { f.employees[e.ID] = e; return nil }
func (f *fakeEmployeeRepo) Delete(id string) error          { delete(f.employees, id); return nil }

func ownerWithPlan(id, plan string) *entity.User {
	u := &entity.User{ID: id, Email: id + "@test.com", Subscription: entity.Subscription{Plan: plan}}
	u.Subscription.ApplyPlan()
	return u
}

// ── Tests de límites de suscripción ───────────────────────────────────────────

func TestClubCreate_RespetaElLimiteDelPlan(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner1": ownerWithPlan("owner1", entity.PlanBasico), // 1 club
	}}
	clubs := &fakeClubRepo{clubs: map[string]*entity.Club{}}
	uc := usecase.NewClubUseCase(clubs, users)

	first, err := uc.Create("owner1", dto.CreateClubRequest{Name: "Club Centro"})
	require.NoError(t, err)

	// El primer club queda como principal.
	owner, _ := users.GetByID("owner1")
	assert.Equal(t, first.ID, owner.PrincipalClubID)

	_, err = uc.Create("owner1", dto.CreateClubRequest{Name: "Club Norte"})
	assert.ErrorIs(t, err, domain.ErrLimitReached, "el plan básico permite un solo club")
}

func TestClubCreate_PremiumPermiteTres(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner1": ownerWithPlan("owner1", entity.PlanPremium), // 3 clubs
	}}
	clubs := &fakeClubRepo{clubs: map[string]*entity.Club{}}
	uc := usecase.NewClubUseCase(clubs, users)

	for _, name := range []string{"Centro", "Norte", "Sur"} {
		_, err := uc.Create("owner1", dto.CreateClubRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := uc.Create("owner1", dto.CreateClubRequest{Name: "Oeste"})
	assert.ErrorIs(t, err, domain.ErrLimitReached)
}

func TestEmployeeCreate_RespetaElLimiteYHasheaLaContrasena(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner1": ownerWithPlan("owner1", entity.PlanBasico), // 2 empleados
	}}
	employees := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	uc := usecase.NewEmployeeUseCase(employees, users)

	newEmp := func(name, email string) dto.CreateEmployeeRequest {
		return dto.CreateEmployeeRequest{
			ClubID: "c1", Name: name, Email: email,
			Role: "employee", TempPassword: "cambiar123",
		}
	}

	emp, err := uc.Create("owner1", newEmp("Ana", "ana@test.com"))
	require.NoError(t, err)

	stored := employees.employees[emp.ID]
	assert.NotEqual(t, "cambiar123", stored.TempPasswordHash, "la contraseña nunca se guarda en claro")
	assert.NotEmpty(t, stored.TempPasswordHash)
	assert.True(t, stored.Active)

	_, err = uc.Create("owner1", newEmp("Luis", "luis@test.com"))
	require.NoError(t, err)

	limit, err := uc.CheckLimit("owner1")
	require.NoError(t, err)
	assert.True(t, limit.ExceedsLimit)
	assert.Equal(t, 2, limit.CurrentCount)
	assert.Equal(t, 2, limit.MaxAllowed)

	_, err = uc.Create("owner1", newEmp("Eva", "eva@test.com"))
	assert.ErrorIs(t, err, domain.ErrLimitReached)
}

func TestEmployeeUpdate_SoloElDueno(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner1": ownerWithPlan("owner1", entity.PlanPremium),
	}}
	employees := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	uc := usecase.NewEmployeeUseCase(employees, users)

	emp, err := uc.Create("owner1", dto.CreateEmployeeRequest{
		ClubID: "c1", Name: "Ana", Email: "ana@test.com",
		Role: "employee", TempPassword: "cambiar123",
	})
	require.NoError(t, err)

	_, err = uc.Update(emp.ID, "otro-dueno", dto.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
