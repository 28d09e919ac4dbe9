package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storemanager/inventario-api/internal/application/dto"
	"github.com/storemanager/inventario-api/internal/domain"
	"github.com/storemanager/inventario-api/internal/domain/entity"
)

// fakeUsers repositorio de usuarios en memoria.
type fakeUsers struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (f *fakeUsers) Create(u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) GetByID(id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Count() (int64, error) {
	return int64(len(f.byID)), nil
}

func newTestAuth() (*AuthUseCase, *fakeUsers) {
	users := newFakeUsers()
	uc := NewAuthUseCase(users, JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "storemanager-api",
	})
	return uc, users
}

func TestRegisterPrimerUsuarioEsAdmin(t *testing.T) {
	uc, _ := newTestAuth()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "dueno@tienda.com",
		Password: "clave-segura",
		Name:     "Dueño",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	out2, err := uc.Register(dto.RegisterRequest{
		Email:    "cajero@tienda.com",
		Password: "otra-clave",
		Name:     "Cajero",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, out2.Role)
}

func TestRegisterEmailDuplicado(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginOK(t *testing.T) {
	uc, _ := newTestAuth()

	reg, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "12345678", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.com", Password: "12345678"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRoleChecker(t *testing.T) {
	users := newFakeUsers()
	require.NoError(t, users.Create(&entity.User{ID: "u1", Email: "a@b.com", Role: entity.RoleAdmin}))
	require.NoError(t, users.Create(&entity.User{ID: "u2", Email: "c@d.com", Role: entity.RoleEmpleado}))

	checker := NewRoleChecker(users)
	ctx := context.Background()

	ok, err := checker.IsAdmin(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checker.IsAdmin(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	// Usuario desconocido: no-admin, sin error.
	ok, err = checker.IsAdmin(ctx, "fantasma")
	require.NoError(t, err)
	assert.False(t, ok)
}
