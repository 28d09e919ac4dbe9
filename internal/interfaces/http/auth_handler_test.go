package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storemanager/inventario-api/internal/application/auth"
	"github.com/storemanager/inventario-api/internal/domain"
	"github.com/storemanager/inventario-api/internal/domain/entity"
)

// memUsers repositorio de usuarios en memoria para probar los handlers de auth.
type memUsers struct {
	users map[string]*entity.User
}

func (m *memUsers) Create(u *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Count() (int64, error) {
	return int64(len(m.users)), nil
}

func newAuthApp() *fiber.App {
	uc := auth.NewAuthUseCase(&memUsers{users: make(map[string]*entity.User)}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "storemanager-api",
	})
	app := fiber.New()
	h := NewAuthHandler(uc)
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// El endpoint de registro es público: un caller que mande "role": "admin" en
// el body no puede autoasignarse el rol. El servidor decide: primer usuario
// admin, los demás empleado.
func TestRegisterIgnoraRolDelCaller(t *testing.T) {
	app := newAuthApp()

	status, out := postJSON(t, app, "/api/auth/register",
		`{"email": "dueno@tienda.com", "password": "12345678", "role": "empleado"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, entity.RoleAdmin, out["role"])

	status, out = postJSON(t, app, "/api/auth/register",
		`{"email": "intruso@tienda.com", "password": "12345678", "role": "admin"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, entity.RoleEmpleado, out["role"])
}

func TestRegisterEmailInvalido(t *testing.T) {
	app := newAuthApp()

	status, out := postJSON(t, app, "/api/auth/register",
		`{"email": "no-es-email", "password": "12345678"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out["code"])
}

func TestLoginHandler(t *testing.T) {
	app := newAuthApp()

	status, _ := postJSON(t, app, "/api/auth/register",
		`{"email": "a@b.com", "password": "12345678", "name": "Ana"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, out := postJSON(t, app, "/api/auth/login",
		`{"email": "a@b.com", "password": "12345678"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, out["token"])

	status, out = postJSON(t, app, "/api/auth/login",
		`{"email": "a@b.com", "password": "incorrecta"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", out["code"])
}
