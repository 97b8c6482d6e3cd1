package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lims-api/internal/application/auth"
	"github.com/jhoicas/lims-api/internal/application/dto"
	"github.com/jhoicas/lims-api/internal/domain"
	"github.com/jhoicas/lims-api/internal/domain/entity"
	"github.com/jhoicas/lims-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/lims-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(memory.NewStore()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "lims-api-test",
	})
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "jperez",
		Email:    "jperez@lab.local",
		Password: "contrasena-segura",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaConRolPorDefecto(t *testing.T) {
	uc := newAuthUC()

	user, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jperez", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role, "sin rol explícito el usuario queda como user")
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "otro@lab.local"
	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Username = "otro"
	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := newAuthUC()
	in := registerReq()
	in.Role = "superadmin"
	_, err := uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenIncluyeClaims(t *testing.T) {
	uc := newAuthUC()
	in := registerReq()
	in.Role = entity.RoleAdmin
	registered, err := uc.RegisterUser(in)
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: in.Email, Password: in.Password})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "jperez", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC()
	in := registerReq()
	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: in.Email, Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@lab.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
