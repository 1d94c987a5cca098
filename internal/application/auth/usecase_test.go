package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/application/auth"
	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/pkg/jwt"
)

type fakeUserRepo struct {
	porEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.porEmail[u.Email] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.porEmail[email], nil
}

type fakeEmpresaRepo struct {
	porNIF map[string]*entity.Empresa
}

func (r *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	r.porNIF[e.NIF] = e
	return nil
}
func (r *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) { return nil, nil }
func (r *fakeEmpresaRepo) GetByNIF(nif string) (*entity.Empresa, error) {
	return r.porNIF[nif], nil
}
func (r *fakeEmpresaRepo) Update(e *entity.Empresa) error { return nil }

func newTestUseCase() *auth.UseCase {
	return auth.NewUseCase(
		&fakeUserRepo{porEmail: map[string]*entity.User{}},
		&fakeEmpresaRepo{porNIF: map[string]*entity.Empresa{}},
		auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "faturacao-api"},
	)
}

func TestRegistarEmpresa_CriaAdminEDevolveToken(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.RegistarEmpresa(dto.RegistarEmpresaRequest{
		NomeEmpresa: "Comercial Kwanza, Lda",
		NIF:         "5417283946",
		NomeUser:    "Administrador",
		Email:       "admin@kwanza.ao",
		Password:    "palavra-passe-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.User.EmpresaID)

	// o token transporta o tenant
	userID, empresaID, role, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, resp.User.EmpresaID, empresaID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegistarEmpresa_NIFInvalido(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.RegistarEmpresa(dto.RegistarEmpresaRequest{
		NomeEmpresa: "Empresa X",
		NIF:         "123",
		Email:       "x@x.ao",
		Password:    "palavra-passe",
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Campos, "nif")
}

func TestRegistarEmpresa_EmailDuplicado(t *testing.T) {
	uc := newTestUseCase()

	req := dto.RegistarEmpresaRequest{
		NomeEmpresa: "Empresa A",
		NIF:         "5417283946",
		Email:       "admin@a.ao",
		Password:    "palavra-passe",
	}
	_, err := uc.RegistarEmpresa(req)
	require.NoError(t, err)

	req.NIF = "5998811223"
	_, err = uc.RegistarEmpresa(req)
	require.ErrorIs(t, err, domain.ErrEmailJaRegistado)
}

func TestLogin(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.RegistarEmpresa(dto.RegistarEmpresaRequest{
		NomeEmpresa: "Empresa A",
		NIF:         "5417283946",
		Email:       "admin@a.ao",
		Password:    "palavra-passe",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@a.ao", Password: "palavra-passe"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@a.ao", Password: "errada"})
	require.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)

	_, err = uc.Login(dto.LoginRequest{Email: "ninguem@a.ao", Password: "qualquer"})
	require.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}
