// Package auth implementa o registo de empresas (tenant + primeiro admin) e
// o login com emissão de JWT.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	domfiscal "github.com/omunga/faturacao-api/internal/domain/fiscal"
	"github.com/omunga/faturacao-api/internal/domain/repository"
	"github.com/omunga/faturacao-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: registo e login.
type UseCase struct {
	userRepo    repository.UserRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// RegistarEmpresa cria a empresa e o seu primeiro utilizador (admin). O NIF
// da empresa é validado; a password é guardada com bcrypt.
func (uc *UseCase) RegistarEmpresa(in dto.RegistarEmpresaRequest) (*dto.LoginResponse, error) {
	campos := map[string]string{}
	if in.NomeEmpresa == "" {
		campos["nome_empresa"] = "obrigatório"
	}
	if err := domfiscal.ValidarNIF(in.NIF); err != nil {
		campos["nif"] = err.Error()
	}
	if in.Email == "" {
		campos["email"] = "obrigatório"
	}
	if len(in.Password) < 8 {
		campos["password"] = "mínimo de 8 caracteres"
	}
	if len(campos) > 0 {
		return nil, domain.NewValidationError(campos)
	}

	if existente, _ := uc.userRepo.GetByEmail(in.Email); existente != nil {
		return nil, domain.ErrEmailJaRegistado
	}
	if existente, _ := uc.empresaRepo.GetByNIF(in.NIF); existente != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	regime := in.Regime
	if regime == "" {
		regime = "geral"
	}
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      in.NomeEmpresa,
		NIF:       in.NIF,
		Regime:    regime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.empresaRepo.Create(empresa); err != nil {
		return nil, err
	}

	nome := in.NomeUser
	if nome == "" {
		nome = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		EmpresaID:    empresa.ID,
		Nome:         nome,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EmpresaID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password, gera o JWT e devolve token + utilizador.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EmpresaID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		EmpresaID: u.EmpresaID,
		Nome:      u.Nome,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
