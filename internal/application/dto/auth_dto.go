package dto

import "time"

// RegistarEmpresaRequest body para POST /api/auth/registar: cria a empresa
// (tenant) e o seu primeiro utilizador admin num só passo.
type RegistarEmpresaRequest struct {
	NomeEmpresa string `json:"nome_empresa"`
	NIF         string `json:"nif"`
	Regime      string `json:"regime,omitempty"` // geral | simplificado | exclusao
	NomeUser    string `json:"nome_user"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse utilizador nas respostas da API (nunca inclui o hash).
type UserResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse resposta do login: token JWT e utilizador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
