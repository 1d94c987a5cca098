package dto

// AtualizarEmpresaRequest body para PUT /api/empresa. O NIF não é editável
// depois do registo.
type AtualizarEmpresaRequest struct {
	Nome     string `json:"nome,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	Regime   string `json:"regime,omitempty"` // geral | simplificado | exclusao
}

// EmpresaResponse perfil da empresa nas respostas da API.
type EmpresaResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	NIF      string `json:"nif"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	Regime   string `json:"regime"`
}
