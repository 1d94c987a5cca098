package dto

// CriarClienteRequest body para POST /api/clientes. O NIF é validado quando
// o tipo é empresa; consumidores finais podem não ter NIF.
type CriarClienteRequest struct {
	Nome     string `json:"nome"`
	Tipo     string `json:"tipo"` // consumidor_final | empresa
	NIF      string `json:"nif,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// AtualizarClienteRequest body para PUT /api/clientes/:id.
type AtualizarClienteRequest struct {
	Nome     *string `json:"nome,omitempty"`
	NIF      *string `json:"nif,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Endereco *string `json:"endereco,omitempty"`
}

// ClienteResponse cliente nas respostas da API.
type ClienteResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Tipo     string `json:"tipo"`
	NIF      string `json:"nif,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// CategoriaRequest body para criar/atualizar categoria.
type CategoriaRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// CategoriaResponse categoria nas respostas da API.
type CategoriaResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}

// FornecedorRequest body para criar/atualizar fornecedor.
type FornecedorRequest struct {
	Nome     string `json:"nome"`
	NIF      string `json:"nif,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// FornecedorResponse fornecedor nas respostas da API.
type FornecedorResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	NIF      string `json:"nif,omitempty"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}
