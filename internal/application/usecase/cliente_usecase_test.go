package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/usecase"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
)

type fakeClienteRepo struct {
	porID map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{porID: map[string]*entity.Cliente{}}
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	r.porID[c.ID] = c
	return nil
}
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return r.porID[id], nil }
func (r *fakeClienteRepo) GetByEmpresaENIF(empresaID, nif string) (*entity.Cliente, error) {
	for _, c := range r.porID {
		if c.EmpresaID == empresaID && c.NIF == nif {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	r.porID[c.ID] = c
	return nil
}
func (r *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, int, error) {
	return nil, 0, nil
}
func (r *fakeClienteRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeFornecedorRepo struct {
	porID map[string]*entity.Fornecedor
}

func newFakeFornecedorRepo() *fakeFornecedorRepo {
	return &fakeFornecedorRepo{porID: map[string]*entity.Fornecedor{}}
}

func (r *fakeFornecedorRepo) Create(f *entity.Fornecedor) error {
	r.porID[f.ID] = f
	return nil
}
func (r *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) { return r.porID[id], nil }
func (r *fakeFornecedorRepo) Update(f *entity.Fornecedor) error {
	r.porID[f.ID] = f
	return nil
}
func (r *fakeFornecedorRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Fornecedor, int, error) {
	return nil, 0, nil
}
func (r *fakeFornecedorRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

// ──────────────────────────────────────────────
// Clientes: validação do NIF nos tipos empresa
// ──────────────────────────────────────────────

func TestCriarCliente_EmpresaComNIFValido(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	resp, err := uc.Create("empresa-1", dto.CriarClienteRequest{
		Nome: "Sociedade Kilamba, Lda",
		Tipo: entity.TipoClienteEmpresa,
		NIF:  "5417283946",
	})
	require.NoError(t, err)
	assert.Equal(t, "5417283946", resp.NIF)
}

func TestCriarCliente_EmpresaComNIFInvalido(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	_, err := uc.Create("empresa-1", dto.CriarClienteRequest{
		Nome: "Sociedade Kilamba, Lda",
		Tipo: entity.TipoClienteEmpresa,
		NIF:  "123",
	})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Campos, "nif")
}

func TestCriarCliente_ConsumidorFinalSemNIF(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	resp, err := uc.Create("empresa-1", dto.CriarClienteRequest{
		Nome: "Maria Domingos",
		Tipo: entity.TipoClienteConsumidorFinal,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.NIF)
}

func TestAtualizarCliente_EmpresaNIFInvalidoRejeitado(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := usecase.NewClienteUseCase(repo)

	criado, err := uc.Create("empresa-1", dto.CriarClienteRequest{
		Nome: "Sociedade Kilamba, Lda",
		Tipo: entity.TipoClienteEmpresa,
		NIF:  "5417283946",
	})
	require.NoError(t, err)

	nif := "abc"
	_, err = uc.Update("empresa-1", criado.ID, dto.AtualizarClienteRequest{NIF: &nif})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Campos, "nif")

	// o cliente mantém o NIF original
	atual, err := uc.GetByID("empresa-1", criado.ID)
	require.NoError(t, err)
	assert.Equal(t, "5417283946", atual.NIF)
}

// ──────────────────────────────────────────────
// Fornecedores: NIF é opcional mas validado
// ──────────────────────────────────────────────

func TestCriarFornecedor_NIFInvalido(t *testing.T) {
	uc := usecase.NewFornecedorUseCase(newFakeFornecedorRepo())

	_, err := uc.Create("empresa-1", dto.FornecedorRequest{Nome: "Importadora Benguela", NIF: "999"})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Campos, "nif")
}

func TestCriarFornecedor_SemNIF(t *testing.T) {
	uc := usecase.NewFornecedorUseCase(newFakeFornecedorRepo())

	resp, err := uc.Create("empresa-1", dto.FornecedorRequest{Nome: "Importadora Benguela"})
	require.NoError(t, err)
	assert.Empty(t, resp.NIF)
}

func TestAtualizarFornecedor_NIFInvalidoRejeitado(t *testing.T) {
	uc := usecase.NewFornecedorUseCase(newFakeFornecedorRepo())

	criado, err := uc.Create("empresa-1", dto.FornecedorRequest{Nome: "Importadora Benguela"})
	require.NoError(t, err)

	_, err = uc.Update("empresa-1", criado.ID, dto.FornecedorRequest{NIF: "999"})
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
}
