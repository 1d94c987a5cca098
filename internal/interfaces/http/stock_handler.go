package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/stock"
)

// StockHandler trata os movimentos manuais e o histórico do livro de stock
// (protegido). As saídas por venda não passam por aqui: são registadas pela
// emissão do documento fiscal.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegistarMovimento regista uma entrada, saída por ajuste ou devolução.
// POST /api/stock/movimentos
func (h *StockHandler) RegistarMovimento(c *fiber.Ctx) error {
	var in dto.RegistarMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.uc.RegistarMovimento(c.Context(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// List lista movimentos da empresa, ou de um produto se ?produto_id for dado.
// GET /api/stock/movimentos
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return BadRequest(c, "parâmetros de consulta inválidos")
	}
	page.DefaultPage()

	var (
		list  []*dto.MovimentoStockResponse
		total int
		err   error
	)
	if produtoID := c.Query("produto_id"); produtoID != "" {
		list, total, err = h.uc.HistoricoProduto(c.Context(), GetEmpresaID(c), produtoID, page)
	} else {
		list, total, err = h.uc.ListMovimentos(c.Context(), GetEmpresaID(c), page)
	}
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.Map{
		"movimentos": list,
		"page":       dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}
