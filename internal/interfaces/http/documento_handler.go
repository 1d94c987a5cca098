package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/application/fiscal"
)

// DocumentoHandler trata o ciclo de vida dos documentos fiscais (protegido).
type DocumentoHandler struct {
	svc   *fiscal.Service
	pdfUC *fiscal.PDFUseCase
}

// NewDocumentoHandler constrói o handler.
func NewDocumentoHandler(svc *fiscal.Service, pdfUC *fiscal.PDFUseCase) *DocumentoHandler {
	return &DocumentoHandler{svc: svc, pdfUC: pdfUC}
}

// Emitir emite um documento novo (FT, FR, FP, FA ou FRt).
// POST /api/documentos-fiscais/emitir
func (h *DocumentoHandler) Emitir(c *fiber.Ctx) error {
	var in dto.EmitirDocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.Emitir(c.Context(), GetEmpresaID(c), GetUserID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// GetByID devolve o documento com itens e saldo pendente.
// GET /api/documentos-fiscais/:id
func (h *DocumentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetDocumento(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// List lista documentos com filtros de tipo, estado, cliente e datas.
// GET /api/documentos-fiscais
func (h *DocumentoHandler) List(c *fiber.Ctx) error {
	var in dto.ListarDocumentosRequest
	if err := c.QueryParser(&in); err != nil {
		return BadRequest(c, "parâmetros de consulta inválidos")
	}
	out, err := h.svc.ListDocumentos(c.Context(), GetEmpresaID(c), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// GerarRecibo gera um RC sobre uma FT ou FA.
// POST /api/documentos-fiscais/:id/recibo
func (h *DocumentoHandler) GerarRecibo(c *fiber.Ctx) error {
	var in dto.GerarReciboRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.GerarRecibo(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// NotaCredito deriva uma NC de uma FT ou FR.
// POST /api/documentos-fiscais/:id/nota-credito
func (h *DocumentoHandler) NotaCredito(c *fiber.Ctx) error {
	var in dto.NotaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.CriarNotaCredito(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// NotaDebito deriva uma ND de uma FT ou FR.
// POST /api/documentos-fiscais/:id/nota-debito
func (h *DocumentoHandler) NotaDebito(c *fiber.Ctx) error {
	var in dto.NotaRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.CriarNotaDebito(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return Created(c, out)
}

// VincularAdiantamento aplica o valor de um FA a uma FT.
// POST /api/documentos-fiscais/adiantamentos/:id/vincular
func (h *DocumentoHandler) VincularAdiantamento(c *fiber.Ctx) error {
	var in dto.VincularAdiantamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.VincularAdiantamento(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// Cancelar transita o documento para cancelado (sem reposição de stock).
// POST /api/documentos-fiscais/:id/cancelar
func (h *DocumentoHandler) Cancelar(c *fiber.Ctx) error {
	var in dto.CancelarRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest(c, "corpo do pedido inválido")
	}
	out, err := h.svc.Cancelar(c.Context(), GetEmpresaID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, out)
}

// ProcessarExpirados varre os FA vencidos e marca-os como expirados.
// POST /api/documentos-fiscais/processar-expirados
func (h *DocumentoHandler) ProcessarExpirados(c *fiber.Ctx) error {
	n, err := h.svc.ProcessarExpirados(c.Context(), GetEmpresaID(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.Map{"expirados": n})
}

// DownloadPDF devolve a representação gráfica A4 do documento.
// GET /api/documentos-fiscais/:id/pdf
func (h *DocumentoHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, nome, err := h.pdfUC.DownloadDocumentoPDF(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return Fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdfBytes)
}
