package fiscal

import (
	"context"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// GetDocumento devolve o documento com itens e saldo pendente.
func (s *Service) GetDocumento(ctx context.Context, empresaID, id string) (*dto.DocumentoResponse, error) {
	doc, err := s.docRepo.GetByID(id)
	if err != nil || doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	itens, err := s.docRepo.GetItens(doc.ID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(doc, itens, nil)
	if doc.TipoDocumento.AdmiteRecibo() {
		p, err := s.ValorPendente(doc)
		if err != nil {
			return nil, err
		}
		resp.ValorPendente = &p
	}
	return resp, nil
}

// ListDocumentos lista documentos da empresa filtrados por tipo, estado,
// cliente e intervalo de datas, paginado.
func (s *Service) ListDocumentos(ctx context.Context, empresaID string, in dto.ListarDocumentosRequest) (*dto.DocumentoListResponse, error) {
	in.DefaultPage()

	filtro := repository.DocumentoFiscalFiltro{
		ClienteID: in.ClienteID,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.Tipo != "" {
		tipo := entity.TipoDocumento(in.Tipo)
		if !tipo.Valido() {
			return nil, domain.NewValidationError(map[string]string{"tipo": "tipo de documento desconhecido"})
		}
		filtro.Tipo = tipo
	}
	if in.Estado != "" {
		filtro.Estado = entity.EstadoDocumento(in.Estado)
	}
	var err error
	if filtro.DataInicio, err = parseData(in.DataInicio); err != nil {
		return nil, domain.NewValidationError(map[string]string{"data_inicio": "formato esperado: AAAA-MM-DD"})
	}
	if filtro.DataFim, err = parseData(in.DataFim); err != nil {
		return nil, domain.NewValidationError(map[string]string{"data_fim": "formato esperado: AAAA-MM-DD"})
	}

	docs, total, err := s.docRepo.ListByEmpresa(empresaID, filtro)
	if err != nil {
		return nil, err
	}
	out := &dto.DocumentoListResponse{
		Documentos: make([]dto.DocumentoResponse, 0, len(docs)),
		Page:       dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, doc := range docs {
		out.Documentos = append(out.Documentos, *s.toResponse(doc, nil, nil))
	}
	return out, nil
}
