package fiscal

import (
	"context"
	"fmt"
	"strings"

	"github.com/omunga/faturacao-api/internal/domain"
	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

// DocumentoPDFGenerator gera a representação gráfica A4 de um documento.
type DocumentoPDFGenerator interface {
	GerarDocumentoPDF(
		ctx context.Context,
		doc *entity.DocumentoFiscal,
		empresa *entity.Empresa,
		itens []*entity.ItemDocumento,
	) ([]byte, error)
}

// PDFUseCase gera o PDF de um documento fiscal emitido.
type PDFUseCase struct {
	docRepo     repository.DocumentoFiscalRepository
	empresaRepo repository.EmpresaRepository
	generator   DocumentoPDFGenerator
}

// NewPDFUseCase constrói o caso de uso.
func NewPDFUseCase(
	docRepo repository.DocumentoFiscalRepository,
	empresaRepo repository.EmpresaRepository,
	generator DocumentoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{docRepo: docRepo, empresaRepo: empresaRepo, generator: generator}
}

// DownloadDocumentoPDF carrega documento, empresa e itens e gera o PDF.
// Devolve (bytes, nome do ficheiro, erro).
func (uc *PDFUseCase) DownloadDocumentoPDF(ctx context.Context, empresaID, documentoID string) ([]byte, string, error) {
	doc, err := uc.docRepo.GetByID(documentoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter documento: %w", err)
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	if doc.EmpresaID != empresaID {
		return nil, "", domain.ErrForbidden
	}

	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil || empresa == nil {
		return nil, "", fmt.Errorf("pdf: obter empresa: %w", err)
	}
	itens, err := uc.docRepo.GetItens(doc.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter itens: %w", err)
	}

	pdfBytes, err := uc.generator.GerarDocumentoPDF(ctx, doc, empresa, itens)
	if err != nil {
		return nil, "", err
	}
	nome := strings.NewReplacer(" ", "_", "/", "-").Replace(doc.NumeroDocumento) + ".pdf"
	return pdfBytes, nome, nil
}
