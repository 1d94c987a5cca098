package repository

import (
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// AdiantamentoRepository define o porto das vinculações FA→FT.
type AdiantamentoRepository interface {
	CreateVinculo(v *entity.AdiantamentoFatura) error
	// SomaUtilizado soma os valores já utilizados do adiantamento.
	SomaUtilizado(adiantamentoID string) (decimal.Decimal, error)
	// SomaVinculadoAFatura soma os adiantamentos aplicados à fatura.
	SomaVinculadoAFatura(faturaID string) (decimal.Decimal, error)
	ListByFatura(faturaID string) ([]*entity.AdiantamentoFatura, error)
	ListByAdiantamento(adiantamentoID string) ([]*entity.AdiantamentoFatura, error)
}
