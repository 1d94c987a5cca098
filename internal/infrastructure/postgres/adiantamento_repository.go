package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.AdiantamentoRepository = (*AdiantamentoRepo)(nil)

// AdiantamentoRepo implementação de AdiantamentoRepository (usável com pool ou tx).
type AdiantamentoRepo struct {
	q Querier
}

// NewAdiantamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAdiantamentoRepository(q Querier) *AdiantamentoRepo {
	return &AdiantamentoRepo{q: q}
}

// CreateVinculo persiste a vinculação FA→FT.
func (r *AdiantamentoRepo) CreateVinculo(v *entity.AdiantamentoFatura) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO adiantamento_fatura (id, adiantamento_id, fatura_id, valor_utilizado, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.AdiantamentoID, v.FaturaID, v.ValorUtilizado, v.CreatedAt, v.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert vinculo adiantamento: %w", err)
	}
	return nil
}

// SomaUtilizado soma o que já foi consumido do adiantamento.
func (r *AdiantamentoRepo) SomaUtilizado(adiantamentoID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(valor_utilizado), 0) FROM adiantamento_fatura WHERE adiantamento_id = $1`
	var soma decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, adiantamentoID).Scan(&soma); err != nil {
		return decimal.Zero, fmt.Errorf("soma utilizado: %w", err)
	}
	return soma, nil
}

// SomaVinculadoAFatura soma os adiantamentos aplicados à fatura.
func (r *AdiantamentoRepo) SomaVinculadoAFatura(faturaID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(valor_utilizado), 0) FROM adiantamento_fatura WHERE fatura_id = $1`
	var soma decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, faturaID).Scan(&soma); err != nil {
		return decimal.Zero, fmt.Errorf("soma vinculado a fatura: %w", err)
	}
	return soma, nil
}

// ListByFatura lista as vinculações aplicadas a uma fatura.
func (r *AdiantamentoRepo) ListByFatura(faturaID string) ([]*entity.AdiantamentoFatura, error) {
	query := `
		SELECT id, adiantamento_id, fatura_id, valor_utilizado, created_at, created_by
		FROM adiantamento_fatura WHERE fatura_id = $1 ORDER BY created_at`
	return r.queryVinculos(query, faturaID)
}

// ListByAdiantamento lista as utilizações de um adiantamento.
func (r *AdiantamentoRepo) ListByAdiantamento(adiantamentoID string) ([]*entity.AdiantamentoFatura, error) {
	query := `
		SELECT id, adiantamento_id, fatura_id, valor_utilizado, created_at, created_by
		FROM adiantamento_fatura WHERE adiantamento_id = $1 ORDER BY created_at`
	return r.queryVinculos(query, adiantamentoID)
}

func (r *AdiantamentoRepo) queryVinculos(query string, args ...any) ([]*entity.AdiantamentoFatura, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vinculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdiantamentoFatura
	for rows.Next() {
		var v entity.AdiantamentoFatura
		if err := rows.Scan(&v.ID, &v.AdiantamentoID, &v.FaturaID, &v.ValorUtilizado, &v.CreatedAt, &v.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
