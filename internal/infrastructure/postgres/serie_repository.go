package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/omunga/faturacao-api/internal/domain/entity"
	"github.com/omunga/faturacao-api/internal/domain/repository"
)

var _ repository.SerieRepository = (*SerieRepo)(nil)

// SerieRepo implementação de SerieRepository (usável com pool ou tx).
type SerieRepo struct {
	q Querier
}

// NewSerieRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSerieRepository(q Querier) *SerieRepo {
	return &SerieRepo{q: q}
}

// ProximoNumero atribui o próximo número da série sob bloqueio de linha.
// O INSERT ... ON CONFLICT cria a série no primeiro uso; o UPDATE devolve o
// número atribuído e deixa o contador no seguinte. Emissões concorrentes na
// mesma série serializam no lock da linha, o que garante numeração monótona
// e sem lacunas.
func (r *SerieRepo) ProximoNumero(empresaID, codigo string, tipo entity.TipoDocumento) (int64, error) {
	ctx := context.Background()

	insert := `
		INSERT INTO series (id, empresa_id, codigo, tipo_documento, proximo_numero, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, NOW(), NOW())
		ON CONFLICT (empresa_id, codigo, tipo_documento) DO NOTHING`
	if _, err := r.q.Exec(ctx, insert, uuid.New().String(), empresaID, codigo, tipo); err != nil {
		return 0, fmt.Errorf("criar serie: %w", err)
	}

	update := `
		UPDATE series
		SET proximo_numero = proximo_numero + 1, updated_at = NOW()
		WHERE empresa_id = $1 AND codigo = $2 AND tipo_documento = $3
		RETURNING proximo_numero - 1`
	var numero int64
	if err := r.q.QueryRow(ctx, update, empresaID, codigo, tipo).Scan(&numero); err != nil {
		return 0, fmt.Errorf("proximo numero: %w", err)
	}
	return numero, nil
}

// ListByEmpresa lista as séries da empresa.
func (r *SerieRepo) ListByEmpresa(empresaID string) ([]*entity.Serie, error) {
	query := `
		SELECT id, empresa_id, codigo, tipo_documento, proximo_numero, created_at, updated_at
		FROM series WHERE empresa_id = $1
		ORDER BY codigo, tipo_documento`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()
	var list []*entity.Serie
	for rows.Next() {
		var s entity.Serie
		if err := rows.Scan(&s.ID, &s.EmpresaID, &s.Codigo, &s.TipoDocumento, &s.ProximoNumero, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan serie: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
