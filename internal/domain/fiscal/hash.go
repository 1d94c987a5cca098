package fiscal

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// HashParams são os campos que entram na cadeia de hash de auditoria de um
// documento. HashAnterior é o hash do documento anterior da mesma série
// (vazio no primeiro documento).
type HashParams struct {
	DataEmissao     time.Time
	DataRegisto     time.Time
	NumeroDocumento string
	TotalLiquido    decimal.Decimal
	HashAnterior    string
}

// CalcularHash produz o hash fiscal do documento: SHA-256 em hexadecimal da
// cadeia "dataEmissao;dataRegisto;numeroDocumento;totalLiquido;hashAnterior".
//
//	dataEmissao  → 2006-01-02
//	dataRegisto  → 2006-01-02T15:04:05 (UTC)
//	totalLiquido → duas casas decimais
//
// A alteração de qualquer campo de qualquer documento da série quebra a
// cadeia a partir desse ponto, o que torna o livro auditável.
func CalcularHash(p HashParams) string {
	cadeia := p.DataEmissao.Format("2006-01-02") + ";" +
		p.DataRegisto.UTC().Format("2006-01-02T15:04:05") + ";" +
		p.NumeroDocumento + ";" +
		p.TotalLiquido.StringFixed(2) + ";" +
		p.HashAnterior
	sum := sha256.Sum256([]byte(cadeia))
	return hex.EncodeToString(sum[:])
}

// ResumoHash devolve os 4 caracteres do hash que figuram na impressão do
// documento (posições 1, 11, 21 e 31, à semelhança do regime SAF-T).
func ResumoHash(hash string) string {
	if len(hash) < 32 {
		return hash
	}
	return string([]byte{hash[0], hash[10], hash[20], hash[30]})
}
