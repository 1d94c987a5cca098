package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoDocumento identifica o tipo fiscal do documento (regime AGT, Angola).
type TipoDocumento string

const (
	TipoFT  TipoDocumento = "FT"  // Fatura
	TipoFR  TipoDocumento = "FR"  // Fatura-Recibo (liquidada na emissão)
	TipoFP  TipoDocumento = "FP"  // Fatura Proforma (cotação, sem efeitos de stock)
	TipoFA  TipoDocumento = "FA"  // Fatura de Adiantamento
	TipoNC  TipoDocumento = "NC"  // Nota de Crédito
	TipoND  TipoDocumento = "ND"  // Nota de Débito
	TipoRC  TipoDocumento = "RC"  // Recibo
	TipoFRt TipoDocumento = "FRt" // Fatura de Retificação
)

// Valido indica se o tipo pertence ao conjunto suportado.
func (t TipoDocumento) Valido() bool {
	switch t {
	case TipoFT, TipoFR, TipoFP, TipoFA, TipoNC, TipoND, TipoRC, TipoFRt:
		return true
	}
	return false
}

// Emissivel indica se o tipo pode ser emitido diretamente via Emitir.
// NC, ND e RC nascem apenas por derivação de um documento de origem.
func (t TipoDocumento) Emissivel() bool {
	switch t {
	case TipoFT, TipoFR, TipoFP, TipoFA, TipoFRt:
		return true
	case TipoNC, TipoND, TipoRC:
		return false
	}
	return false
}

// AdmiteRecibo indica se é possível gerar um RC sobre o documento.
func (t TipoDocumento) AdmiteRecibo() bool {
	return t == TipoFT || t == TipoFA
}

// AdmiteNota indica se NC/ND podem derivar do documento.
func (t TipoDocumento) AdmiteNota() bool {
	return t == TipoFT || t == TipoFR
}

// MovimentaStock indica se a emissão desconta stock dos produtos das linhas.
// Proformas, adiantamentos e documentos derivados nunca movimentam stock.
func (t TipoDocumento) MovimentaStock() bool {
	return t == TipoFT || t == TipoFR || t == TipoFRt
}

// RequerItens indica se a emissão exige linhas. FA pode sintetizar uma linha
// única a partir dos dados de pagamento.
func (t TipoDocumento) RequerItens() bool {
	return t != TipoFA
}

// EstadoDocumento modela o ciclo de vida do documento fiscal.
//
//	emitido ──(recibo parcial)──> parcialmente_paga ──(recibo total)──> paga
//	emitido ──(cancelar)────────> cancelado          [terminal]
//	emitido ──(vencimento, só FA)> expirado          [terminal]
//
// Nenhuma transição regressa a "emitido"; paga, cancelado e expirado são terminais.
type EstadoDocumento string

const (
	EstadoEmitido          EstadoDocumento = "emitido"
	EstadoParcialmentePaga EstadoDocumento = "parcialmente_paga"
	EstadoPaga             EstadoDocumento = "paga"
	EstadoCancelado        EstadoDocumento = "cancelado"
	EstadoExpirado         EstadoDocumento = "expirado"
)

// Terminal indica se o estado não admite mais transições.
func (e EstadoDocumento) Terminal() bool {
	return e == EstadoPaga || e == EstadoCancelado || e == EstadoExpirado
}

// AdmitePagamento indica se o documento ainda pode receber recibos ou
// vinculações de adiantamento.
func (e EstadoDocumento) AdmitePagamento() bool {
	return e == EstadoEmitido || e == EstadoParcialmentePaga
}

// DocumentoFiscal é a entidade central do motor fiscal. Nunca é apagado
// fisicamente; o cancelamento é uma transição de estado com motivo.
type DocumentoFiscal struct {
	ID                 string
	EmpresaID          string
	Serie              string
	Numero             int64
	NumeroDocumento    string // ex.: "FT A2026/17" — único por (empresa, série, tipo)
	TipoDocumento      TipoDocumento
	Estado             EstadoDocumento
	ClienteID          string
	ClienteNome        string // consumidor final sem registo
	VendaID            string
	FaturaID           string // documento de origem (NC/ND/RC → FT/FR; vínculo FA→FT)
	BaseTributavel     decimal.Decimal
	TotalIVA           decimal.Decimal
	TotalRetencao      decimal.Decimal
	TotalLiquido       decimal.Decimal
	Motivo             string
	MotivoCancelamento string
	HashFiscal         string
	DataEmissao        time.Time
	DataVencimento     *time.Time // FA: para expiração; FT: para alertas de atraso
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ToleranciaArredondamento é a margem aceite na verificação de totais.
var ToleranciaArredondamento = decimal.NewFromFloat(0.01)

// TotaisConsistentes verifica total_liquido == base + iva − retenção
// dentro da tolerância de arredondamento.
func (d *DocumentoFiscal) TotaisConsistentes() bool {
	esperado := d.BaseTributavel.Add(d.TotalIVA).Sub(d.TotalRetencao)
	return d.TotalLiquido.Sub(esperado).Abs().LessThanOrEqual(ToleranciaArredondamento)
}

// PodeCancelar indica se a transição para cancelado é admissível. Só os
// estados não terminais cancelam: uma fatura paga é uma posição fiscal
// fechada e corrige-se por NC, nunca por cancelamento.
func (d *DocumentoFiscal) PodeCancelar() bool {
	return !d.Estado.Terminal()
}

// PodeGerarRecibo valida tipo e estado para a geração de um RC.
func (d *DocumentoFiscal) PodeGerarRecibo() bool {
	return d.TipoDocumento.AdmiteRecibo() && d.Estado.AdmitePagamento()
}

// PodeDerivarNota valida tipo e estado para a criação de NC/ND.
func (d *DocumentoFiscal) PodeDerivarNota() bool {
	return d.TipoDocumento.AdmiteNota() && d.Estado != EstadoCancelado
}

// Expirou indica se um FA emitido ultrapassou o vencimento em ref.
func (d *DocumentoFiscal) Expirou(ref time.Time) bool {
	if d.TipoDocumento != TipoFA || d.Estado != EstadoEmitido {
		return false
	}
	return d.DataVencimento != nil && d.DataVencimento.Before(ref)
}
