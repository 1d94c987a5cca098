package relatorios

import (
	"github.com/shopspring/decimal"

	"github.com/omunga/faturacao-api/internal/application/dto"
	"github.com/omunga/faturacao-api/internal/domain/entity"
)

// TotaisPeriodo agregados monetários e contagens de um conjunto de documentos.
type TotaisPeriodo struct {
	Faturado   decimal.Decimal
	Recebido   decimal.Decimal
	Documentos int
	PorTipo    map[string]int
	PorEstado  map[string]int
}

// AgregarPeriodo agrega documentos de um intervalo. Regras:
//   - faturado = FT + FR + FRt + ND − NC, excluindo cancelados;
//   - recebido = RC + FR, excluindo cancelados;
//   - FP, FA e documentos cancelados não contam para o faturado, mas entram
//     nas contagens por tipo e por estado.
func AgregarPeriodo(docs []*entity.DocumentoFiscal) TotaisPeriodo {
	t := TotaisPeriodo{
		Faturado:  decimal.Zero,
		Recebido:  decimal.Zero,
		PorTipo:   map[string]int{},
		PorEstado: map[string]int{},
	}
	for _, doc := range docs {
		t.Documentos++
		t.PorTipo[string(doc.TipoDocumento)]++
		t.PorEstado[string(doc.Estado)]++
		if doc.Estado == entity.EstadoCancelado {
			continue
		}
		switch doc.TipoDocumento {
		case entity.TipoFT, entity.TipoFR, entity.TipoFRt:
			t.Faturado = t.Faturado.Add(doc.TotalLiquido)
		case entity.TipoND:
			t.Faturado = t.Faturado.Add(doc.TotalLiquido)
		case entity.TipoNC:
			t.Faturado = t.Faturado.Sub(doc.TotalLiquido)
		}
		switch doc.TipoDocumento {
		case entity.TipoRC, entity.TipoFR:
			t.Recebido = t.Recebido.Add(doc.TotalLiquido)
		}
	}
	t.Faturado = t.Faturado.Round(2)
	t.Recebido = t.Recebido.Round(2)
	return t
}

var mesesCurto = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// AgregarPorMes distribui os documentos de um ano pelos 12 meses, com o
// faturado bruto, as notas de crédito e o líquido de cada mês. Devolve
// sempre 12 entradas, com zeros nos meses sem movimento.
func AgregarPorMes(docs []*entity.DocumentoFiscal) []dto.MesEvolucao {
	meses := make([]dto.MesEvolucao, 12)
	for i := range meses {
		meses[i] = dto.MesEvolucao{
			Mes:          i + 1,
			Label:        mesesCurto[i],
			Faturado:     decimal.Zero,
			NotasCredito: decimal.Zero,
			Liquido:      decimal.Zero,
		}
	}
	for _, doc := range docs {
		if doc.Estado == entity.EstadoCancelado {
			continue
		}
		m := &meses[int(doc.DataEmissao.Month())-1]
		switch doc.TipoDocumento {
		case entity.TipoFT, entity.TipoFR, entity.TipoFRt, entity.TipoND:
			m.Faturado = m.Faturado.Add(doc.TotalLiquido)
			m.Documentos++
		case entity.TipoNC:
			m.NotasCredito = m.NotasCredito.Add(doc.TotalLiquido)
			m.Documentos++
		}
	}
	for i := range meses {
		meses[i].Faturado = meses[i].Faturado.Round(2)
		meses[i].NotasCredito = meses[i].NotasCredito.Round(2)
		meses[i].Liquido = meses[i].Faturado.Sub(meses[i].NotasCredito).Round(2)
	}
	return meses
}
