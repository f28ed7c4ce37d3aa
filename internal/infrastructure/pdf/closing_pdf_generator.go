// Package pdf genera el comprobante imprimible del fechamento de caixa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Loja + título       │  Data + Operador             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESPERADO: suprimentos, vendas, sangrias, troco, devoluções │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONFERÊNCIA: Esperado | Contado | Diferença                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STATUS + QR con el id del fechamento                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/application/cashier"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

var _ cashier.ClosingPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// MarotoPDFGenerator implementa cashier.ClosingPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador; storeName aparece en el encabezado.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: nonEmpty(storeName, "Styllo Fashion")}
}

// GenerateClosingPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateClosingPDF(_ context.Context, c *entity.ClosingRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fechamento de caixa "+c.Day, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("VALORES ESPERADOS"))
	m.AddRows(expectedRows(c.Expected)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("CONFERÊNCIA"))
	m.AddRows(reconciliationRows(c)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(statusRow(c))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(c *entity.ClosingRecord) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Fechamento de caixa", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Dia "+c.Day, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1}),
			text.New("Registrado em "+c.CreatedAt.Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Operador: "+c.User, props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func amountRow(label string, v decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Style: style, Top: 1, Left: 2})),
		col.New(4).Add(text.New(FormatBRL(v), props.Text{Size: 9, Style: style, Align: align.Right, Top: 1, Right: 1})),
	)
}

func expectedRows(e entity.ExpectedSnapshot) []core.Row {
	rows := []core.Row{
		amountRow("Suprimentos", e.Suprimentos, false),
		amountRow("Vendas em dinheiro", e.VendasDinheiro, false),
		amountRow("Vendas cartão/pix (líquidas)", e.VendasCartao, false),
		amountRow("Sangrias", e.Sangrias.Neg(), false),
		amountRow("Troco de vendas cartão/pix", e.TrocoCartaoPix.Neg(), false),
		amountRow("Devoluções em dinheiro", e.DevolucoesDinheiro.Neg(), false),
		amountRow("Devoluções em cartão/pix", e.DevolucoesCartao.Neg(), false),
	}
	if !e.AjusteTroco.IsZero() {
		rows = append(rows, amountRow("Ajuste de troco", e.AjusteTroco, false))
	}
	rows = append(rows,
		amountRow("Esperado em caixa (dinheiro)", e.EsperadoCaixaDinheiro, true),
		amountRow("Esperado geral", e.EsperadoGeral, true),
	)
	if e.Corte != nil {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Movimentos após "+e.Corte.Format("15:04:05")+" UTC (fechamento anterior)", props.Text{
				Size: 7, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}
	return rows
}

func reconciliationRows(c *entity.ClosingRecord) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Right: 1, Left: 2}))
	}
	v := func(d decimal.Decimal, size int) core.Col {
		return col.New(size).Add(text.New(FormatBRL(d), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}))
	}
	return []core.Row{
		row.New(6).Add(h("", 3, align.Left), h("Esperado", 3, align.Right), h("Contado", 3, align.Right), h("Diferença", 3, align.Right)),
		row.New(6).Add(h("Dinheiro", 3, align.Left), v(c.Expected.EsperadoCaixaDinheiro, 3), v(c.Counted.Cash, 3), v(c.Differences.Cash, 3)),
		row.New(6).Add(h("Cartão/Pix", 3, align.Left), v(c.Expected.VendasCartao, 3), v(c.Counted.Card, 3), v(c.Differences.Card, 3)),
		row.New(6).Add(h("Total", 3, align.Left), v(c.Expected.EsperadoGeral, 3),
			v(c.Counted.Cash.Add(c.Counted.Card), 3), v(c.Differences.Overall, 3)),
	}
}

func statusRow(c *entity.ClosingRecord) core.Row {
	color := colorGreen
	if c.Status != entity.ClosingMatched {
		color = colorRed
	}
	return row.New(40).Add(
		col.New(8).Add(
			text.New("Status: "+StatusLabel(c.Status), props.Text{Style: fontstyle.Bold, Size: 12, Color: color, Top: 4}),
			text.New("Id: "+c.ID, props.Text{Size: 7, Color: colorGray, Top: 14}),
		),
		col.New(4).Add(code.NewQr(c.ID, props.Rect{Percent: 90, Center: true})),
	)
}

// StatusLabel nombre en portugués del estado del fechamento.
func StatusLabel(status string) string {
	switch status {
	case entity.ClosingMatched:
		return "Bateu"
	case entity.ClosingShort:
		return "Faltou"
	case entity.ClosingOver:
		return "Sobrou"
	default:
		return status
	}
}

// FormatBRL formato monetario brasileño: "R$ 1.234,56", "-R$ 10,00".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
