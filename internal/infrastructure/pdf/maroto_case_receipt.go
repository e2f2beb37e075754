// Package pdf implementa el comprobante imprimible de una maleta entregada
// en consignación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Maleta  │  ID + Fecha de entrega     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VENDEDORA: Nombre / Teléfono / Comisión                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Descripción | Precio                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total bruto / Comisión / Ganancia estimada         │
//	│  FOOTER: Fecha pactada de devolución                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/maletas-pro/internal/application/ports"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 93, Green: 44, Blue: 122}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.CaseReceiptGenerator = (*MarotoCaseReceipt)(nil)

// MarotoCaseReceipt implementa ports.CaseReceiptGenerator usando Maroto v2.
type MarotoCaseReceipt struct{}

// NewMarotoCaseReceipt construye el generador.
func NewMarotoCaseReceipt() *MarotoCaseReceipt { return &MarotoCaseReceipt{} }

// GenerateReceipt genera el PDF y devuelve sus bytes. seller puede ser nil
// cuando la maleta no tiene vendedora asignada.
func (g *MarotoCaseReceipt) GenerateReceipt(
	_ context.Context,
	c *entity.Case,
	seller *entity.Seller,
	items []*entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Maleta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(seller))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(c, seller))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(c))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e id de maleta + fecha de entrega (der).
func headerRow(c *entity.Case) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE MALETA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Consignación de joyas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Maleta N° "+shortID(c.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Entrega: "+c.DeliveryDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Estado: "+string(c.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sellerRow: datos de la vendedora.
func sellerRow(seller *entity.Seller) core.Row {
	name, phone, rate := "—", "—", "—"
	if seller != nil {
		name = seller.Name
		if seller.Phone != "" {
			phone = seller.Phone
		}
		rate = seller.CommissionRate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VENDEDORA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Comisión: %s", phone, rate),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de piezas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Descripción de la pieza", 8, align.Left),
		h("Precio", 3, align.Right),
	)
}

// tableItemRows: una fila por pieza; precio "—" para piezas sin precio.
func tableItemRows(items []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		price := "—"
		if it.Price != nil {
			price = "$" + it.Price.StringFixed(2)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(8).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				price,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(c *entity.Case, seller *entity.Seller) core.Row {
	commissionLabel := "Comisión:"
	if seller != nil {
		commissionLabel = fmt.Sprintf("Comisión (%s%%):",
			seller.CommissionRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Total bruto:"),
			label(commissionLabel),
			grandLabel("GANANCIA ESTIMADA:"),
		),
		col.New(4).Add(
			value("$"+c.TotalGross.StringFixed(2)),
			value("$"+c.CommissionValue.StringFixed(2)),
			grandValue("$"+c.EstimatedProfit.StringFixed(2)),
		),
		col.New(1),
	)
}

// footerRow: fecha pactada de devolución.
func footerRow(c *entity.Case) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Devolución pactada: "+c.ReturnDate.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
			text.New("Las piezas no vendidas deben devolverse en esa fecha.", props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// shortID primeros 8 caracteres del uuid, suficiente para el comprobante.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
