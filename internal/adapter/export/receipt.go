package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/niksmo/mymarket/internal/core/domain"
	"github.com/niksmo/mymarket/internal/core/port"
	"github.com/niksmo/mymarket/pkg/currency"
)

var _ port.ReceiptRenderer = (*Receipt)(nil)

const receiptTemplateText = `<!DOCTYPE html>
<html lang="rw">
<head><meta charset="utf-8"><title>{{.StoreName}}</title></head>
<body style="background:#f5f7fa;font-family:'Rubik',sans-serif;">
<div style="width:100%;max-width:400px;padding:25px;background:white;border-radius:12px;border:3px solid #2c3e50;">
	<h2 style="color:#e67e22;text-align:center;border-bottom:3px solid #e67e22;">ORDER YACU - {{.StoreName}}</h2>
	<h3 style="color:#2c3e50;">👤 Amakuru y'Umukiliya</h3>
	<p><strong>Izina:</strong> {{.CustomerName}}</p>
	<p><strong>Aho batumiza:</strong> {{.CustomerAddress}}</p>
	<p style="border-bottom:1px solid #ddd;"><strong>Telefone:</strong> {{.CustomerPhone}}</p>
	<h3 style="color:#2c3e50;">🛒 Ibicuruzwa</h3>
	<div>
	{{- range .Lines}}
		<div style="display:flex;justify-content:space-between;border-bottom:1px dashed #eee5;">
			<span style="font-weight:500;flex:1;">{{.Name}} ({{.Label}})</span>
			<span style="font-weight:700;color:#d35400;">{{.Total}}</span>
		</div>
	{{- end}}
	</div>
	<div style="background:#2c3e50;color:white;padding:18px;border-radius:8px;text-align:center;">
		<p style="font-size:1.8rem;font-weight:700;margin:0;">TOTAL: {{.GrandTotal}}</p>
	</div>
	<p style="text-align:center;color:#27ae60;font-weight:bold;">Kwishyura M-Pesa: {{.PaymentCode}}</p>
	<p style="text-align:center;color:#999;font-size:0.8rem;">{{.Reference}}</p>
</div>
</body>
</html>
`

type receiptLine struct {
	Name  string
	Label string
	Total string
}

type receiptView struct {
	StoreName       string
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	Lines           []receiptLine
	GrandTotal      string
	PaymentCode     string
	Reference       string
}

// Receipt renders a composed order as a downloadable HTML card. The
// filename carries the order date.
type Receipt struct {
	tmpl      *template.Template
	storeName string
	fmt       currency.Formatter
}

func NewReceipt(
	storeName string, f currency.Formatter,
) (Receipt, error) {
	const op = "NewReceipt"

	tmpl, err := template.New("receipt").Parse(receiptTemplateText)
	if err != nil {
		return Receipt{}, fmt.Errorf("%s: %w", op, err)
	}
	return Receipt{tmpl: tmpl, storeName: storeName, fmt: f}, nil
}

func (r Receipt) RenderReceipt(o domain.Order) (domain.Receipt, error) {
	const op = "Receipt.RenderReceipt"

	if r.tmpl == nil {
		return domain.Receipt{},
			fmt.Errorf("%s: %w", op, domain.ErrExportUnavailable)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.toView(o)); err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Receipt{
		Filename: fmt.Sprintf(
			"MyMarket_Order_%s.html", o.Date.Format("2006-01-02"),
		),
		ContentType: "text/html; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func (r Receipt) toView(o domain.Order) receiptView {
	v := receiptView{
		StoreName:       r.storeName,
		CustomerName:    o.Customer.Name,
		CustomerAddress: o.Customer.Address,
		CustomerPhone:   o.Customer.Phone,
		GrandTotal:      r.fmt.RWF(o.Totals.GrandTotal),
		PaymentCode:     o.PaymentCode(),
		Reference:       o.Reference,
	}
	for _, it := range o.Lines {
		v.Lines = append(v.Lines, receiptLine{
			Name:  it.Name,
			Label: lineLabel(it),
			Total: r.fmt.RWF(it.LineTotal),
		})
	}
	return v
}
