package printing

import (
	"html/template"
	"strings"

	"github.com/fathurrm/tokopos/internal/model"
)

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head><title>Receipt {{.ID}}</title></head>
<body>
<div class="receipt">
  <h2>Sales Receipt</h2>
  <p>Order: {{.ID}}</p>
  <p>Customer: {{.CustomerName}}</p>
  {{- if .PhoneNumber}}
  <p>Phone: {{.PhoneNumber}}</p>
  {{- end}}
  <p>Date: {{.CreatedAt.Format "2006-01-02 15:04"}}</p>
  <table>
    <tr><th>Item</th><th>Qty</th><th>Price</th><th>Disc%</th><th>Total</th></tr>
    {{- range .Items}}
    <tr>
      <td>{{.ProductName}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.Price}}</td>
      <td>{{.DiscountPercentage}}</td>
      <td>{{.TotalAfterDiscount}}</td>
    </tr>
    {{- end}}
  </table>
  <p>Subtotal: {{.SubtotalAmount}}</p>
  <p>Discount: {{.DiscountAmount}}</p>
  <p>Total: {{.TotalAmount}}</p>
  <p>Tendered: {{.TenderedAmount}}</p>
  <p>Change: {{.ChangeAmount}}</p>
  <p>Payment: {{.PaymentMethod}} ({{.PaymentStatus}})</p>
</div>
</body>
</html>
`))

var labelTmpl = template.Must(template.New("label").Parse(`<!DOCTYPE html>
<html>
<head><title>Label {{.ID}}</title></head>
<body>
<div class="label">
  <p class="barcode">{{.ID}}</p>
  <p>Size: {{.Size}}</p>
  <p>Price: {{.Price}}</p>
</div>
</body>
</html>
`))

// ReceiptHTML renders printable receipt markup for a persisted order.
// The markup is built from the order's denormalized snapshots, so later
// catalog edits never change it.
func ReceiptHTML(o *model.Order) (string, error) {
	var sb strings.Builder
	if err := receiptTmpl.Execute(&sb, o); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LabelHTML renders printable barcode label markup for a variant.
func LabelHTML(v *model.Variant) (string, error) {
	var sb strings.Builder
	if err := labelTmpl.Execute(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}
