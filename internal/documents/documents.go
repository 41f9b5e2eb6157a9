// Package documents renders the printable manifest and handover receipt of a bag.
package documents

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
)

const (
	barcodeWidth  = 240
	barcodeHeight = 48
	dateLayout    = "2006-01-02 15:04"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	ParseFS(templatesFS, "templates/*.html"))

// Bag is everything a bag document shows.
type Bag struct {
	Bag     domain.Bag
	Orders  []domain.Order
	Courier *domain.Courier
}

type manifestRow struct {
	Code        string
	Barcode     string
	Image       template.URL
	Origin      string
	Destination string
	Pieces      int
	WeightKg    float64
}

type manifestView struct {
	Bag         domain.Bag
	CourierName string
	CreatedAt   string
	Rows        []manifestRow
}

type receiptView struct {
	Bag         domain.Bag
	CourierName string
	CreatedAt   string
	Orders      int
	Pieces      int
	WeightKg    float64
	Totals      []domain.Money
}

// Manifest writes one row per order: code, barcode image, origin and destination.
func Manifest(w io.Writer, b Bag) error {
	v := manifestView{Bag: b.Bag, CourierName: courierName(b), CreatedAt: b.Bag.CreatedAt.Format(dateLayout)}
	for _, o := range b.Orders {
		img, err := BarcodeDataURI(o.Barcode)
		if err != nil {
			return err
		}
		v.Rows = append(v.Rows, manifestRow{
			Code:        o.Code,
			Barcode:     o.Barcode,
			Image:       img,
			Origin:      place(o.Sender),
			Destination: place(o.Recipient),
			Pieces:      o.Pieces,
			WeightKg:    o.WeightKg,
		})
	}
	return templates.ExecuteTemplate(w, "manifest.html", v)
}

// Receipt writes the aggregate counts and signature lines.
func Receipt(w io.Writer, b Bag) error {
	v := receiptView{
		Bag:         b.Bag,
		CourierName: courierName(b),
		CreatedAt:   b.Bag.CreatedAt.Format(dateLayout),
		Orders:      len(b.Orders),
	}
	byCurrency := make(map[string]decimal.Decimal)
	for _, o := range b.Orders {
		v.Pieces += o.Pieces
		v.WeightKg += o.WeightKg
		byCurrency[o.Total.Currency] = byCurrency[o.Total.Currency].Add(o.Total.Amount)
	}
	for cur, amount := range byCurrency {
		v.Totals = append(v.Totals, domain.Money{Amount: amount, Currency: cur})
	}
	sort.Slice(v.Totals, func(i, j int) bool { return v.Totals[i].Currency < v.Totals[j].Currency })
	return templates.ExecuteTemplate(w, "receipt.html", v)
}

// BarcodeDataURI renders a code128 barcode as an inline PNG. An empty code yields "".
func BarcodeDataURI(code string) (template.URL, error) {
	if code == "" {
		return "", nil
	}
	bc, err := code128.Encode(code)
	if err != nil {
		return "", fmt.Errorf("encode barcode %q: %w", code, err)
	}
	scaled, err := barcode.Scale(bc, barcodeWidth, barcodeHeight)
	if err != nil {
		return "", fmt.Errorf("scale barcode %q: %w", code, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("png barcode %q: %w", code, err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

func courierName(b Bag) string {
	if b.Courier != nil && b.Courier.Name != "" {
		return b.Courier.Name
	}
	return b.Bag.CourierID
}

func place(p domain.Party) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.City, p.Address} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
