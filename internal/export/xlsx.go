// Package export writes order lists as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"service-dispatch/internal/domain"
)

// SheetName is the name of the single worksheet.
const SheetName = "Orders"

// Header lists the exported columns in order.
var Header = []string{
	"Code", "Barcode", "Status", "SLA", "Created", "Scheduled",
	"Sender", "Sender city", "Recipient", "Recipient phone", "Recipient city", "Address",
	"Courier", "Payment", "Total", "Currency", "Pieces", "Weight, kg", "Tags",
}

// Orders writes orders as an xlsx workbook to w.
func Orders(w io.Writer, orders []domain.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := Row(o)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write order %s: %w", o.Code, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "S", 16); err != nil {
		return fmt.Errorf("col width: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// Row renders one order as spreadsheet cells in Header order.
func Row(o domain.Order) []any {
	courier := ""
	if o.CourierID != nil {
		courier = *o.CourierID
	}
	total, _ := o.Total.Amount.Float64()
	return []any{
		o.Code,
		o.Barcode,
		string(o.Status),
		string(o.SLARisk),
		o.CreatedAt.UTC().Format("2006-01-02 15:04"),
		o.ScheduledDate,
		o.Sender.Name,
		o.Sender.City,
		o.Recipient.Name,
		o.Recipient.Phone,
		o.Recipient.City,
		o.Recipient.Address,
		courier,
		string(o.PaymentMethod),
		total,
		o.Total.Currency,
		o.Pieces,
		o.WeightKg,
		strings.Join(o.Tags, ", "),
	}
}
