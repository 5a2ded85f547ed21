package console

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luggio/console/internal/domain"
)

// Column describes one export column: a header and a value extractor.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// ExportXLSX writes rows to an xlsx workbook at path. It exports exactly
// the rows given, which by convention is the currently visible filtered
// set of a list screen, never the whole collection.
func ExportXLSX[T any](path, sheet string, cols []Column[T], rows []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	for r, row := range rows {
		for i, col := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, col.Value(row)); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		}
	}

	return f.SaveAs(path)
}

const exportTimeLayout = "2006-01-02 15:04"

func HotelColumns() []Column[domain.Hotel] {
	return []Column[domain.Hotel]{
		{"ID", func(h domain.Hotel) any { return h.ID }},
		{"Name", func(h domain.Hotel) any { return h.KrName }},
		{"English Name", func(h domain.Hotel) any { return h.EnName }},
		{"Manager", func(h domain.Hotel) any { return h.Manager }},
		{"Phone", func(h domain.Hotel) any { return h.Phone }},
		{"Address", func(h domain.Hotel) any { return h.Address }},
		{"Active", func(h domain.Hotel) any { return h.Active }},
	}
}

func PartnerColumns() []Column[domain.Partner] {
	return []Column[domain.Partner]{
		{"ID", func(p domain.Partner) any { return p.ID }},
		{"Name", func(p domain.Partner) any { return p.KrName }},
		{"Business No.", func(p domain.Partner) any { return p.BusinessNum }},
		{"Manager", func(p domain.Partner) any { return p.Manager }},
		{"Phone", func(p domain.Partner) any { return p.Phone }},
		{"Address", func(p domain.Partner) any { return p.Address }},
		{"Status", func(p domain.Partner) any { return p.Status }},
	}
}

func RiderColumns() []Column[domain.Rider] {
	return []Column[domain.Rider]{
		{"ID", func(r domain.Rider) any { return r.ID }},
		{"Name", func(r domain.Rider) any { return r.Name }},
		{"Phone", func(r domain.Rider) any { return r.Phone }},
		{"Address", func(r domain.Rider) any { return r.Address }},
		{"Bank", func(r domain.Rider) any { return r.Bank }},
		{"Account", func(r domain.Rider) any { return r.BankAccount }},
		{"Status", func(r domain.Rider) any { return r.Status }},
	}
}

func OrderColumns() []Column[domain.Order] {
	return []Column[domain.Order]{
		{"Order No.", func(o domain.Order) any { return o.OrderNum }},
		{"Hotel", func(o domain.Order) any { return o.HotelID }},
		{"Partner", func(o domain.Order) any { return o.PartnerID }},
		{"Status", func(o domain.Order) any { return o.Status }},
		{"Price", func(o domain.Order) any { return o.Price }},
		{"Pickup", func(o domain.Order) any { return o.PickupAt.Format(exportTimeLayout) }},
		{"Delivered", func(o domain.Order) any {
			if o.DeliveredAt == nil {
				return ""
			}
			return o.DeliveredAt.Format(exportTimeLayout)
		}},
	}
}

func SettlementColumns() []Column[domain.Settlement] {
	return []Column[domain.Settlement]{
		{"ID", func(s domain.Settlement) any { return s.ID }},
		{"Rider", func(s domain.Settlement) any { return s.RiderName }},
		{"Month", func(s domain.Settlement) any { return s.Month }},
		{"Amount", func(s domain.Settlement) any { return s.Amount }},
		{"Fee", func(s domain.Settlement) any { return s.Fee }},
		{"Payout", func(s domain.Settlement) any { return s.Payout }},
		{"Status", func(s domain.Settlement) any { return s.Status }},
		{"Bank", func(s domain.Settlement) any { return s.Bank }},
		{"Account", func(s domain.Settlement) any { return s.BankAccount }},
	}
}
