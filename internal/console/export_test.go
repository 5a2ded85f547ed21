package console

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/luggio/console/internal/domain"
)

func TestExportXLSX(t *testing.T) {
	rows := []domain.Settlement{
		{RiderName: "Kim Haneul", Month: "2026-08", Amount: 300000, Fee: 30000, Payout: 270000, Status: "paid"},
		{RiderName: "Lee Jiwoo", Month: "2026-08", Amount: 150000, Fee: 15000, Payout: 135000, Status: "failed"},
	}
	path := filepath.Join(t.TempDir(), "settlements.xlsx")

	if err := ExportXLSX(path, "Settlements", SettlementColumns(), rows); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Settlements", "B1"); got != "Rider" {
		t.Errorf("B1 = %q, want %q", got, "Rider")
	}
	if got, _ := f.GetCellValue("Settlements", "B2"); got != "Kim Haneul" {
		t.Errorf("B2 = %q", got)
	}
	if got, _ := f.GetCellValue("Settlements", "F3"); got != "135000" {
		t.Errorf("F3 = %q", got)
	}
	if got, _ := f.GetCellValue("Settlements", "G3"); got != "failed" {
		t.Errorf("G3 = %q", got)
	}

	rowsRead, err := f.GetRows("Settlements")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rowsRead) != 3 {
		t.Errorf("exported %d rows including header, want 3", len(rowsRead))
	}
}

func TestExportXLSX_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.xlsx")
	if err := ExportXLSX(path, "Hotels", HotelColumns(), nil); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Hotels", "A1"); got != "ID" {
		t.Errorf("A1 = %q, want header row even with no data", got)
	}
}
