package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := &ExportServiceImpl{exportDir: dir, now: time.Now}

	rows := []map[string]interface{}{
		{
			"id":              int64(1),
			"shipper_name":    "Acme Logistics",
			"consignee_city":  "Dubai",
			"shipment_weight": "12.5 Kg",
			"cod":             nil,
		},
		{
			"id":           int64(2),
			"shipper_name": `Quote "Heavy" Cargo, Inc`,
		},
	}

	path := filepath.Join(dir, "out.csv")
	if err := s.writeCSV(path, rows); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if len(records[0]) != len(exportColumns) {
		t.Fatalf("header has %d columns, want %d", len(records[0]), len(exportColumns))
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[name] = i
	}

	if got := records[1][col["shipper_name"]]; got != "Acme Logistics" {
		t.Errorf("shipper_name = %q", got)
	}
	if got := records[1][col["cod"]]; got != "" {
		t.Errorf("nil value rendered as %q, want empty", got)
	}
	if got := records[2][col["shipper_name"]]; got != `Quote "Heavy" Cargo, Inc` {
		t.Errorf("quoted value mangled: %q", got)
	}
}

func TestExportPostedRowsCSV(t *testing.T) {
	dir := t.TempDir()
	s := &ExportServiceImpl{exportDir: dir, now: time.Now}

	req := &ExportRequest{
		Format: "csv",
		Data: []map[string]interface{}{
			{"id": int64(1), "shipper_name": "Acme Logistics"},
			{"id": int64(2), "shipper_name": "Globex"},
		},
	}

	result, err := s.Export(context.Background(), req)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !result.Success || result.RecordCount != 2 || result.Format != "csv" {
		t.Errorf("result = %+v", result)
	}
	if result.DownloadURL != "/api/download/"+result.Filename {
		t.Errorf("download url = %q, filename = %q", result.DownloadURL, result.Filename)
	}

	f, err := os.Open(filepath.Join(dir, result.Filename))
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	s := &ExportServiceImpl{exportDir: t.TempDir(), now: time.Now}

	_, err := s.Export(context.Background(), &ExportRequest{
		Format: "docx",
		Data:   []map[string]interface{}{{"id": int64(1)}},
	})
	if err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	s := &ExportServiceImpl{exportDir: dir, now: time.Now}

	name := "shipments_test.csv"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("id\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := s.ResolvePath(name)
	if err != nil {
		t.Fatalf("ResolvePath(%q): %v", name, err)
	}
	if path != filepath.Join(dir, name) {
		t.Errorf("path = %q", path)
	}

	// Traversal attempts collapse to the base name, which does not exist.
	if _, err := s.ResolvePath("../../etc/passwd"); err == nil {
		t.Error("traversal path resolved")
	}

	if _, err := s.ResolvePath("missing.csv"); err == nil {
		t.Error("missing file resolved")
	}
}

func TestCellValue(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	row := map[string]interface{}{
		"text": "hello",
		"num":  int64(7),
		"when": ts,
		"gone": nil,
	}

	tests := []struct {
		col  string
		want string
	}{
		{"text", "hello"},
		{"num", "7"},
		{"when", "2024-03-15 14:30:00"},
		{"gone", ""},
		{"absent", ""},
	}

	for _, tt := range tests {
		if got := cellValue(row, tt.col); got != tt.want {
			t.Errorf("cellValue(%q) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
