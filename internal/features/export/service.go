package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-shipdata/internal/config"
	"go-shipdata/internal/features/shipment"
	"go-shipdata/internal/query"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	Export(ctx context.Context, req *ExportRequest) (*ExportResult, error)
	ResolvePath(filename string) (string, error)
}

type ExportServiceImpl struct {
	shipmentRepo shipment.ShipmentRepository
	exportDir    string
	now          func() time.Time
}

func NewExportService(shipmentRepo shipment.ShipmentRepository, cfg *config.Config) ExportService {
	return &ExportServiceImpl{
		shipmentRepo: shipmentRepo,
		exportDir:    cfg.ExportDir,
		now:          time.Now,
	}
}

func (s *ExportServiceImpl) Export(ctx context.Context, req *ExportRequest) (*ExportResult, error) {
	var err error

	rows := req.Data
	if len(rows) == 0 {
		limit := req.Limit
		if limit < 1 || limit > defaultExportLimit {
			limit = defaultExportLimit
		}

		b := query.BuildShipmentPredicates(req.Filters)
		query.AddDateRange(b, query.ParseDateToken(req.DateFilter, s.now()))
		stmt := query.ComposeLimited(strings.Join(exportColumns, ", "), b, limit)

		rows, err = s.shipmentRepo.QueryMaps(ctx, stmt)
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("shipments_%s.%s", uuid.New().String(), req.Format)
	path := filepath.Join(s.exportDir, filename)

	switch req.Format {
	case "csv":
		err = s.writeCSV(path, rows)
	case "xlsx":
		err = s.writeExcel(path, rows)
	case "pdf":
		err = s.writePDF(ctx, path, rows)
	default:
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Success:     true,
		Filename:    filename,
		DownloadURL: "/api/download/" + filename,
		Format:      req.Format,
		RecordCount: len(rows),
	}, nil
}

// ResolvePath maps a download filename back to its path under the export
// directory. The base-name reduction keeps traversal sequences out.
func (s *ExportServiceImpl) ResolvePath(filename string) (string, error) {
	path := filepath.Join(s.exportDir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func cellValue(row map[string]interface{}, col string) string {
	val := row[col]
	if val == nil {
		return ""
	}
	if t, ok := val.(time.Time); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%v", val)
}

func (s *ExportServiceImpl) writeCSV(path string, rows []map[string]interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(exportColumns); err != nil {
		return err
	}

	record := make([]string, len(exportColumns))
	for _, row := range rows {
		for i, col := range exportColumns {
			record[i] = cellValue(row, col)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *ExportServiceImpl) writeExcel(path string, rows []map[string]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Shipments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, cellValue(row, col))
		}
	}

	for i := range exportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 15)
	}

	return f.SaveAs(path)
}

var pdfTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page { size: A4 landscape; margin: 20px; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 9px; margin: 0; }
h1 { font-size: 14px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 2px 4px; text-align: left; }
th { background: #e0e0e0; }
tr { page-break-inside: avoid; }
</style>
</head>
<body>
<h1>Shipments ({{len .Rows}} records)</h1>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
</body></html>`))

func (s *ExportServiceImpl) writePDF(ctx context.Context, path string, rows []map[string]interface{}) error {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(exportColumns))
		for i, col := range exportColumns {
			record[i] = cellValue(row, col)
		}
		cells = append(cells, record)
	}

	var html bytes.Buffer
	err := pdfTemplate.Execute(&html, struct {
		Columns []string
		Rows    [][]string
	}{Columns: exportColumns, Rows: cells})
	if err != nil {
		return err
	}

	tmpHTML := filepath.Join(os.TempDir(), "export_"+s.now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, html.Bytes(), 0o644); err != nil {
		return err
	}
	defer os.Remove(tmpHTML)

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return err
	}

	return os.WriteFile(path, pdfBuf, 0o644)
}
