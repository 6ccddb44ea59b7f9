package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"go-shipdata/internal/features/shipment"
	"go-shipdata/internal/query"
)

type ReportService interface {
	CreateReport(ctx context.Context, report *CustomReport) error
	GetReport(ctx context.Context, id string) (*CustomReport, error)
	ListReports(ctx context.Context) ([]CustomReport, error)
	UpdateReport(ctx context.Context, report *CustomReport) error
	DeleteReport(ctx context.Context, id string) error
	RunReport(ctx context.Context, id string) (*RunResult, error)
	ExportReport(ctx context.Context, id string, format string) ([]byte, string, error)
}

type ReportServiceImpl struct {
	repo         ReportRepository
	shipmentRepo shipment.ShipmentRepository
	now          func() time.Time
}

func NewReportService(repo ReportRepository, shipmentRepo shipment.ShipmentRepository) ReportService {
	return &ReportServiceImpl{
		repo:         repo,
		shipmentRepo: shipmentRepo,
		now:          time.Now,
	}
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, report *CustomReport) error {
	if err := s.validate(report); err != nil {
		return err
	}
	return s.repo.Create(ctx, report)
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*CustomReport, error) {
	return s.repo.Get(ctx, id)
}

func (s *ReportServiceImpl) ListReports(ctx context.Context) ([]CustomReport, error) {
	return s.repo.List(ctx)
}

func (s *ReportServiceImpl) UpdateReport(ctx context.Context, report *CustomReport) error {
	if err := s.validate(report); err != nil {
		return err
	}
	return s.repo.Update(ctx, report)
}

func (s *ReportServiceImpl) DeleteReport(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ReportServiceImpl) validate(report *CustomReport) error {
	if report.Name == "" {
		return fmt.Errorf("name is required")
	}
	if report.SQL == "" && len(report.Filters) == 0 {
		return fmt.Errorf("either sql or filters must be given")
	}
	if report.SQL != "" {
		if err := ValidateReadOnly(report.SQL); err != nil {
			return fmt.Errorf("invalid report sql: %w", err)
		}
	}
	return nil
}

// RunReport executes the report definition and bumps its run counters. An
// explicit SQL statement takes precedence over stored filter criteria.
func (s *ReportServiceImpl) RunReport(ctx context.Context, id string) (*RunResult, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stmt, err := s.statementFor(report)
	if err != nil {
		return nil, err
	}

	rows, err := s.shipmentRepo.QueryMaps(ctx, stmt)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RecordRun(ctx, id); err != nil {
		return nil, err
	}

	return &RunResult{Data: rows, Count: len(rows)}, nil
}

func (s *ReportServiceImpl) statementFor(report *CustomReport) (query.Statement, error) {
	if report.SQL != "" {
		// Stored statements were validated on write, but re-check in case the
		// document was edited out of band.
		if err := ValidateReadOnly(report.SQL); err != nil {
			return query.Statement{}, fmt.Errorf("invalid report sql: %w", err)
		}
		wrapped := fmt.Sprintf("SELECT * FROM (%s) AS report_rows LIMIT %d",
			trimTrailingSemicolon(report.SQL), maxReportRows)
		return query.Statement{SQL: wrapped}, nil
	}

	b := query.BuildShipmentPredicates(report.Filters)
	query.AddDateRange(b, query.ParseDateToken(report.DateFilter, s.now()))
	return query.ComposeLimited("*", b, maxReportRows), nil
}

// ExportReport runs the report and renders it as a downloadable file. Only
// CSV is supported for stored reports; the generic export endpoint covers the
// richer formats.
func (s *ReportServiceImpl) ExportReport(ctx context.Context, id string, format string) ([]byte, string, error) {
	if format != "csv" {
		return nil, "", fmt.Errorf("unsupported format: %s", format)
	}

	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	result, err := s.RunReport(ctx, id)
	if err != nil {
		return nil, "", err
	}

	headers := columnsOf(result.Data)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, "", err
	}

	for _, rec := range result.Data {
		row := make([]string, len(headers))
		for i, col := range headers {
			val := rec[col]
			if val == nil {
				continue
			}
			if tVal, ok := val.(time.Time); ok {
				row[i] = tVal.Format("2006-01-02 15:04:05")
				continue
			}
			row[i] = fmt.Sprintf("%v", val)
		}
		if err := writer.Write(row); err != nil {
			return nil, "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_report_%s.csv", report.Name, s.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// columnsOf derives a stable header order from the first row. Map iteration
// is random, so the names are sorted.
func columnsOf(rows []map[string]interface{}) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

func trimTrailingSemicolon(sql string) string {
	trimmed := sql
	for len(trimmed) > 0 && (trimmed[len(trimmed)-1] == ';' || trimmed[len(trimmed)-1] == ' ' ||
		trimmed[len(trimmed)-1] == '\n' || trimmed[len(trimmed)-1] == '\t') {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return trimmed
}
