package shipment

import (
	"context"
	"time"

	common_models "go-shipdata/internal/common/models"
	"go-shipdata/internal/query"
)

// ListResult pairs one page of rows with its pagination metadata.
type ListResult struct {
	Data       []map[string]interface{}
	Pagination common_models.Pagination
}

type ShipmentService interface {
	List(ctx context.Context, dateToken, startDate, endDate string, page query.PageRequest) (*ListResult, error)
	Recent(ctx context.Context, limit int) ([]map[string]interface{}, error)
	FilterByColumn(ctx context.Context, column, value, dateToken string, page query.PageRequest) (*ListResult, error)
	AdvancedSearch(ctx context.Context, params map[string]string, page query.PageRequest) (*ListResult, error)
	GetByID(ctx context.Context, id int) (map[string]interface{}, error)
	ByWeightRange(ctx context.Context, minWeight, maxWeight string, limit int) ([]map[string]interface{}, error)
	ByShipper(ctx context.Context, name string, limit int) ([]map[string]interface{}, error)
	ByConsignee(ctx context.Context, name string, limit int) ([]map[string]interface{}, error)
}

type ShipmentServiceImpl struct {
	repo ShipmentRepository

	// now is swappable for tests exercising date-token windows.
	now func() time.Time
}

func NewShipmentService(repo ShipmentRepository) ShipmentService {
	return &ShipmentServiceImpl{repo: repo, now: time.Now}
}

// paged runs the shared count-then-page sequence for one predicate set. Both
// statements come from the same builder so the total always matches the rows.
func (s *ShipmentServiceImpl) paged(ctx context.Context, b *query.Builder, page query.PageRequest) (*ListResult, error) {
	count, data := query.Compose("*", b, page)

	total, err := s.repo.Count(ctx, count)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.QueryMaps(ctx, data)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Data:       rows,
		Pagination: common_models.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// List pages the table, newest first. An explicit start_date/end_date pair
// takes precedence over the named date token; either bound may stand alone.
func (s *ShipmentServiceImpl) List(ctx context.Context, dateToken, startDate, endDate string, page query.PageRequest) (*ListResult, error) {
	b := &query.Builder{}

	start := query.NormalizeISODate(startDate)
	end := query.NormalizeISODate(endDate)
	switch {
	case start != "" && end != "":
		query.AddDateRange(b, &query.DateRange{Start: start, End: end})
	case start != "":
		b.WhereTime(query.LegacyDateExpr("shipment_creation_date")+" >= ?", start)
	case end != "":
		b.WhereTime(query.LegacyDateExpr("shipment_creation_date")+" <= ?", end)
	default:
		query.AddDateRange(b, query.ParseDateToken(dateToken, s.now()))
	}

	return s.paged(ctx, b, page)
}

// Recent returns the newest rows by the covered id index.
func (s *ShipmentServiceImpl) Recent(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	return s.repo.QueryMaps(ctx, query.ComposeLimited("*", &query.Builder{}, limit))
}

func (s *ShipmentServiceImpl) FilterByColumn(ctx context.Context, column, value, dateToken string, page query.PageRequest) (*ListResult, error) {
	col, ok := query.LookupColumn(column)
	if !ok {
		return nil, ErrUnknownColumn
	}

	b := &query.Builder{}
	b.Where(col+" ILIKE ?", "%"+value+"%")
	query.AddDateRange(b, query.ParseDateToken(dateToken, s.now()))
	return s.paged(ctx, b, page)
}

func (s *ShipmentServiceImpl) AdvancedSearch(ctx context.Context, params map[string]string, page query.PageRequest) (*ListResult, error) {
	b := query.BuildShipmentPredicates(params)
	return s.paged(ctx, b, page)
}

func (s *ShipmentServiceImpl) GetByID(ctx context.Context, id int) (map[string]interface{}, error) {
	return s.repo.GetByID(ctx, id)
}

// ByWeightRange filters on the scrubbed numeric weight. Bounds that fail to
// parse are dropped, so "min_weight=abc" degrades to an unbounded scan rather
// than an error.
func (s *ShipmentServiceImpl) ByWeightRange(ctx context.Context, minWeight, maxWeight string, limit int) ([]map[string]interface{}, error) {
	b := &query.Builder{}
	if v, ok := query.ExtractNumeric(minWeight); ok {
		b.Where(query.NumericExpr("shipment_weight")+" >= ?", v)
	}
	if v, ok := query.ExtractNumeric(maxWeight); ok {
		b.Where(query.NumericExpr("shipment_weight")+" <= ?", v)
	}
	return s.repo.QueryMaps(ctx, query.ComposeLimited("*", b, limit))
}

func (s *ShipmentServiceImpl) ByShipper(ctx context.Context, name string, limit int) ([]map[string]interface{}, error) {
	b := &query.Builder{}
	b.Where("shipper_name ILIKE ?", "%"+name+"%")
	return s.repo.QueryMaps(ctx, query.ComposeLimited("*", b, limit))
}

func (s *ShipmentServiceImpl) ByConsignee(ctx context.Context, name string, limit int) ([]map[string]interface{}, error) {
	b := &query.Builder{}
	b.Where("consignee_name ILIKE ?", "%"+name+"%")
	return s.repo.QueryMaps(ctx, query.ComposeLimited("*", b, limit))
}
