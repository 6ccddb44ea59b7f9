package search

import (
	"context"
	"strings"
	"time"

	common_models "go-shipdata/internal/common/models"
	"go-shipdata/internal/features/shipment"
	"go-shipdata/internal/query"
)

type SearchService interface {
	Search(ctx context.Context, term, dateToken string, page query.PageRequest) (*shipment.ListResult, error)
}

type SearchServiceImpl struct {
	shipmentRepo shipment.ShipmentRepository
	now          func() time.Time
}

func NewSearchService(shipmentRepo shipment.ShipmentRepository) SearchService {
	return &SearchServiceImpl{shipmentRepo: shipmentRepo, now: time.Now}
}

// Search fans the term out across the indexed text columns with a single OR
// group, optionally narrowed by a creation-date token.
func (s *SearchServiceImpl) Search(ctx context.Context, term, dateToken string, page query.PageRequest) (*shipment.ListResult, error) {
	pattern := "%" + term + "%"

	frags := make([]string, 0, len(query.SearchColumns))
	args := make([]interface{}, 0, len(query.SearchColumns))
	for _, col := range query.SearchColumns {
		frags = append(frags, col+" ILIKE ?")
		args = append(args, pattern)
	}

	b := &query.Builder{}
	b.Where("("+strings.Join(frags, " OR ")+")", args...)
	query.AddDateRange(b, query.ParseDateToken(dateToken, s.now()))

	count, data := query.Compose("*", b, page)

	total, err := s.shipmentRepo.Count(ctx, count)
	if err != nil {
		return nil, err
	}
	rows, err := s.shipmentRepo.QueryMaps(ctx, data)
	if err != nil {
		return nil, err
	}

	return &shipment.ListResult{
		Data:       rows,
		Pagination: common_models.NewPagination(page.Page, page.Limit, total),
	}, nil
}
