package stats

import (
	"context"
	"time"

	"go-shipdata/internal/query"
)

type StatsService interface {
	TopCustomers(ctx context.Context, dateToken string, limit int) ([]CustomerCount, bool, error)
	TopCities(ctx context.Context, dateToken string, limit int) ([]CityCount, bool, error)
	ShipmentsByCity(ctx context.Context, city string, limit int) ([]CityCount, error)
	AverageWeight(ctx context.Context, dateToken string) (float64, int, error)
	Total(ctx context.Context, dateToken string) (int, error)
}

type StatsServiceImpl struct {
	repo StatsRepository
	now  func() time.Time
}

func NewStatsService(repo StatsRepository) StatsService {
	return &StatsServiceImpl{repo: repo, now: time.Now}
}

// TopCustomers ranks shippers by shipment count. With a time window the scan
// filters on the typed processing_date column and the figures are exact;
// without one the ranking runs over the recent sample and the second return
// reports that.
func (s *StatsServiceImpl) TopCustomers(ctx context.Context, dateToken string, limit int) ([]CustomerCount, bool, error) {
	return topCounts(ctx, s, "shipper_name", dateToken, limit, s.repo.NameCounts)
}

func (s *StatsServiceImpl) TopCities(ctx context.Context, dateToken string, limit int) ([]CityCount, bool, error) {
	return topCounts(ctx, s, "consignee_city", dateToken, limit, s.repo.CityCounts)
}

func topCounts[T any](ctx context.Context, s *StatsServiceImpl, column, dateToken string, limit int, scan func(context.Context, query.Statement) ([]T, error)) ([]T, bool, error) {
	start, end, ok := query.ParseDateWindow(dateToken, s.now())
	if ok {
		stmt := query.Statement{
			SQL: query.Rebind("SELECT " + column + ", COUNT(*) AS cnt FROM shipments" +
				" WHERE processing_date >= ? AND processing_date <= ?" +
				" AND " + column + " IS NOT NULL AND " + column + " != ''" +
				" GROUP BY " + column + " ORDER BY cnt DESC LIMIT ?"),
			Args: []interface{}{start, end, limit},
		}
		rows, err := scan(ctx, stmt)
		return rows, false, err
	}

	stmt := query.Statement{
		SQL: query.Rebind(query.SampleCTE(column, dateToken) +
			" SELECT " + column + ", COUNT(*) AS cnt FROM recent_shipments" +
			" WHERE " + column + " IS NOT NULL AND " + column + " != ''" +
			" GROUP BY " + column + " ORDER BY cnt DESC LIMIT ?"),
		Args: []interface{}{limit},
	}
	rows, err := scan(ctx, stmt)
	return rows, true, err
}

// ShipmentsByCity counts shipments per destination city matching the given
// pattern, over the recent sample.
func (s *StatsServiceImpl) ShipmentsByCity(ctx context.Context, city string, limit int) ([]CityCount, error) {
	stmt := query.Statement{
		SQL: query.Rebind(query.SampleCTE("consignee_city", "") +
			" SELECT consignee_city, COUNT(*) AS cnt FROM recent_shipments" +
			" WHERE consignee_city ILIKE ?" +
			" GROUP BY consignee_city ORDER BY cnt DESC LIMIT ?"),
		Args: []interface{}{"%" + city + "%", limit},
	}
	return s.repo.CityCounts(ctx, stmt)
}

// AverageWeight computes the mean scrubbed weight over the recent sample,
// along with the number of rows that carried a usable weight. The sample cap
// follows the date token so a "today" figure reflects roughly a day's traffic.
// Always an estimate.
func (s *StatsServiceImpl) AverageWeight(ctx context.Context, dateToken string) (float64, int, error) {
	expr := query.NumericExpr("shipment_weight")
	stmt := query.Statement{
		SQL: query.SampleCTE("shipment_weight", dateToken) +
			" SELECT AVG(" + expr + "), COUNT(" + expr + ") FROM recent_shipments",
	}
	return s.repo.AvgAndCount(ctx, stmt)
}

// Total counts shipments: exact over the typed processing_date window when a
// token applies, a plain full count otherwise.
func (s *StatsServiceImpl) Total(ctx context.Context, dateToken string) (int, error) {
	start, end, ok := query.ParseDateWindow(dateToken, s.now())
	if !ok {
		return s.repo.ScanInt(ctx, query.Statement{SQL: "SELECT COUNT(*) FROM shipments"})
	}
	stmt := query.Statement{
		SQL:  query.Rebind("SELECT COUNT(*) FROM shipments WHERE processing_date >= ? AND processing_date <= ?"),
		Args: []interface{}{start, end},
	}
	return s.repo.ScanInt(ctx, stmt)
}
