package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-shipdata/internal/query"
)

type fakeStatsRepo struct {
	lastStmt query.Statement
}

func (f *fakeStatsRepo) NameCounts(ctx context.Context, stmt query.Statement) ([]CustomerCount, error) {
	f.lastStmt = stmt
	return []CustomerCount{}, nil
}

func (f *fakeStatsRepo) CityCounts(ctx context.Context, stmt query.Statement) ([]CityCount, error) {
	f.lastStmt = stmt
	return []CityCount{}, nil
}

func (f *fakeStatsRepo) AvgAndCount(ctx context.Context, stmt query.Statement) (float64, int, error) {
	f.lastStmt = stmt
	return 0, 0, nil
}

func (f *fakeStatsRepo) ScanInt(ctx context.Context, stmt query.Statement) (int, error) {
	f.lastStmt = stmt
	return 0, nil
}

func newTestStats(repo *fakeStatsRepo) *StatsServiceImpl {
	return &StatsServiceImpl{
		repo: repo,
		now: func() time.Time {
			return time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
		},
	}
}

func TestTopCustomersFilteredUsesTypedColumn(t *testing.T) {
	repo := &fakeStatsRepo{}
	s := newTestStats(repo)

	_, sampled, err := s.TopCustomers(context.Background(), "week", 10)
	if err != nil {
		t.Fatal(err)
	}
	if sampled {
		t.Error("time-filtered ranking reported as sampled")
	}
	if !strings.Contains(repo.lastStmt.SQL, "processing_date >= $1") {
		t.Errorf("SQL = %s", repo.lastStmt.SQL)
	}
	if strings.Contains(repo.lastStmt.SQL, "recent_shipments") {
		t.Errorf("filtered ranking must not sample: %s", repo.lastStmt.SQL)
	}
	if len(repo.lastStmt.Args) != 3 {
		t.Errorf("args = %v", repo.lastStmt.Args)
	}
}

func TestTopCustomersUnfilteredSamples(t *testing.T) {
	repo := &fakeStatsRepo{}
	s := newTestStats(repo)

	_, sampled, err := s.TopCustomers(context.Background(), "total", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !sampled {
		t.Error("unfiltered ranking not reported as sampled")
	}
	if !strings.Contains(repo.lastStmt.SQL, "WITH recent_shipments AS") {
		t.Errorf("SQL = %s", repo.lastStmt.SQL)
	}
	if !strings.Contains(repo.lastStmt.SQL, "LIMIT 100000") {
		t.Errorf("fallback sample cap missing: %s", repo.lastStmt.SQL)
	}
}

func TestAverageWeightScalesSampleToToken(t *testing.T) {
	repo := &fakeStatsRepo{}
	s := newTestStats(repo)

	if _, _, err := s.AverageWeight(context.Background(), "today"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(repo.lastStmt.SQL, "LIMIT 24000") {
		t.Errorf("today sample cap missing: %s", repo.lastStmt.SQL)
	}
	if !strings.Contains(repo.lastStmt.SQL, "AVG(") {
		t.Errorf("SQL = %s", repo.lastStmt.SQL)
	}
	if !strings.Contains(repo.lastStmt.SQL, "COUNT(") {
		t.Errorf("companion count missing: %s", repo.lastStmt.SQL)
	}
}

func TestTotalExactWhenUnfiltered(t *testing.T) {
	repo := &fakeStatsRepo{}
	s := newTestStats(repo)

	if _, err := s.Total(context.Background(), "total"); err != nil {
		t.Fatal(err)
	}
	if repo.lastStmt.SQL != "SELECT COUNT(*) FROM shipments" {
		t.Errorf("SQL = %s", repo.lastStmt.SQL)
	}

	if _, err := s.Total(context.Background(), "month"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(repo.lastStmt.SQL, "processing_date >= $1 AND processing_date <= $2") {
		t.Errorf("SQL = %s", repo.lastStmt.SQL)
	}
}
