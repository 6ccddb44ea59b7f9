package schedule

import (
	"context"
	"testing"
	"time"

	"go-shipdata/internal/features/report"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeScheduleRepo struct {
	active []ScheduledReport
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *ScheduledReport) error { return nil }
func (f *fakeScheduleRepo) Get(ctx context.Context, id string) (*ScheduledReport, error) {
	return nil, context.Canceled
}
func (f *fakeScheduleRepo) List(ctx context.Context) ([]ScheduledReport, error) { return nil, nil }
func (f *fakeScheduleRepo) ListActive(ctx context.Context) ([]ScheduledReport, error) {
	return f.active, nil
}
func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *ScheduledReport) error { return nil }
func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error                 { return nil }
func (f *fakeScheduleRepo) DeleteByReport(ctx context.Context, reportID string) ([]string, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) RecordRun(ctx context.Context, id string, nextRun time.Time) error {
	return nil
}

type fakeReportService struct{}

func (fakeReportService) CreateReport(ctx context.Context, r *report.CustomReport) error { return nil }
func (fakeReportService) GetReport(ctx context.Context, id string) (*report.CustomReport, error) {
	return &report.CustomReport{}, nil
}
func (fakeReportService) ListReports(ctx context.Context) ([]report.CustomReport, error) {
	return nil, nil
}
func (fakeReportService) UpdateReport(ctx context.Context, r *report.CustomReport) error { return nil }
func (fakeReportService) DeleteReport(ctx context.Context, id string) error              { return nil }
func (fakeReportService) RunReport(ctx context.Context, id string) (*report.RunResult, error) {
	return nil, nil
}
func (fakeReportService) ExportReport(ctx context.Context, id string, format string) ([]byte, string, error) {
	return nil, "", nil
}

func newTestSchedule(repo ScheduleRepository) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		repo:          repo,
		reportService: fakeReportService{},
		exportDir:     "",
		log:           zap.NewNop(),
		jobEntries:    make(map[string]cron.EntryID),
	}
}

func dailySchedule() *ScheduledReport {
	return &ScheduledReport{
		ID:       primitive.NewObjectID(),
		ReportID: primitive.NewObjectID(),
		Name:     "morning run",
		Cadence:  Cadence{Frequency: "daily", Time: "08:00"},
		Format:   "csv",
		Active:   true,
	}
}

func TestRegisterJobBeforeInitIsNoop(t *testing.T) {
	s := newTestSchedule(&fakeScheduleRepo{})

	sched := dailySchedule()
	if err := s.RegisterJob(sched); err != nil {
		t.Fatalf("RegisterJob before init: %v", err)
	}
	if len(s.jobEntries) != 0 {
		t.Errorf("entries registered without a scheduler: %v", s.jobEntries)
	}

	// Must not panic on a nil scheduler either.
	s.UnregisterJob(sched.ID.Hex())
}

func TestInitializeSchedulerRegistersActive(t *testing.T) {
	sched := dailySchedule()
	repo := &fakeScheduleRepo{active: []ScheduledReport{*sched}}
	s := newTestSchedule(repo)

	if err := s.InitializeScheduler(context.Background()); err != nil {
		t.Fatalf("InitializeScheduler: %v", err)
	}
	defer s.StopScheduler()

	if len(s.jobEntries) != 1 {
		t.Fatalf("got %d registered entries, want 1", len(s.jobEntries))
	}

	other := dailySchedule()
	if err := s.RegisterJob(other); err != nil {
		t.Fatalf("RegisterJob after init: %v", err)
	}
	if len(s.jobEntries) != 2 {
		t.Fatalf("got %d registered entries, want 2", len(s.jobEntries))
	}

	s.UnregisterJob(other.ID.Hex())
	if len(s.jobEntries) != 1 {
		t.Fatalf("got %d registered entries after unregister, want 1", len(s.jobEntries))
	}
}
