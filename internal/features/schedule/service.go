package schedule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-shipdata/internal/config"
	"go-shipdata/internal/features/report"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type ScheduleService interface {
	CreateSchedule(ctx context.Context, schedule *ScheduledReport) error
	GetSchedule(ctx context.Context, id string) (*ScheduledReport, error)
	ListSchedules(ctx context.Context) ([]ScheduledReport, error)
	UpdateSchedule(ctx context.Context, schedule *ScheduledReport) error
	DeleteSchedule(ctx context.Context, id string) error
	DeleteByReport(ctx context.Context, reportID string) error
	InitializeScheduler(ctx context.Context) error
	StopScheduler() error
	RegisterJob(schedule *ScheduledReport) error
	UnregisterJob(id string)
}

type ScheduleServiceImpl struct {
	repo          ScheduleRepository
	reportService report.ReportService
	exportDir     string
	log           *zap.Logger

	scheduler  *cron.Cron
	jobEntries map[string]cron.EntryID
	mu         sync.RWMutex
}

func NewScheduleService(
	repo ScheduleRepository,
	reportService report.ReportService,
	cfg *config.Config,
	log *zap.Logger,
) ScheduleService {
	return &ScheduleServiceImpl{
		repo:          repo,
		reportService: reportService,
		exportDir:     cfg.ExportDir,
		log:           log,
		jobEntries:    make(map[string]cron.EntryID),
	}
}

func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, schedule *ScheduledReport) error {
	if err := s.validate(ctx, schedule); err != nil {
		return err
	}

	spec, _ := schedule.Cadence.CronSpec()
	parsed, _ := cron.ParseStandard(spec)
	nextRun := parsed.Next(time.Now())
	schedule.NextRun = &nextRun

	if err := s.repo.Create(ctx, schedule); err != nil {
		return err
	}

	if schedule.Active {
		if err := s.RegisterJob(schedule); err != nil {
			s.log.Error("failed to register schedule", zap.String("id", schedule.ID.Hex()), zap.Error(err))
		}
	}

	return nil
}

func (s *ScheduleServiceImpl) validate(ctx context.Context, schedule *ScheduledReport) error {
	if schedule.Name == "" {
		return fmt.Errorf("name is required")
	}
	if schedule.ReportID.IsZero() {
		return fmt.Errorf("report_id is required")
	}
	if schedule.Format == "" {
		schedule.Format = "csv"
	}

	spec, err := schedule.Cadence.CronSpec()
	if err != nil {
		return fmt.Errorf("invalid cadence: %w", err)
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cadence: %w", err)
	}

	// The report must exist before it can be scheduled.
	if _, err := s.reportService.GetReport(ctx, schedule.ReportID.Hex()); err != nil {
		return fmt.Errorf("report not found: %s", schedule.ReportID.Hex())
	}

	return nil
}

func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (*ScheduledReport, error) {
	return s.repo.Get(ctx, id)
}

func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context) ([]ScheduledReport, error) {
	return s.repo.List(ctx)
}

func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, schedule *ScheduledReport) error {
	if err := s.validate(ctx, schedule); err != nil {
		return err
	}

	spec, _ := schedule.Cadence.CronSpec()
	parsed, _ := cron.ParseStandard(spec)
	nextRun := parsed.Next(time.Now())
	schedule.NextRun = &nextRun

	if err := s.repo.Update(ctx, schedule); err != nil {
		return err
	}

	s.UnregisterJob(schedule.ID.Hex())
	if schedule.Active {
		if err := s.RegisterJob(schedule); err != nil {
			s.log.Error("failed to re-register schedule", zap.String("id", schedule.ID.Hex()), zap.Error(err))
		}
	}

	return nil
}

func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.UnregisterJob(id)
	return nil
}

// DeleteByReport cascades a report deletion into its schedules.
func (s *ScheduleServiceImpl) DeleteByReport(ctx context.Context, reportID string) error {
	ids, err := s.repo.DeleteByReport(ctx, reportID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		s.UnregisterJob(id)
	}
	return nil
}

// InitializeScheduler starts the cron loop and registers every active
// schedule found in storage.
func (s *ScheduleServiceImpl) InitializeScheduler(ctx context.Context) error {
	scheduler := cron.New()
	s.mu.Lock()
	s.scheduler = scheduler
	s.mu.Unlock()

	schedules, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}

	for i := range schedules {
		if err := s.RegisterJob(&schedules[i]); err != nil {
			s.log.Error("failed to register schedule on startup",
				zap.String("id", schedules[i].ID.Hex()), zap.Error(err))
		}
	}

	scheduler.Start()
	s.log.Info("report scheduler started", zap.Int("schedules", len(schedules)))
	return nil
}

func (s *ScheduleServiceImpl) StopScheduler() error {
	s.mu.RLock()
	scheduler := s.scheduler
	s.mu.RUnlock()

	if scheduler != nil {
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
	}
	return nil
}

// RegisterJob adds a schedule to the running cron loop. Before the scheduler
// is initialized this is a no-op; InitializeScheduler picks every active
// schedule up from storage.
func (s *ScheduleServiceImpl) RegisterJob(schedule *ScheduledReport) error {
	spec, err := schedule.Cadence.CronSpec()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return nil
	}

	id := schedule.ID.Hex()
	entryID, err := s.scheduler.AddFunc(spec, func() {
		s.runScheduled(id)
	})
	if err != nil {
		return err
	}

	s.jobEntries[id] = entryID
	return nil
}

func (s *ScheduleServiceImpl) UnregisterJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduler == nil {
		return
	}
	if entryID, ok := s.jobEntries[id]; ok {
		s.scheduler.Remove(entryID)
		delete(s.jobEntries, id)
	}
}

// runScheduled fires one schedule: export the report and drop the file into
// the export directory. A schedule whose report has been removed out of band
// deactivates itself by unregistering.
func (s *ScheduleServiceImpl) runScheduled(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	schedule, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Warn("schedule vanished, unregistering", zap.String("id", id))
		s.UnregisterJob(id)
		return
	}

	data, _, err := s.reportService.ExportReport(ctx, schedule.ReportID.Hex(), schedule.Format)
	if err != nil {
		s.log.Error("scheduled report run failed",
			zap.String("id", id), zap.String("report_id", schedule.ReportID.Hex()), zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		s.log.Error("failed to create export dir", zap.Error(err))
		return
	}

	filename := fmt.Sprintf("scheduled_%s_%s.%s",
		schedule.ID.Hex(), time.Now().Format("20060102_150405"), schedule.Format)
	if err := os.WriteFile(filepath.Join(s.exportDir, filename), data, 0o644); err != nil {
		s.log.Error("failed to write scheduled report", zap.Error(err))
		return
	}

	spec, _ := schedule.Cadence.CronSpec()
	parsed, _ := cron.ParseStandard(spec)
	if err := s.repo.RecordRun(ctx, id, parsed.Next(time.Now())); err != nil {
		s.log.Error("failed to record schedule run", zap.Error(err))
	}

	s.log.Info("scheduled report written",
		zap.String("id", id), zap.String("filename", filename))
}
