package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/planner"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// snapshotRetention is how many plan-health snapshots are kept per prune.
const snapshotRetention = 30

// SnapshotService materializes plan-health summaries on a schedule so the
// dashboard can read a pre-calculated row instead of recomputing the full
// deviation window on every request. The live endpoint remains available for
// callers that need up-to-the-second numbers.
type SnapshotService struct {
	plannerService *PlannerService
	snapshotRepo   *repository.SnapshotRepository
	scheduler      *cron.Cron
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	plannerService *PlannerService,
	snapshotRepo *repository.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		plannerService: plannerService,
		snapshotRepo:   snapshotRepo,
	}
}

// Refresh computes the current plan health and stores it as the newest
// snapshot, pruning history beyond the retention window.
func (s *SnapshotService) Refresh() (model.PlanHealthSnapshot, error) {
	input, err := s.plannerService.healthInput()
	if err != nil {
		return model.PlanHealthSnapshot{}, fmt.Errorf("failed to assemble plan health input: %w", err)
	}

	snapshot := model.PlanHealthSnapshot{
		ID:           uuid.NewString(),
		Health:       planner.CalculatePlanHealth(input),
		GoalCount:    len(input.Goals),
		CalculatedAt: time.Now().UTC(),
	}

	if err := s.snapshotRepo.SaveSnapshot(snapshot); err != nil {
		return model.PlanHealthSnapshot{}, err
	}
	if err := s.snapshotRepo.PruneSnapshots(snapshotRetention); err != nil {
		return model.PlanHealthSnapshot{}, err
	}
	return snapshot, nil
}

// GetLatest returns the most recent stored snapshot, computing one on the
// spot when none has been stored yet.
func (s *SnapshotService) GetLatest() (model.PlanHealthSnapshot, error) {
	snapshot, err := s.snapshotRepo.GetLatestSnapshot()
	if err == nil {
		return snapshot, nil
	}
	return s.Refresh()
}

// Start schedules periodic refreshes using the given cron expression and
// runs one refresh immediately so a fresh deployment has a snapshot.
func (s *SnapshotService) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := s.Refresh(); err != nil {
			log.Printf("plan health snapshot refresh failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", schedule, err)
	}
	c.Start()
	s.scheduler = c

	if _, err := s.Refresh(); err != nil {
		log.Printf("initial plan health snapshot failed: %v", err)
	}
	return nil
}

// Stop halts the refresh schedule, waiting for any in-flight run.
func (s *SnapshotService) Stop() {
	if s.scheduler == nil {
		return
	}
	ctx := s.scheduler.Stop()
	<-ctx.Done()
}
