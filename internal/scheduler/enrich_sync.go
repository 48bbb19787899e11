// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"goodshelf/internal/entities"
	"goodshelf/internal/tasks"
)

// SyncRecorder persists the outcome of the last scheduled run.
type SyncRecorder interface {
	SetSetting(key, value string) error
}

// EnrichSyncScheduler periodically enqueues a bulk metadata enrichment
// task so saved books pick up catalog details over time.
type EnrichSyncScheduler struct {
	taskClient *tasks.Client
	recorder   SyncRecorder
	schedule   string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewEnrichSyncScheduler creates a scheduler with a standard 5-field cron
// schedule (e.g. "0 3 * * 0" for Sundays at 03:00).
func NewEnrichSyncScheduler(taskClient *tasks.Client, recorder SyncRecorder, schedule string) *EnrichSyncScheduler {
	return &EnrichSyncScheduler{
		taskClient: taskClient,
		recorder:   recorder,
		schedule:   schedule,
		cron:       cron.New(),
	}
}

// Start begins the schedule. Safe to call once; repeated calls are no-ops.
func (s *EnrichSyncScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSync)
	if err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	log.Printf("Enrichment scheduler: started with schedule %q", s.schedule)
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (s *EnrichSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("Enrichment scheduler: stopped")
}

// NextRunTime returns when the next run is due, or nil when stopped.
func (s *EnrichSyncScheduler) NextRunTime() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			next := entry.Next
			return &next
		}
	}
	return nil
}

func (s *EnrichSyncScheduler) runSync() {
	log.Printf("Enrichment scheduler: enqueueing bulk enrichment")

	_, err := s.taskClient.Add(tasks.EnrichAllBooksTask{}).Save()
	now := time.Now().Format(time.RFC3339)
	if err != nil {
		log.Printf("Enrichment scheduler: failed to enqueue: %v", err)
		_ = s.recorder.SetSetting(entities.SettingKeyEnrichSyncLastStatus, "failed")
		_ = s.recorder.SetSetting(entities.SettingKeyEnrichSyncLastMessage, err.Error())
		return
	}

	_ = s.recorder.SetSetting(entities.SettingKeyEnrichSyncLastAt, now)
	_ = s.recorder.SetSetting(entities.SettingKeyEnrichSyncLastStatus, "enqueued")
	_ = s.recorder.SetSetting(entities.SettingKeyEnrichSyncLastMessage, "bulk enrichment enqueued")
}
