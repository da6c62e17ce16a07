package storage

import (
	"time"

	"github.com/roylee0704/gron"

	"bevlog/internal/providers"
	"bevlog/internal/storage/interfaces"
	"bevlog/internal/structures"
)

// Scheduler periodically snapshots the document to the backup path and
// drives the store's startup/shutdown persistence hooks.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   StoreInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Storage.SnapshotInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		start := time.Now()
		err := s.store.Snapshot()
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while snapshotting data: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeApp, "Snapshotted document to %s", s.config.Storage.BackupFile)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore runs first-run initialization and the variants backfill. Errors
// are reported to the caller for logging but must not abort startup.
func (s *Scheduler) Restore() error {
	return s.store.Initialize()
}

// Persist writes a final backup generation on shutdown.
func (s *Scheduler) Persist() error {
	start := time.Now()
	s.logger.Infof(providers.TypeApp, "Snapshotting document before shutdown...")
	err := s.store.Snapshot()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while snapshotting data: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store StoreInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		metrics: metrics,
	}
}
