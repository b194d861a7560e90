package storage

import (
	"github.com/roylee0704/gron"
	"holidaze/internal/providers"
	"holidaze/internal/storage/interfaces"
	"holidaze/internal/structures"
	"sync"
	"time"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   StoreInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	interval := s.config.Store.SaveInterval
	if interval <= 0 {
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		if err := s.persist(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting store: %s", err)
		}
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeApp, "Persisting store...")
	err := s.persist()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting store: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.store.Persist()
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return err
}

func NewScheduler(config *structures.Config, logger providers.Logger, store StoreInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		metrics: metrics,
	}
}
