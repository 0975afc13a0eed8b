package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/usecases/balance"
)

// BizmoneySyncService agenda o snapshot diário de saldo de bizmoney.
type BizmoneySyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.BizmoneySync
	collector balance.Collector

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewBizmoneySyncService(collector balance.Collector, appConfig *config.Config) *BizmoneySyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.BizmoneySync.CronSchedule,
		"max_concurrent_jobs": appConfig.BizmoneySync.MaxConcurrentJobs,
		"sync_enabled":        appConfig.BizmoneySync.Enabled,
	}).Info("Configuração do agendador de bizmoney carregada")

	return &BizmoneySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       appConfig.BizmoneySync,
		collector: collector,
	}
}

func (s *BizmoneySyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Coleta de bizmoney desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de bizmoney")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runCollect()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a coleta de bizmoney: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de bizmoney")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *BizmoneySyncService) runCollect() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de bizmoney já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if _, err := s.collector.Run(context.Background()); err != nil {
		logrus.WithError(err).Error("Run agendado de bizmoney falhou")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um snapshot de bizmoney.
func (s *BizmoneySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de bizmoney já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de bizmoney")
	go s.runCollect()
}

// GetStatus retorna o status atual do agendador.
func (s *BizmoneySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_max_concurrent":    s.cfg.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
