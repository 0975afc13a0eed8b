package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/usecases/collecting"
	"github.com/vfg2006/searchad-collector/pkg/utils"
)

// CollectSyncService agenda o run diário de coleta. Cada execução coleta a
// data de ontem para todas as contas do roster.
type CollectSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.CollectSync
	collector collecting.Collector

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCollectSyncService(collector collecting.Collector, appConfig *config.Config) *CollectSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.CollectSync.CronSchedule,
		"max_concurrent_jobs": appConfig.CollectSync.MaxConcurrentJobs,
		"sync_enabled":        appConfig.CollectSync.Enabled,
	}).Info("Configuração do agendador de coleta carregada")

	return &CollectSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		cfg:       appConfig.CollectSync,
		collector: collector,
	}
}

// Start agenda o run de coleta e fica ouvindo o cancelamento do contexto.
func (s *CollectSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Coleta agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de coleta")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runCollect()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a coleta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CollectSyncService) runCollect() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta já em andamento, ignorando")
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

	targetDate := utils.Yesterday()
	if _, err := s.collector.Run(context.Background(), targetDate, 0); err != nil {
		logrus.WithError(err).Error("Run agendado de coleta falhou")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um run de coleta.
func (s *CollectSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual")
	go s.runCollect()
}

// GetStatus retorna o status atual do agendador.
func (s *CollectSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_max_concurrent":    s.cfg.MaxConcurrentJobs,
		"stats_batch_size":       s.cfg.StatsBatchSize,
		"report_poll_seconds":    s.cfg.ReportPollSeconds,
		"report_poll_attempts":   s.cfg.ReportPollAttempts,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
