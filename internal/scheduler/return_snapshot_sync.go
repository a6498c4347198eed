// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/infrastructure/repository"
	"github.com/vfg2006/reminder-return-api/internal/config"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
)

// Tempo máximo de uma sincronização disparada manualmente
const manualSyncTimeout = 10 * time.Minute

type ReturnSnapshotSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReturnSnapshotSyncService grava periodicamente o consolidado de retorno de cada período
type ReturnSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            returning.ReturnAnalyzer
	snapshotRepo        repository.ReturnSnapshotRepository
	config              ReturnSnapshotSyncConfig
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncPeriods     int
}

func NewReturnSnapshotSyncService(
	analyzer returning.ReturnAnalyzer,
	snapshotRepo repository.ReturnSnapshotRepository,
	cfg *config.Config,
) *ReturnSnapshotSyncService {
	syncConfig := ReturnSnapshotSyncConfig{
		CronSchedule: cfg.ReturnSnapshotSync.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.ReturnSnapshotSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de snapshots de retorno carregada")

	return &ReturnSnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		analyzer:     analyzer,
		snapshotRepo: snapshotRepo,
		config:       syncConfig,
		baseCtx:      context.Background(),
	}
}

func (s *ReturnSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshots de retorno desabilitada por configuração")
		return nil
	}

	// Disparos manuais herdam o contexto da aplicação
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de retorno")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncReturnSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots de retorno")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de retorno: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de retorno")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncReturnSnapshots executa a análise completa e grava um snapshot por período.
// Uma execução concorrente é ignorada.
func (s *ReturnSnapshotSyncService) SyncReturnSnapshots(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de snapshots de retorno já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	periods, err := s.syncSnapshots(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncPeriods = periods
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

func (s *ReturnSnapshotSyncService) syncSnapshots(ctx context.Context) (int, error) {
	start := time.Now()
	logrus.Info("Iniciando sincronização de snapshots de retorno")

	summary, err := s.analyzer.GetSummary(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("erro ao consolidar análise de retorno: %w", err)
	}

	snapshots := buildSnapshots(summary)
	if len(snapshots) == 0 {
		logrus.Info("Nenhum período para gravar snapshots de retorno")
		return 0, nil
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		return 0, fmt.Errorf("erro ao gravar snapshots de retorno: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"periods":  len(snapshots),
		"duration": time.Since(start).String(),
	}).Info("Sincronização de snapshots de retorno concluída")

	return len(snapshots), nil
}

func buildSnapshots(summary *domain.ReturnSummary) []*domain.ReturnSnapshot {
	if summary == nil {
		return nil
	}

	snapshots := make([]*domain.ReturnSnapshot, 0, len(summary.Periods))
	for _, period := range summary.Periods {
		snapshots = append(snapshots, &domain.ReturnSnapshot{
			Period:              period.Period,
			Sent:                period.Sent,
			Returned:            period.Returned,
			ValueGenerated:      period.ValueGenerated,
			AverageDaysToReturn: period.AverageDaysToReturn,
		})
	}
	return snapshots
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots de retorno
func (s *ReturnSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de retorno já em andamento, ignorando solicitação manual")
		return
	}
	parent := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots de retorno")
	go func() {
		ctx, cancel := context.WithTimeout(parent, manualSyncTimeout)
		defer cancel()

		if err := s.SyncReturnSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots de retorno")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReturnSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_periods":      s.lastSyncPeriods,
		"last_sync_error":        s.lastSyncError,
	}
}
