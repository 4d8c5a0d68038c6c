package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/reconciling"
)

// ReconcilerSyncConfig representa a configuração do agendador de reconciliação
type ReconcilerSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ReconcilerSyncService varre os agendamentos persistidos a cada minuto e
// dispara a reconciliação das contas com horários vencidos
type ReconcilerSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReconcilerSyncConfig
	appConfig           *config.Config
	scheduleRepo        repository.ScheduleRepository
	reconciler          reconciling.ReconcilerService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

// NewReconcilerSyncService cria uma nova instância do serviço de reconciliação
func NewReconcilerSyncService(
	scheduleRepo repository.ScheduleRepository,
	reconciler reconciling.ReconcilerService,
	appConfig *config.Config,
) *ReconcilerSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReconcilerSyncConfig{
		CronSchedule:      appConfig.Reconciler.CronSchedule,
		MaxConcurrentJobs: appConfig.Reconciler.MaxConcurrentJobs,
		SyncEnabled:       appConfig.Reconciler.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &ReconcilerSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		scheduleRepo: scheduleRepo,
		reconciler:   reconciler,
		syncRunning:  false,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *ReconcilerSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação de campanhas")

	// Agendar a varredura dos agendamentos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reconcileDueSchedules(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de campanhas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// reconcileDueSchedules varre todos os agendamentos e reconcilia os
// horários que vencem no minuto corrente
func (s *ReconcilerSyncService) reconcileDueSchedules(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := s.now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	records, err := s.scheduleRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar agendamentos para reconciliação")
		return
	}

	if len(records) == 0 {
		return
	}

	// O vencimento de um horário é avaliado no fuso do negócio
	now := startTime.In(s.appConfig.BusinessLocation())

	due := s.collectDueSlots(records, now)
	if len(due) == 0 {
		s.lastSyncCompletedAt = s.now()
		return
	}

	logrus.WithFields(logrus.Fields{
		"total_schedules": len(records),
		"due_slots":       len(due),
		"minute":          now.Format("15:04"),
	}).Info("Horários vencidos encontrados para reconciliação")

	s.runDueSlots(ctx, due)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"due_slots": len(due),
	}).Info("Reconciliação de campanhas concluída")

	s.lastSyncCompletedAt = s.now()
}

// dueSlot amarra um registro ao horário que venceu neste minuto
type dueSlot struct {
	record  *domain.ScheduleRecord
	slotKey string
}

// collectDueSlots filtra os horários que disparam no minuto informado,
// pulando registros inválidos com aviso no log
func (s *ReconcilerSyncService) collectDueSlots(records []*domain.ScheduleRecord, now time.Time) []dueSlot {
	due := make([]dueSlot, 0)

	for _, record := range records {
		if err := record.Validate(); err != nil {
			logrus.WithError(err).Warn("Agendamento inválido ignorado na varredura")
			continue
		}

		for _, d := range record.DueSlots(now) {
			if err := d.Slot.Validate(); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": record.AdAccountID,
					"slot_key":   d.Key,
				}).WithError(err).Warn("Horário inválido ignorado na varredura")
				continue
			}

			due = append(due, dueSlot{record: record, slotKey: d.Key})
		}
	}

	return due
}

// runDueSlots executa as reconciliações com um pool limitado de workers
func (s *ReconcilerSyncService) runDueSlots(ctx context.Context, due []dueSlot) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, d := range due {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(d dueSlot) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			// Um pânico em uma conta não pode derrubar o processo nem
			// abortar a varredura das demais
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"account_id": d.record.AdAccountID,
						"slot_key":   d.slotKey,
					}).Errorf("Pânico ao reconciliar o horário: %v", r)
				}
			}()

			logrus.WithFields(logrus.Fields{
				"account_id": d.record.AdAccountID,
				"slot_key":   d.slotKey,
			}).Info("Reconciliando horário vencido")

			s.reconciler.RunSlot(ctx, d.record, d.slotKey)
		}(d)
	}

	wg.Wait()
}

// TriggerManualSync inicia manualmente uma varredura de reconciliação
func (s *ReconcilerSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual de campanhas")
	go s.reconcileDueSchedules(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReconcilerSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"business_timezone":      s.appConfig.Reconciler.BusinessTimezone,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
