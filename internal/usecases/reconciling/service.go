package reconciling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/locker"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/progress"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// StatusEnsurer leva uma entidade ao status alvo e confirma a mudança
type StatusEnsurer interface {
	EnsureStatus(ctx context.Context, accessToken, entityID string, target domain.EntityStatus) (bool, error)
}

type ReconcilerService interface {
	RunSlot(ctx context.Context, record *domain.ScheduleRecord, slotKey string)
}

// pendingJob é o payload enfileirado quando o lock da conta está ocupado
type pendingJob struct {
	AdAccountID string `json:"ad_account_id"`
	SlotKey     string `json:"slot_key"`
}

type Service struct {
	cfg        *config.Config
	repository repository.ScheduleRepository
	integrator meta.Integrator
	updater    StatusEnsurer
	locker     locker.Locker
	sink       progress.Sink
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	scheduleRepository repository.ScheduleRepository,
	integrator meta.Integrator,
	updater StatusEnsurer,
	lk locker.Locker,
	sink progress.Sink,
) *Service {
	return &Service{
		cfg:        cfg,
		repository: scheduleRepository,
		integrator: integrator,
		updater:    updater,
		locker:     lk,
		sink:       sink,
		now:        time.Now,
	}
}

// RunSlot reconcilia um horário disparado. A reconciliação de cada conta é
// serializada por um lock distribuído; quando o lock está ocupado o horário
// vai para a fila de pendências da conta, que o detentor do lock drena ao
// terminar o próprio trabalho.
func (s *Service) RunSlot(ctx context.Context, record *domain.ScheduleRecord, slotKey string) {
	lease := time.Duration(s.cfg.Reconciler.LockLeaseSeconds) * time.Second

	handle, acquired, err := s.locker.TryLock(ctx, record.AdAccountID, lease)
	if err != nil {
		logrus.WithField("account_id", record.AdAccountID).WithError(err).Error("erro ao adquirir o lock da conta")
		return
	}

	if !acquired {
		s.enqueue(ctx, record.AdAccountID, slotKey)
		return
	}

	for {
		s.runLocked(ctx, handle, record, slotKey)

		record, slotKey = s.nextPending(ctx, record.AdAccountID)
		if record == nil {
			return
		}

		handle, acquired, err = s.locker.TryLock(ctx, record.AdAccountID, lease)
		if err != nil {
			logrus.WithField("account_id", record.AdAccountID).WithError(err).Error("erro ao readquirir o lock da conta, devolvendo a pendência")
			s.enqueue(ctx, record.AdAccountID, slotKey)
			return
		}

		if !acquired {
			// outro processo assumiu a conta, devolve a pendência
			s.enqueue(ctx, record.AdAccountID, slotKey)
			return
		}
	}
}

// runLocked reconcilia um horário sob a posse do lock. A liberação fica em
// defer, então um pânico no meio da passada não prende a conta até o fim da
// concessão.
func (s *Service) runLocked(ctx context.Context, handle locker.LockHandle, record *domain.ScheduleRecord, slotKey string) {
	defer func() {
		if err := handle.Release(ctx); err != nil {
			logrus.WithField("account_id", record.AdAccountID).WithError(err).Warn("erro ao liberar o lock da conta")
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": record.AdAccountID,
				"slot_key":   slotKey,
			}).Errorf("pânico na reconciliação do horário: %v", r)

			s.persistResult(record, &domain.CheckResult{
				CheckedAt: s.now(),
				Status:    domain.CheckFailed,
				Message:   fmt.Sprintf("erro inesperado: %v", r),
			})
		}
	}()

	s.reconcile(ctx, record, slotKey)
}

func (s *Service) enqueue(ctx context.Context, adAccountID, slotKey string) {
	payload, err := json.Marshal(pendingJob{AdAccountID: adAccountID, SlotKey: slotKey})
	if err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao serializar a pendência")
		return
	}

	if err := s.locker.EnqueuePending(ctx, adAccountID, payload); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao enfileirar a pendência da conta")
	}
}

// nextPending consome a próxima pendência da conta, recarregando o registro
// do banco para não reconciliar sobre dados velhos
func (s *Service) nextPending(ctx context.Context, adAccountID string) (*domain.ScheduleRecord, string) {
	payload, err := s.locker.DequeuePending(ctx, adAccountID)
	if err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao consumir a fila de pendências")
		return nil, ""
	}

	if payload == nil {
		return nil, ""
	}

	var job pendingJob
	if err := json.Unmarshal(payload, &job); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Warn("pendência com payload inválido descartada")
		return s.nextPending(ctx, adAccountID)
	}

	record, err := s.repository.GetByAdAccountID(job.AdAccountID)
	if err != nil {
		logrus.WithField("account_id", job.AdAccountID).WithError(err).Error("erro ao recarregar o agendamento da pendência")
		return nil, ""
	}

	if record == nil {
		logrus.WithField("account_id", job.AdAccountID).Info("agendamento da pendência foi removido, pulando")
		return s.nextPending(ctx, adAccountID)
	}

	if _, ok := record.ScheduleData[job.SlotKey]; !ok {
		logrus.WithFields(logrus.Fields{
			"account_id": job.AdAccountID,
			"slot_key":   job.SlotKey,
		}).Info("horário da pendência não existe mais, pulando")
		return s.nextPending(ctx, adAccountID)
	}

	return record, job.SlotKey
}

func (s *Service) reconcile(ctx context.Context, record *domain.ScheduleRecord, slotKey string) {
	slot, ok := record.ScheduleData[slotKey]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"account_id": record.AdAccountID,
			"slot_key":   slotKey,
		}).Warn("horário não encontrado no registro, pulando reconciliação")
		return
	}

	userID := fmt.Sprintf("%d", record.UserID)

	s.markOngoing(record)
	s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Verificando campanhas com o código %s...", slot.CampaignCode))

	snapshot, message, err := s.reconcileSlot(ctx, record, slot)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": record.AdAccountID,
			"slot_key":   slotKey,
		}).WithError(err).Error("falha na reconciliação do horário")

		s.persistResult(record, &domain.CheckResult{
			CheckedAt: s.now(),
			Status:    domain.CheckFailed,
			Message:   err.Error(),
		})
		s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Falha na verificação: %s", err.Error()))
		return
	}

	s.persistResult(record, &domain.CheckResult{
		CheckedAt:           s.now(),
		Status:              domain.CheckSuccess,
		Message:             message,
		MatchedCampaignData: snapshot,
	})
	s.publish(ctx, userID, record.AdAccountID, message)
}

// reconcileSlot faz o trabalho de um horário: casa as campanhas pelo
// código, calcula o custo por conversão das janelas de hoje e ontem e
// aplica a política de liga/desliga nas entidades observadas
func (s *Service) reconcileSlot(ctx context.Context, record *domain.ScheduleRecord, slot domain.ScheduleSlot) (*domain.MatchedCampaignSnapshot, string, error) {
	campaigns, err := s.integrator.ListCampaigns(ctx, record.AccessToken, record.AdAccountID)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao listar campanhas da conta: %w", err)
	}

	matched := make([]metadomain.Campaign, 0)
	for _, campaign := range campaigns {
		if MatchesCode(campaign.Name, slot.CampaignCode) {
			matched = append(matched, campaign)
		}
	}

	if len(matched) == 0 {
		return nil, "", fmt.Errorf("nenhuma campanha encontrada com o código %s", slot.CampaignCode)
	}

	today := s.now().In(s.cfg.BusinessLocation())
	yesterday := today.AddDate(0, 0, -1)

	campaignCPP, err := s.fetchMergedCPP(ctx, record, metadomain.LevelCampaign, today, yesterday)
	if err != nil {
		return nil, "", err
	}

	adSetCPP, err := s.fetchMergedCPP(ctx, record, metadomain.LevelAdSet, today, yesterday)
	if err != nil {
		return nil, "", err
	}

	userID := fmt.Sprintf("%d", record.UserID)
	snapshot := make(domain.MatchedCampaignSnapshot, len(matched))
	updates := 0
	failures := 0

	for _, campaign := range matched {
		campaignStatus := domain.EntityStatus(campaign.Status)

		if slot.Watch == domain.WatchCampaigns {
			s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Campanha %s, CPP: %s", campaign.Name, cppFor(campaignCPP, campaign.ID).Display()))
			campaignStatus = s.applyPolicy(ctx, record, slot, campaign.ID, campaign.Name, campaignStatus, cppFor(campaignCPP, campaign.ID), &updates, &failures)
		}

		adSets := make(map[string]domain.AdSetSnapshot, len(campaign.AdSets.Data))
		for _, adSet := range campaign.AdSets.Data {
			adSetStatus := domain.EntityStatus(adSet.Status)

			if slot.Watch == domain.WatchAdSets {
				s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Conjunto %s, CPP: %s", adSet.Name, cppFor(adSetCPP, adSet.ID).Display()))
				adSetStatus = s.applyPolicy(ctx, record, slot, adSet.ID, adSet.Name, adSetStatus, cppFor(adSetCPP, adSet.ID), &updates, &failures)
			}

			adSets[adSet.ID] = domain.AdSetSnapshot{
				Name:   adSet.Name,
				Status: adSetStatus,
				CPP:    cppFor(adSetCPP, adSet.ID),
			}
		}

		snapshot[campaign.ID] = domain.CampaignSnapshot{
			CampaignName: campaign.Name,
			Status:       campaignStatus,
			CPP:          cppFor(campaignCPP, campaign.ID),
			AdSets:       adSets,
		}
	}

	message := fmt.Sprintf("Verificação concluída: %d campanha(s) com o código %s, %d atualização(ões) aplicada(s)", len(matched), slot.CampaignCode, updates)
	if failures > 0 {
		message = fmt.Sprintf("%s, %d atualização(ões) não confirmada(s)", message, failures)
	}

	return &snapshot, message, nil
}

// applyPolicy decide e aplica o status alvo de uma entidade, devolvendo o
// status confirmado após a tentativa
func (s *Service) applyPolicy(ctx context.Context, record *domain.ScheduleRecord, slot domain.ScheduleSlot, entityID, entityName string, current domain.EntityStatus, cpp domain.CPP, updates, failures *int) domain.EntityStatus {
	target, act := DecideTarget(slot.OnOff, cpp, slot.CPPMetric, current)
	if !act {
		return current
	}

	userID := fmt.Sprintf("%d", record.UserID)

	confirmed, err := s.updater.EnsureStatus(ctx, record.AccessToken, entityID, target)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": record.AdAccountID,
			"entity_id":  entityID,
			"target":     target,
		}).WithError(err).Error("erro ao aplicar o status alvo na entidade")
		*failures++
		s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Não foi possível atualizar %s para %s", entityName, target))
		return current
	}

	if !confirmed {
		*failures++
		s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Atualização de %s para %s não confirmada", entityName, target))
		return current
	}

	*updates++
	s.publish(ctx, userID, record.AdAccountID, fmt.Sprintf("Status de %s atualizado para %s", entityName, target))
	return target
}

// fetchMergedCPP busca os insights de hoje e de ontem no nível pedido e
// devolve o custo por conversão consolidado por entidade. Entidade ausente
// do mapa fica sem sinal.
func (s *Service) fetchMergedCPP(ctx context.Context, record *domain.ScheduleRecord, level metadomain.InsightLevel, today, yesterday time.Time) (map[string]domain.CPP, error) {
	todayMetrics, err := s.integrator.FetchInsights(ctx, record.AccessToken, record.AdAccountID, level, today, today)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights de hoje: %w", err)
	}

	yesterdayMetrics, err := s.integrator.FetchInsights(ctx, record.AccessToken, record.AdAccountID, level, yesterday, yesterday)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights de ontem: %w", err)
	}

	merged := make(map[string]domain.CPP, len(todayMetrics)+len(yesterdayMetrics))

	for entityID, m := range todayMetrics {
		merged[entityID] = ComputeCPP(m.Spend, m.Conversions)
	}

	for entityID, m := range yesterdayMetrics {
		todayCPP, ok := merged[entityID]
		if !ok {
			todayCPP = domain.NoSignal()
		}

		merged[entityID] = MergeWindows(todayCPP, ComputeCPP(m.Spend, m.Conversions))
	}

	return merged, nil
}

// cppFor devolve o custo consolidado de uma entidade, ou o sentinela de
// sem sinal quando a entidade não apareceu nos insights
func cppFor(merged map[string]domain.CPP, entityID string) domain.CPP {
	cpp, ok := merged[entityID]
	if !ok {
		return domain.NoSignal()
	}

	return cpp
}

func (s *Service) markOngoing(record *domain.ScheduleRecord) {
	s.persistResult(record, &domain.CheckResult{
		CheckedAt: s.now(),
		Status:    domain.CheckOngoing,
		Message:   "Verificação em andamento",
	})
}

func (s *Service) persistResult(record *domain.ScheduleRecord, result *domain.CheckResult) {
	if err := s.repository.UpdateCheckResult(record.AdAccountID, result); err != nil {
		logrus.WithField("account_id", record.AdAccountID).WithError(err).Error("erro ao gravar o resultado da verificação")
	}
}

// publish carimba a mensagem com a hora no fuso do negócio antes de
// entregá-la ao canal de progresso
func (s *Service) publish(ctx context.Context, userID, accountID, message string) {
	stamped := fmt.Sprintf("[%s] %s", s.now().In(s.cfg.BusinessLocation()).Format("2006-01-02 15:04:05"), message)

	if err := s.sink.Publish(ctx, userID, accountID, stamped); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": accountID,
		}).WithError(err).Warn("erro ao publicar progresso da verificação")
	}
}
