package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/progress"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/pkg/apiErrors"
	"github.com/vfg2006/ads-autopilot-api/pkg/utils"
)

type SchedulingService interface {
	GetSchedule(ctx context.Context, adAccountID string, userID int64) (*domain.ScheduleRecord, error)
	AddSchedule(ctx context.Context, request *AddScheduleRequest) (*domain.ScheduleRecord, error)
	AppendSlots(ctx context.Context, adAccountID string, userID int64, slots []domain.ScheduleSlot) (*domain.ScheduleRecord, error)
	EditSlot(ctx context.Context, adAccountID string, userID int64, slotKey string, slot domain.ScheduleSlot) error
	RemoveSlot(ctx context.Context, adAccountID string, userID int64, slotKey string) error
	SetSlotsStatus(ctx context.Context, adAccountID string, userID int64, status domain.SlotStatus) error
	DeleteSchedule(ctx context.Context, adAccountID string, userID int64) error
}

// AddScheduleRequest carrega os dados necessários para registrar uma conta
// com seus primeiros horários
type AddScheduleRequest struct {
	AdAccountID  string
	UserID       int64
	AccessToken  string
	CampaignCode *string
	Slots        []domain.ScheduleSlot
}

type Service struct {
	scheduleRepository repository.ScheduleRepository
	sink               progress.Sink
	now                func() time.Time
}

func NewService(scheduleRepository repository.ScheduleRepository, sink progress.Sink) SchedulingService {
	return &Service{
		scheduleRepository: scheduleRepository,
		sink:               sink,
		now:                time.Now,
	}
}

// GetSchedule devolve o registro de agendamentos da conta do usuário
func (s *Service) GetSchedule(ctx context.Context, adAccountID string, userID int64) (*domain.ScheduleRecord, error) {
	return s.ownedRecord(adAccountID, userID)
}

// AddSchedule registra (ou substitui) os agendamentos de uma conta. Uma
// conta já gerenciada por outro usuário não pode ser assumida.
func (s *Service) AddSchedule(ctx context.Context, request *AddScheduleRequest) (*domain.ScheduleRecord, error) {
	if len(request.Slots) == 0 {
		return nil, NewSchedulingError(ErrInvalidSlot, apiErrors.ErrMissingRequiredData, "informe ao menos um horário")
	}

	existing, err := s.scheduleRepository.GetByAdAccountID(request.AdAccountID)
	if err != nil {
		return nil, NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao consultar agendamentos existentes")
	}

	if existing != nil && existing.UserID != request.UserID {
		return nil, NewSchedulingErrorWithAccount(ErrAccountOwned, apiErrors.ErrAccountOwnedByUser, request.AdAccountID, "conta de anúncio já gerenciada por outro usuário")
	}

	scheduleData, err := buildScheduleData(request.Slots)
	if err != nil {
		return nil, err
	}

	taskID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "falha ao gerar identificador da tarefa")
	}

	record := &domain.ScheduleRecord{
		AdAccountID:     request.AdAccountID,
		UserID:          request.UserID,
		AccessToken:     request.AccessToken,
		ScheduleData:    scheduleData,
		CampaignCode:    request.CampaignCode,
		AddedAt:         s.now(),
		LastCheckStatus: domain.CheckOngoing,
		TaskID:          &taskID,
	}

	if err := s.scheduleRepository.SaveOrUpdate(record); err != nil {
		logrus.WithField("account_id", request.AdAccountID).WithError(err).Error("erro ao salvar o agendamento")
		return nil, NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao salvar o agendamento")
	}

	return record, nil
}

// AppendSlots acrescenta horários ao registro existente da conta,
// respeitando o limite e rejeitando duplicatas
func (s *Service) AppendSlots(ctx context.Context, adAccountID string, userID int64, slots []domain.ScheduleSlot) (*domain.ScheduleRecord, error) {
	record, err := s.ownedRecord(adAccountID, userID)
	if err != nil {
		return nil, err
	}

	combos := existingCombos(record.ScheduleData)

	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, NewSchedulingError(ErrInvalidSlot, apiErrors.ErrInvalidFormat, err.Error())
		}

		if _, dup := combos[slot.ComboKey()]; dup {
			return nil, NewSchedulingError(ErrDuplicateSlot, apiErrors.ErrDuplicateSlot, fmt.Sprintf("horário %s já agendado para o código %s", slot.Time, slot.CampaignCode))
		}

		if len(record.ScheduleData) >= domain.MaxScheduleSlots {
			return nil, NewSchedulingError(ErrSlotLimit, apiErrors.ErrSlotLimitExceeded, fmt.Sprintf("limite de %d horários por conta atingido", domain.MaxScheduleSlots))
		}

		if slot.Status == "" {
			slot.Status = domain.SlotRunning
		}

		record.ScheduleData[domain.SlotKey(len(record.ScheduleData)+1)] = slot
		combos[slot.ComboKey()] = struct{}{}
	}

	if err := s.scheduleRepository.UpdateScheduleData(adAccountID, record.ScheduleData); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao atualizar os horários da conta")
		return nil, NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao atualizar os horários")
	}

	return record, nil
}

// EditSlot substitui um horário existente, mantendo a chave estável
func (s *Service) EditSlot(ctx context.Context, adAccountID string, userID int64, slotKey string, slot domain.ScheduleSlot) error {
	record, err := s.ownedRecord(adAccountID, userID)
	if err != nil {
		return err
	}

	if _, ok := record.ScheduleData[slotKey]; !ok {
		return NewSchedulingErrorWithAccount(ErrSlotNotFound, apiErrors.ErrScheduleNotFound, adAccountID, fmt.Sprintf("horário %s não encontrado", slotKey))
	}

	if err := slot.Validate(); err != nil {
		return NewSchedulingError(ErrInvalidSlot, apiErrors.ErrInvalidFormat, err.Error())
	}

	for key, other := range record.ScheduleData {
		if key != slotKey && other.ComboKey() == slot.ComboKey() {
			return NewSchedulingError(ErrDuplicateSlot, apiErrors.ErrDuplicateSlot, fmt.Sprintf("horário %s já agendado para o código %s", slot.Time, slot.CampaignCode))
		}
	}

	if slot.Status == "" {
		slot.Status = record.ScheduleData[slotKey].Status
	}

	record.ScheduleData[slotKey] = slot

	if err := s.scheduleRepository.UpdateScheduleData(adAccountID, record.ScheduleData); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao atualizar os horários da conta")
		return NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao atualizar os horários")
	}

	return nil
}

// RemoveSlot apaga um horário e renumera as chaves restantes para manter a
// sequência time1..timeN contígua. Remover o último horário apaga o
// registro da conta inteiro.
func (s *Service) RemoveSlot(ctx context.Context, adAccountID string, userID int64, slotKey string) error {
	record, err := s.ownedRecord(adAccountID, userID)
	if err != nil {
		return err
	}

	if _, ok := record.ScheduleData[slotKey]; !ok {
		return NewSchedulingErrorWithAccount(ErrSlotNotFound, apiErrors.ErrScheduleNotFound, adAccountID, fmt.Sprintf("horário %s não encontrado", slotKey))
	}

	delete(record.ScheduleData, slotKey)

	if len(record.ScheduleData) == 0 {
		return s.DeleteSchedule(ctx, adAccountID, userID)
	}

	renumbered := make(map[string]domain.ScheduleSlot, len(record.ScheduleData))
	index := 1
	for i := 1; i <= len(record.ScheduleData)+1; i++ {
		slot, ok := record.ScheduleData[domain.SlotKey(i)]
		if !ok {
			continue
		}

		renumbered[domain.SlotKey(index)] = slot
		index++
	}

	if err := s.scheduleRepository.UpdateScheduleData(adAccountID, renumbered); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao atualizar os horários da conta")
		return NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao atualizar os horários")
	}

	return nil
}

// SetSlotsStatus pausa ou retoma todos os horários da conta de uma vez
func (s *Service) SetSlotsStatus(ctx context.Context, adAccountID string, userID int64, status domain.SlotStatus) error {
	record, err := s.ownedRecord(adAccountID, userID)
	if err != nil {
		return err
	}

	for key, slot := range record.ScheduleData {
		slot.Status = status
		record.ScheduleData[key] = slot
	}

	if err := s.scheduleRepository.UpdateScheduleData(adAccountID, record.ScheduleData); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao atualizar os horários da conta")
		return NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao atualizar os horários")
	}

	return nil
}

// DeleteSchedule remove o registro da conta e a chave de progresso
// associada a ele
func (s *Service) DeleteSchedule(ctx context.Context, adAccountID string, userID int64) error {
	record, err := s.ownedRecord(adAccountID, userID)
	if err != nil {
		return err
	}

	if err := s.scheduleRepository.Delete(adAccountID); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Error("erro ao remover o agendamento")
		return NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao remover o agendamento")
	}

	if err := s.sink.Clear(ctx, fmt.Sprintf("%d", record.UserID), adAccountID); err != nil {
		logrus.WithField("account_id", adAccountID).WithError(err).Warn("erro ao limpar a chave de progresso da conta")
	}

	return nil
}

// ownedRecord carrega o registro da conta e confirma que ele pertence ao
// usuário que está operando
func (s *Service) ownedRecord(adAccountID string, userID int64) (*domain.ScheduleRecord, error) {
	record, err := s.scheduleRepository.GetByAdAccountID(adAccountID)
	if err != nil {
		return nil, NewSchedulingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "falha ao consultar o agendamento")
	}

	if record == nil {
		return nil, NewSchedulingErrorWithAccount(ErrScheduleNotFound, apiErrors.ErrScheduleNotFound, adAccountID, "nenhum agendamento para a conta")
	}

	if record.UserID != userID {
		return nil, NewSchedulingErrorWithAccount(ErrAccountOwned, apiErrors.ErrAccountOwnedByUser, adAccountID, "conta de anúncio gerenciada por outro usuário")
	}

	return record, nil
}

// buildScheduleData valida os horários e monta o mapa time1..timeN na ordem
// recebida, rejeitando duplicatas da tripla (time, campaign_code, watch)
func buildScheduleData(slots []domain.ScheduleSlot) (map[string]domain.ScheduleSlot, error) {
	if len(slots) > domain.MaxScheduleSlots {
		return nil, NewSchedulingError(ErrSlotLimit, apiErrors.ErrSlotLimitExceeded, fmt.Sprintf("limite de %d horários por conta atingido", domain.MaxScheduleSlots))
	}

	scheduleData := make(map[string]domain.ScheduleSlot, len(slots))
	combos := make(map[string]struct{}, len(slots))

	for i, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, NewSchedulingError(ErrInvalidSlot, apiErrors.ErrInvalidFormat, err.Error())
		}

		if _, dup := combos[slot.ComboKey()]; dup {
			return nil, NewSchedulingError(ErrDuplicateSlot, apiErrors.ErrDuplicateSlot, fmt.Sprintf("horário %s duplicado para o código %s", slot.Time, slot.CampaignCode))
		}

		if slot.Status == "" {
			slot.Status = domain.SlotRunning
		}

		scheduleData[domain.SlotKey(i+1)] = slot
		combos[slot.ComboKey()] = struct{}{}
	}

	return scheduleData, nil
}

func existingCombos(scheduleData map[string]domain.ScheduleSlot) map[string]struct{} {
	combos := make(map[string]struct{}, len(scheduleData))
	for _, slot := range scheduleData {
		combos[slot.ComboKey()] = struct{}{}
	}
	return combos
}
