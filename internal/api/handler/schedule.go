package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/scheduling"
	"github.com/vfg2006/ads-autopilot-api/pkg/apiErrors"
)

// scheduleRequest é o corpo das operações de agendamento. O user_id vem no
// corpo porque a API de operação não carrega sessão de usuário.
type scheduleRequest struct {
	UserID       int64                 `json:"user_id"`
	AccessToken  string                `json:"access_token,omitempty"`
	CampaignCode *string               `json:"campaign_code,omitempty"`
	Slots        []domain.ScheduleSlot `json:"slots,omitempty"`
	Slot         *domain.ScheduleSlot  `json:"slot,omitempty"`
	Status       domain.SlotStatus     `json:"status,omitempty"`
}

func GetSchedule(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		record, err := service.GetSchedule(r.Context(), id, userID)
		if err != nil {
			writeSchedulingError(w, err, "Erro ao consultar agendamento")
			return
		}

		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func AddSchedule(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddSchedule")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var request scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if request.UserID == 0 || request.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e access_token são obrigatórios", nil)
			return
		}

		record, err := service.AddSchedule(r.Context(), &scheduling.AddScheduleRequest{
			AdAccountID:  id,
			UserID:       request.UserID,
			AccessToken:  request.AccessToken,
			CampaignCode: request.CampaignCode,
			Slots:        request.Slots,
		})
		if err != nil {
			writeSchedulingError(w, err, "Erro ao criar agendamento")
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func AppendScheduleSlots(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AppendScheduleSlots")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		record, err := service.AppendSlots(r.Context(), id, request.UserID, request.Slots)
		if err != nil {
			writeSchedulingError(w, err, "Erro ao adicionar horários")
			return
		}

		if err := json.NewEncoder(w).Encode(record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func EditScheduleSlot(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EditScheduleSlot")

		w.Header().Set("Content-Type", "application/json")

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		slotKey := params.ByName("slot")

		var request scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if request.Slot == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "slot é obrigatório", nil)
			return
		}

		if err := service.EditSlot(r.Context(), id, request.UserID, slotKey, *request.Slot); err != nil {
			writeSchedulingError(w, err, "Erro ao editar horário")
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"message": "Horário atualizado com sucesso"})
	})
}

func RemoveScheduleSlot(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveScheduleSlot")

		w.Header().Set("Content-Type", "application/json")

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		slotKey := params.ByName("slot")

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		if err := service.RemoveSlot(r.Context(), id, userID, slotKey); err != nil {
			writeSchedulingError(w, err, "Erro ao remover horário")
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"message": "Horário removido com sucesso"})
	})
}

func SetScheduleStatus(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetScheduleStatus")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if request.Status != domain.SlotRunning && request.Status != domain.SlotPaused {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "status inválido: use 'Running' ou 'Paused'", nil)
			return
		}

		if err := service.SetSlotsStatus(r.Context(), id, request.UserID, request.Status); err != nil {
			writeSchedulingError(w, err, "Erro ao alterar status dos horários")
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"message": "Status dos horários atualizado com sucesso"})
	})
}

func DeleteSchedule(service scheduling.SchedulingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSchedule")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		if err := service.DeleteSchedule(r.Context(), id, userID); err != nil {
			writeSchedulingError(w, err, "Erro ao remover agendamento")
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"message": "Agendamento removido com sucesso"})
	})
}

// writeSchedulingError converte os erros do caso de uso de agendamento na
// resposta padronizada da API
func writeSchedulingError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	var schedErr *scheduling.SchedulingError
	if errors.As(err, &schedErr) {
		details := map[string]interface{}{}
		if schedErr.AdAccountID != "" {
			details["account_id"] = schedErr.AdAccountID
		}
		apiErrors.WriteError(w, schedErr.Code, schedErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
