package domain

import (
	"fmt"
	"time"
)

// MaxScheduleSlots é o limite de horários agendados por conta de anúncio
const MaxScheduleSlots = 20

// WatchType define a granularidade de controle de um horário agendado
type WatchType string

const (
	WatchCampaigns WatchType = "Campaigns"
	WatchAdSets    WatchType = "AdSets"
)

// OnOffMode define a intenção do horário: ativar entidades performando bem
// ou pausar entidades performando mal
type OnOffMode string

const (
	ModeOn  OnOffMode = "ON"
	ModeOff OnOffMode = "OFF"
)

// SlotStatus indica se o horário dispara ou está pausado
type SlotStatus string

const (
	SlotRunning SlotStatus = "Running"
	SlotPaused  SlotStatus = "Paused"
)

// CheckStatus é o resultado da última passada de reconciliação
type CheckStatus string

const (
	CheckSuccess CheckStatus = "Success"
	CheckFailed  CheckStatus = "Failed"
	CheckOngoing CheckStatus = "Ongoing"
)

// ScheduleSlot é um horário agendado dentro de schedule_data.
// As chaves do mapa são estáveis no formato "time1".."timeN", contíguas
// e renumeradas após remoção.
type ScheduleSlot struct {
	Time         string     `json:"time"`
	CampaignCode string     `json:"campaign_code"`
	Watch        WatchType  `json:"watch"`
	CPPMetric    float64    `json:"cpp_metric"`
	OnOff        OnOffMode  `json:"on_off"`
	Status       SlotStatus `json:"status"`
}

// Validate verifica os campos obrigatórios de um horário agendado.
// Registros com horários inválidos são pulados pela reconciliação.
func (s ScheduleSlot) Validate() error {
	if _, err := time.Parse("15:04", s.Time); err != nil {
		return fmt.Errorf("horário inválido %q: use HH:MM", s.Time)
	}

	if s.CampaignCode == "" {
		return fmt.Errorf("campaign_code é obrigatório para o horário %s", s.Time)
	}

	if s.Watch != WatchCampaigns && s.Watch != WatchAdSets {
		return fmt.Errorf("watch inválido %q para o horário %s: use 'Campaigns' ou 'AdSets'", s.Watch, s.Time)
	}

	if s.OnOff != ModeOn && s.OnOff != ModeOff {
		return fmt.Errorf("on_off inválido %q para o horário %s: use 'ON' ou 'OFF'", s.OnOff, s.Time)
	}

	if s.Status != "" && s.Status != SlotRunning && s.Status != SlotPaused {
		return fmt.Errorf("status inválido %q para o horário %s: use 'Running' ou 'Paused'", s.Status, s.Time)
	}

	return nil
}

// ComboKey identifica um horário pela tripla (time, campaign_code, watch),
// usada para detectar duplicatas
func (s ScheduleSlot) ComboKey() string {
	return fmt.Sprintf("%s|%s|%s", s.Time, s.CampaignCode, s.Watch)
}

// IsDue informa se o horário dispara no minuto corrente
func (s ScheduleSlot) IsDue(now time.Time) bool {
	return s.Status != SlotPaused && s.Time == now.Format("15:04")
}

// ScheduleRecord é o registro persistido de agendamentos de uma conta de
// anúncio. Existe no máximo um registro por ad_account_id.
type ScheduleRecord struct {
	AdAccountID         string                    `json:"ad_account_id"`
	UserID              int64                     `json:"user_id"`
	AccessToken         string                    `json:"access_token"`
	ScheduleData        map[string]ScheduleSlot   `json:"schedule_data"`
	CampaignCode        *string                   `json:"campaign_code,omitempty"`
	AddedAt             time.Time                 `json:"added_at"`
	MatchedCampaignData *MatchedCampaignSnapshot  `json:"matched_campaign_data,omitempty"`
	LastTimeChecked     *time.Time                `json:"last_time_checked,omitempty"`
	LastCheckStatus     CheckStatus               `json:"last_check_status"`
	LastCheckMessage    string                    `json:"last_check_message,omitempty"`
	TaskID              *string                   `json:"task_id,omitempty"`
}

// Validate verifica se o registro tem os campos mínimos para reconciliar
func (r *ScheduleRecord) Validate() error {
	if r.AdAccountID == "" {
		return fmt.Errorf("registro sem ad_account_id")
	}

	if r.UserID == 0 {
		return fmt.Errorf("registro %s sem user_id", r.AdAccountID)
	}

	if r.AccessToken == "" {
		return fmt.Errorf("registro %s sem access_token", r.AdAccountID)
	}

	return nil
}

// DueSlot amarra a chave estável de um horário ao seu conteúdo
type DueSlot struct {
	Key  string
	Slot ScheduleSlot
}

// DueSlots retorna os horários que disparam no minuto informado, na ordem
// estável das chaves time1..timeN
func (r *ScheduleRecord) DueSlots(now time.Time) []DueSlot {
	due := make([]DueSlot, 0)

	for i := 1; i <= len(r.ScheduleData); i++ {
		key := SlotKey(i)

		slot, ok := r.ScheduleData[key]
		if !ok {
			continue
		}

		if slot.IsDue(now) {
			due = append(due, DueSlot{Key: key, Slot: slot})
		}
	}

	return due
}

// SlotKey monta a chave estável de um horário a partir do índice 1-based
func SlotKey(index int) string {
	return fmt.Sprintf("time%d", index)
}

// CheckResult é o desfecho de uma rodada de reconciliação gravado no
// registro da conta. MatchedCampaignData nulo preserva o snapshot anterior.
type CheckResult struct {
	CheckedAt           time.Time
	Status              CheckStatus
	Message             string
	MatchedCampaignData *MatchedCampaignSnapshot
}
