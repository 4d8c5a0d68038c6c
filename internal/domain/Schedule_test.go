package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSlot_Validate(t *testing.T) {
	valid := ScheduleSlot{
		Time:         "09:00",
		CampaignCode: "sale",
		Watch:        WatchCampaigns,
		CPPMetric:    10.0,
		OnOff:        ModeOn,
		Status:       SlotRunning,
	}

	tests := []struct {
		name    string
		mutate  func(s *ScheduleSlot)
		wantErr bool
	}{
		{
			name:   "Horário completo é válido",
			mutate: func(s *ScheduleSlot) {},
		},
		{
			name:   "Status vazio é aceito (assume Running)",
			mutate: func(s *ScheduleSlot) { s.Status = "" },
		},
		{
			name:    "Horário fora do formato HH:MM",
			mutate:  func(s *ScheduleSlot) { s.Time = "9h00" },
			wantErr: true,
		},
		{
			name:    "Hora acima de 23 é inválida",
			mutate:  func(s *ScheduleSlot) { s.Time = "25:00" },
			wantErr: true,
		},
		{
			name:    "Código de campanha vazio",
			mutate:  func(s *ScheduleSlot) { s.CampaignCode = "" },
			wantErr: true,
		},
		{
			name:    "Watch desconhecido",
			mutate:  func(s *ScheduleSlot) { s.Watch = "Ads" },
			wantErr: true,
		},
		{
			name:    "Modo on_off desconhecido",
			mutate:  func(s *ScheduleSlot) { s.OnOff = "AUTO" },
			wantErr: true,
		},
		{
			name:    "Status desconhecido",
			mutate:  func(s *ScheduleSlot) { s.Status = "Stopped" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := valid
			tt.mutate(&slot)

			err := slot.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleSlot_IsDue(t *testing.T) {
	nineAM := time.Date(2024, 6, 1, 9, 0, 30, 0, time.UTC)

	running := ScheduleSlot{Time: "09:00", Status: SlotRunning}
	paused := ScheduleSlot{Time: "09:00", Status: SlotPaused}
	later := ScheduleSlot{Time: "09:01", Status: SlotRunning}

	assert.True(t, running.IsDue(nineAM))
	assert.False(t, paused.IsDue(nineAM))
	assert.False(t, later.IsDue(nineAM))
}

func TestScheduleRecord_Validate(t *testing.T) {
	record := ScheduleRecord{
		AdAccountID: "act123",
		UserID:      42,
		AccessToken: "token",
	}
	assert.NoError(t, record.Validate())

	noToken := record
	noToken.AccessToken = ""
	assert.Error(t, noToken.Validate())

	noUser := record
	noUser.UserID = 0
	assert.Error(t, noUser.Validate())

	noAccount := record
	noAccount.AdAccountID = ""
	assert.Error(t, noAccount.Validate())
}

func TestScheduleRecord_DueSlots(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	record := ScheduleRecord{
		AdAccountID: "act123",
		ScheduleData: map[string]ScheduleSlot{
			"time1": {Time: "09:00", CampaignCode: "sale", Status: SlotRunning},
			"time2": {Time: "12:00", CampaignCode: "sale", Status: SlotRunning},
			"time3": {Time: "09:00", CampaignCode: "promo", Status: SlotRunning},
		},
	}

	due := record.DueSlots(now)

	// ordem estável das chaves, não do mapa
	assert.Len(t, due, 2)
	assert.Equal(t, "time1", due[0].Key)
	assert.Equal(t, "sale", due[0].Slot.CampaignCode)
	assert.Equal(t, "time3", due[1].Key)
	assert.Equal(t, "promo", due[1].Slot.CampaignCode)
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "time1", SlotKey(1))
	assert.Equal(t, "time20", SlotKey(20))
}
