package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	progressmocks "github.com/vfg2006/ads-autopilot-api/infrastructure/progress/mocks"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validSlot(hour string, code string) domain.ScheduleSlot {
	return domain.ScheduleSlot{
		Time:         hour,
		CampaignCode: code,
		Watch:        domain.WatchCampaigns,
		CPPMetric:    10.0,
		OnOff:        domain.ModeOn,
	}
}

func ownedRecord() *domain.ScheduleRecord {
	return &domain.ScheduleRecord{
		AdAccountID: "act123",
		UserID:      42,
		AccessToken: "token",
		ScheduleData: map[string]domain.ScheduleSlot{
			"time1": validSlot("09:00", "sale"),
			"time2": validSlot("12:00", "sale"),
			"time3": validSlot("18:00", "promo"),
		},
		AddedAt: time.Now(),
	}
}

func TestService_AddSchedule(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		request  *AddScheduleRequest
		setup    func(repo *mocks.MockScheduleRepository)
		validate func(t *testing.T, record *domain.ScheduleRecord, err error)
	}{
		{
			name: "Horários válidos recebem chaves time1..timeN na ordem",
			request: &AddScheduleRequest{
				AdAccountID: "act123",
				UserID:      42,
				AccessToken: "token",
				Slots: []domain.ScheduleSlot{
					validSlot("09:00", "sale"),
					validSlot("12:00", "sale"),
				},
			},
			setup: func(repo *mocks.MockScheduleRepository) {
				repo.EXPECT().GetByAdAccountID("act123").Return(nil, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, record *domain.ScheduleRecord, err error) {
				assert.NoError(t, err)
				assert.Len(t, record.ScheduleData, 2)
				assert.Equal(t, "09:00", record.ScheduleData["time1"].Time)
				assert.Equal(t, "12:00", record.ScheduleData["time2"].Time)
				assert.Equal(t, domain.SlotRunning, record.ScheduleData["time1"].Status)
			},
		},
		{
			name: "Tripla time+código+watch duplicada é rejeitada",
			request: &AddScheduleRequest{
				AdAccountID: "act123",
				UserID:      42,
				AccessToken: "token",
				Slots: []domain.ScheduleSlot{
					validSlot("09:00", "sale"),
					validSlot("09:00", "sale"),
				},
			},
			setup: func(repo *mocks.MockScheduleRepository) {
				repo.EXPECT().GetByAdAccountID("act123").Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.ScheduleRecord, err error) {
				assert.ErrorIs(t, err, ErrDuplicateSlot)
				assert.Nil(t, record)
			},
		},
		{
			name: "Horário fora do formato HH:MM é rejeitado",
			request: &AddScheduleRequest{
				AdAccountID: "act123",
				UserID:      42,
				AccessToken: "token",
				Slots: []domain.ScheduleSlot{
					validSlot("25:99", "sale"),
				},
			},
			setup: func(repo *mocks.MockScheduleRepository) {
				repo.EXPECT().GetByAdAccountID("act123").Return(nil, nil)
			},
			validate: func(t *testing.T, record *domain.ScheduleRecord, err error) {
				assert.ErrorIs(t, err, ErrInvalidSlot)
			},
		},
		{
			name: "Conta gerenciada por outro usuário não pode ser assumida",
			request: &AddScheduleRequest{
				AdAccountID: "act123",
				UserID:      99,
				AccessToken: "token",
				Slots: []domain.ScheduleSlot{
					validSlot("09:00", "sale"),
				},
			},
			setup: func(repo *mocks.MockScheduleRepository) {
				repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
			},
			validate: func(t *testing.T, record *domain.ScheduleRecord, err error) {
				assert.ErrorIs(t, err, ErrAccountOwned)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockScheduleRepository(ctrl)
			sink := progressmocks.NewMockSink(ctrl)
			tt.setup(repo)

			service := NewService(repo, sink)

			record, err := service.AddSchedule(ctx, tt.request)
			tt.validate(t, record, err)
		})
	}
}

func TestService_AddSchedule_SlotLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)
	repo.EXPECT().GetByAdAccountID("act123").Return(nil, nil)

	slots := make([]domain.ScheduleSlot, 0, domain.MaxScheduleSlots+1)
	for i := 0; i <= domain.MaxScheduleSlots; i++ {
		slots = append(slots, validSlot(fmt.Sprintf("%02d:00", i), "sale"))
	}

	service := NewService(repo, sink)

	_, err := service.AddSchedule(context.Background(), &AddScheduleRequest{
		AdAccountID: "act123",
		UserID:      42,
		AccessToken: "token",
		Slots:       slots,
	})
	assert.ErrorIs(t, err, ErrSlotLimit)
}

func TestService_AppendSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().
		UpdateScheduleData("act123", gomock.Any()).
		Do(func(_ string, data map[string]domain.ScheduleSlot) {
			assert.Len(t, data, 4)
			assert.Equal(t, "21:00", data["time4"].Time)
		}).
		Return(nil)

	service := NewService(repo, sink)

	record, err := service.AppendSlots(context.Background(), "act123", 42, []domain.ScheduleSlot{
		validSlot("21:00", "sale"),
	})
	assert.NoError(t, err)
	assert.Len(t, record.ScheduleData, 4)
}

func TestService_AppendSlots_DuplicateAgainstExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)

	service := NewService(repo, sink)

	_, err := service.AppendSlots(context.Background(), "act123", 42, []domain.ScheduleSlot{
		validSlot("09:00", "sale"),
	})
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestService_RemoveSlot_RenumbersRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().
		UpdateScheduleData("act123", gomock.Any()).
		Do(func(_ string, data map[string]domain.ScheduleSlot) {
			// time2 saiu; time3 vira time2 mantendo a ordem relativa
			assert.Len(t, data, 2)
			assert.Equal(t, "09:00", data["time1"].Time)
			assert.Equal(t, "18:00", data["time2"].Time)
			_, hasTime3 := data["time3"]
			assert.False(t, hasTime3)
		}).
		Return(nil)

	service := NewService(repo, sink)

	err := service.RemoveSlot(context.Background(), "act123", 42, "time2")
	assert.NoError(t, err)
}

func TestService_RemoveSlot_LastSlotDeletesSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	record := ownedRecord()
	record.ScheduleData = map[string]domain.ScheduleSlot{
		"time1": validSlot("09:00", "sale"),
	}

	// RemoveSlot recarrega o registro ao delegar para DeleteSchedule
	repo.EXPECT().GetByAdAccountID("act123").Return(record, nil).Times(2)
	repo.EXPECT().Delete("act123").Return(nil)
	sink.EXPECT().Clear(gomock.Any(), "42", "act123").Return(nil)

	service := NewService(repo, sink)

	err := service.RemoveSlot(context.Background(), "act123", 42, "time1")
	assert.NoError(t, err)
}

func TestService_EditSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().
		UpdateScheduleData("act123", gomock.Any()).
		Do(func(_ string, data map[string]domain.ScheduleSlot) {
			assert.Equal(t, "10:30", data["time1"].Time)
		}).
		Return(nil)

	service := NewService(repo, sink)

	err := service.EditSlot(context.Background(), "act123", 42, "time1", validSlot("10:30", "sale"))
	assert.NoError(t, err)
}

func TestService_EditSlot_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)

	service := NewService(repo, sink)

	err := service.EditSlot(context.Background(), "act123", 42, "time9", validSlot("10:30", "sale"))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_SetSlotsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().
		UpdateScheduleData("act123", gomock.Any()).
		Do(func(_ string, data map[string]domain.ScheduleSlot) {
			for key, slot := range data {
				assert.Equal(t, domain.SlotPaused, slot.Status, key)
			}
		}).
		Return(nil)

	service := NewService(repo, sink)

	err := service.SetSlotsStatus(context.Background(), "act123", 42, domain.SlotPaused)
	assert.NoError(t, err)
}

func TestService_DeleteSchedule_ClearsProgressKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().Delete("act123").Return(nil)
	sink.EXPECT().Clear(gomock.Any(), "42", "act123").Return(nil)

	service := NewService(repo, sink)

	err := service.DeleteSchedule(context.Background(), "act123", 42)
	assert.NoError(t, err)
}

func TestService_OwnershipErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockScheduleRepository(ctrl)
	sink := progressmocks.NewMockSink(ctrl)

	repo.EXPECT().GetByAdAccountID("act123").Return(ownedRecord(), nil)
	repo.EXPECT().GetByAdAccountID("act404").Return(nil, nil)
	repo.EXPECT().GetByAdAccountID("act500").Return(nil, errors.New("connection refused"))

	service := NewService(repo, sink)

	_, err := service.GetSchedule(context.Background(), "act123", 99)
	assert.ErrorIs(t, err, ErrAccountOwned)

	_, err = service.GetSchedule(context.Background(), "act404", 42)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	_, err = service.GetSchedule(context.Background(), "act500", 42)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
