package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

var scheduleColumns = []string{
	"ad_account_id", "user_id", "access_token", "schedule_data", "campaign_code",
	"added_at", "matched_campaign_data", "last_time_checked", "last_check_status",
	"last_check_message", "task_id",
}

func newTestRepository(t *testing.T) (ScheduleRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewScheduleRepository(&postgres.Connection{DB: db}), mock
}

func TestScheduleRepository_ListAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	addedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	checkedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(scheduleColumns).
		AddRow(
			"act1", int64(42), "token",
			[]byte(`{"time1":{"time":"09:00","campaign_code":"sale","watch":"Campaigns","cpp_metric":10,"on_off":"OFF","status":"Running"}}`),
			nil, addedAt, nil, checkedAt, "Success", "ok", nil,
		).
		AddRow(
			"act2", int64(7), "token2",
			[]byte(`{invalid json`),
			nil, addedAt, nil, nil, "Ongoing", "", nil,
		).
		AddRow(
			"act3", int64(9), "token3",
			[]byte(`{"time1":{"time":"12:00","campaign_code":"promo","watch":"AdSets","cpp_metric":5,"on_off":"ON","status":"Paused"}}`),
			nil, addedAt, []byte(`{"campaigns":[]}`), nil, "Failed", "sem campanhas", nil,
		)

	mock.ExpectQuery("SELECT (.+) FROM campaigns_scheduled cs ORDER BY cs.added_at ASC").
		WillReturnRows(rows)

	records, err := repo.ListAll()
	assert.NoError(t, err)

	// act2 tem schedule_data corrompido e deve ser pulado sem erro
	require.Len(t, records, 2)
	assert.Equal(t, "act1", records[0].AdAccountID)
	assert.Equal(t, int64(42), records[0].UserID)
	assert.Equal(t, "09:00", records[0].ScheduleData["time1"].Time)
	assert.Equal(t, domain.CheckSuccess, records[0].LastCheckStatus)
	require.NotNil(t, records[0].LastTimeChecked)
	assert.Equal(t, checkedAt, *records[0].LastTimeChecked)

	assert.Equal(t, "act3", records[1].AdAccountID)
	assert.Equal(t, domain.SlotPaused, records[1].ScheduleData["time1"].Status)
	assert.Nil(t, records[1].LastTimeChecked)
	assert.NotNil(t, records[1].MatchedCampaignData)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_GetByAdAccountID(t *testing.T) {
	repo, mock := newTestRepository(t)

	addedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(scheduleColumns).
		AddRow(
			"act1", int64(42), "token",
			[]byte(`{"time1":{"time":"09:00","campaign_code":"sale","watch":"Campaigns","cpp_metric":10,"on_off":"OFF","status":"Running"}}`),
			"sale", addedAt, nil, nil, "Ongoing", "", "task-abc",
		)

	mock.ExpectQuery("SELECT (.+) FROM campaigns_scheduled cs WHERE cs.ad_account_id = \\$1").
		WithArgs("act1").
		WillReturnRows(rows)

	record, err := repo.GetByAdAccountID("act1")
	assert.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "act1", record.AdAccountID)
	require.NotNil(t, record.CampaignCode)
	assert.Equal(t, "sale", *record.CampaignCode)
	require.NotNil(t, record.TaskID)
	assert.Equal(t, "task-abc", *record.TaskID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_GetByAdAccountID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM campaigns_scheduled cs WHERE cs.ad_account_id = \\$1").
		WithArgs("act404").
		WillReturnRows(sqlmock.NewRows(scheduleColumns))

	record, err := repo.GetByAdAccountID("act404")
	assert.NoError(t, err)
	assert.Nil(t, record)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_SaveOrUpdate(t *testing.T) {
	repo, mock := newTestRepository(t)

	taskID := "task-abc"
	record := &domain.ScheduleRecord{
		AdAccountID: "act1",
		UserID:      42,
		AccessToken: "token",
		ScheduleData: map[string]domain.ScheduleSlot{
			"time1": {Time: "09:00", CampaignCode: "sale", Watch: domain.WatchCampaigns, CPPMetric: 10, OnOff: domain.ModeOff, Status: domain.SlotRunning},
		},
		AddedAt:         time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		LastCheckStatus: domain.CheckOngoing,
		TaskID:          &taskID,
	}

	mock.ExpectExec("INSERT INTO campaigns_scheduled").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate(record)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_UpdateScheduleData(t *testing.T) {
	repo, mock := newTestRepository(t)

	scheduleData := map[string]domain.ScheduleSlot{
		"time1": {Time: "09:00", CampaignCode: "sale", Watch: domain.WatchCampaigns, CPPMetric: 10, OnOff: domain.ModeOff, Status: domain.SlotRunning},
	}

	mock.ExpectExec("UPDATE campaigns_scheduled SET schedule_data = \\$1 WHERE ad_account_id = \\$2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateScheduleData("act1", scheduleData)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_UpdateScheduleData_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("UPDATE campaigns_scheduled SET schedule_data = \\$1 WHERE ad_account_id = \\$2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateScheduleData("act404", map[string]domain.ScheduleSlot{})
	assert.Error(t, err)
}

func TestScheduleRepository_UpdateCheckResult(t *testing.T) {
	tests := []struct {
		name          string
		result        *domain.CheckResult
		expectedQuery string
	}{
		{
			name: "Sem snapshot atualiza apenas o desfecho da rodada",
			result: &domain.CheckResult{
				CheckedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
				Status:    domain.CheckFailed,
				Message:   "nenhuma campanha encontrada com o código sale",
			},
			expectedQuery: "UPDATE campaigns_scheduled SET last_time_checked = \\$1, last_check_status = \\$2, last_check_message = \\$3 WHERE ad_account_id = \\$4",
		},
		{
			name: "Com snapshot também grava matched_campaign_data",
			result: &domain.CheckResult{
				CheckedAt:           time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
				Status:              domain.CheckSuccess,
				Message:             "ok",
				MatchedCampaignData: &domain.MatchedCampaignSnapshot{},
			},
			expectedQuery: "UPDATE campaigns_scheduled SET last_time_checked = \\$1, last_check_status = \\$2, last_check_message = \\$3, matched_campaign_data = \\$4 WHERE ad_account_id = \\$5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)

			mock.ExpectExec(tt.expectedQuery).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.UpdateCheckResult("act1", tt.result)
			assert.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_Delete(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("DELETE FROM campaigns_scheduled WHERE ad_account_id = \\$1").
		WithArgs("act1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete("act1")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("DELETE FROM campaigns_scheduled WHERE ad_account_id = \\$1").
		WithArgs("act404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete("act404")
	assert.Error(t, err)
}
