package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

const (
	schedulesTable = "campaigns_scheduled cs"
)

type ScheduleRepository interface {
	ListAll() ([]*domain.ScheduleRecord, error)
	GetByAdAccountID(adAccountID string) (*domain.ScheduleRecord, error)
	SaveOrUpdate(record *domain.ScheduleRecord) error
	UpdateScheduleData(adAccountID string, scheduleData map[string]domain.ScheduleSlot) error
	UpdateCheckResult(adAccountID string, result *domain.CheckResult) error
	Delete(adAccountID string) error
}

type scheduleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRepository(conn *postgres.Connection) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

// ListAll devolve todos os agendamentos persistidos. Registros com JSON
// corrompido são pulados com aviso no log para não derrubar a varredura
// inteira do cron.
func (r *scheduleRepository) ListAll() ([]*domain.ScheduleRecord, error) {
	schedulesSQL, schedulesArgs, err := squirrel.
		Select("cs.ad_account_id, cs.user_id, cs.access_token, cs.schedule_data, cs.campaign_code, cs.added_at, cs.matched_campaign_data, cs.last_time_checked, cs.last_check_status, cs.last_check_message, cs.task_id").
		From(schedulesTable).
		OrderBy("cs.added_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(schedulesSQL, schedulesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.ScheduleRecord, 0)

	for rows.Next() {
		record, err := r.deserializeSchedule(rows)
		if err != nil {
			logrus.WithError(err).Warn("agendamento com dados inválidos ignorado na varredura")
			continue
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}

func (r *scheduleRepository) GetByAdAccountID(adAccountID string) (*domain.ScheduleRecord, error) {
	schedulesSQL, schedulesArgs, err := squirrel.
		Select("cs.ad_account_id, cs.user_id, cs.access_token, cs.schedule_data, cs.campaign_code, cs.added_at, cs.matched_campaign_data, cs.last_time_checked, cs.last_check_status, cs.last_check_message, cs.task_id").
		From(schedulesTable).
		Where(squirrel.Eq{"cs.ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(schedulesSQL, schedulesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	record, err := r.deserializeSchedule(rows)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *scheduleRepository) SaveOrUpdate(record *domain.ScheduleRecord) error {
	scheduleData, err := json.Marshal(record.ScheduleData)
	if err != nil {
		return fmt.Errorf("erro ao serializar schedule_data: %w", err)
	}

	matchedData, err := json.Marshal(record.MatchedCampaignData)
	if err != nil {
		return fmt.Errorf("erro ao serializar matched_campaign_data: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns_scheduled").
		Columns("ad_account_id", "user_id", "access_token", "schedule_data", "campaign_code", "added_at", "matched_campaign_data", "last_time_checked", "last_check_status", "last_check_message", "task_id").
		Values(
			record.AdAccountID,
			record.UserID,
			record.AccessToken,
			scheduleData,
			record.CampaignCode,
			record.AddedAt,
			matchedData,
			record.LastTimeChecked,
			record.LastCheckStatus,
			record.LastCheckMessage,
			record.TaskID,
		).
		Suffix(`
			ON CONFLICT (ad_account_id) DO UPDATE SET
				user_id = EXCLUDED.user_id,
				access_token = EXCLUDED.access_token,
				schedule_data = EXCLUDED.schedule_data,
				campaign_code = EXCLUDED.campaign_code,
				task_id = EXCLUDED.task_id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *scheduleRepository) UpdateScheduleData(adAccountID string, scheduleData map[string]domain.ScheduleSlot) error {
	if adAccountID == "" {
		return errors.New("ad_account_id é obrigatório")
	}

	raw, err := json.Marshal(scheduleData)
	if err != nil {
		return fmt.Errorf("erro ao serializar schedule_data: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Update("campaigns_scheduled").
		Set("schedule_data", raw).
		Where(squirrel.Eq{"ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("agendamento não encontrado")
	}

	return nil
}

// UpdateCheckResult grava o desfecho de uma rodada de reconciliação. O
// snapshot de campanhas casadas só é sobrescrito quando a rodada produziu um.
func (r *scheduleRepository) UpdateCheckResult(adAccountID string, result *domain.CheckResult) error {
	queryBuilder := squirrel.
		Update("campaigns_scheduled").
		Set("last_time_checked", result.CheckedAt).
		Set("last_check_status", result.Status).
		Set("last_check_message", result.Message).
		Where(squirrel.Eq{"ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar)

	if result.MatchedCampaignData != nil {
		raw, err := json.Marshal(result.MatchedCampaignData)
		if err != nil {
			return fmt.Errorf("erro ao serializar matched_campaign_data: %w", err)
		}

		queryBuilder = queryBuilder.Set("matched_campaign_data", raw)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	res, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("agendamento não encontrado")
	}

	return nil
}

func (r *scheduleRepository) Delete(adAccountID string) error {
	sqlQuery, args, err := squirrel.
		Delete("campaigns_scheduled").
		Where(squirrel.Eq{"ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("agendamento não encontrado")
	}

	return nil
}

func (r *scheduleRepository) deserializeSchedule(rows *sql.Rows) (*domain.ScheduleRecord, error) {
	var (
		record       domain.ScheduleRecord
		scheduleData []byte
		matchedData  []byte
		checkedAt    sql.NullTime
	)

	if err := rows.Scan(
		&record.AdAccountID,
		&record.UserID,
		&record.AccessToken,
		&scheduleData,
		&record.CampaignCode,
		&record.AddedAt,
		&matchedData,
		&checkedAt,
		&record.LastCheckStatus,
		&record.LastCheckMessage,
		&record.TaskID,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scheduleData, &record.ScheduleData); err != nil {
		return nil, fmt.Errorf("erro ao deserializar schedule_data da conta %s: %w", record.AdAccountID, err)
	}

	if len(matchedData) > 0 {
		if err := json.Unmarshal(matchedData, &record.MatchedCampaignData); err != nil {
			return nil, fmt.Errorf("erro ao deserializar matched_campaign_data da conta %s: %w", record.AdAccountID, err)
		}
	}

	if checkedAt.Valid {
		t := checkedAt.Time
		record.LastTimeChecked = &t
	}

	return &record, nil
}
