package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

// AlertsRepository 告警事件仓库
type AlertsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAlertsRepository 创建告警事件仓库
func NewAlertsRepository(db *sql.DB, logger *zap.Logger) *AlertsRepository {
	return &AlertsRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAlertEvent 写入一条告警事件
func (r *AlertsRepository) CreateAlertEvent(event *models.AlertEvent) error {
	query := `
		INSERT INTO alert_events (
			event_id,
			device_id,
			patient_id,
			alert_type,
			severity,
			message,
			bpm,
			triggered_at,
			created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.Exec(
		query,
		event.EventID,
		event.DeviceID,
		event.PatientID,
		event.AlertType,
		event.Severity,
		event.Message,
		event.BPM,
		event.TriggeredAt,
		event.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create alert event: %w", err)
	}

	r.logger.Info("Alert event created",
		zap.String("event_id", event.EventID),
		zap.String("alert_type", event.AlertType),
		zap.String("severity", event.Severity),
	)

	return nil
}

// GetAlertEvent 按 ID 读取告警事件
func (r *AlertsRepository) GetAlertEvent(eventID string) (*models.AlertEvent, error) {
	query := `
		SELECT
			event_id,
			device_id,
			patient_id,
			alert_type,
			severity,
			message,
			bpm,
			triggered_at,
			created_at
		FROM alert_events
		WHERE event_id = $1
	`

	event := &models.AlertEvent{}
	err := r.db.QueryRow(query, eventID).Scan(
		&event.EventID,
		&event.DeviceID,
		&event.PatientID,
		&event.AlertType,
		&event.Severity,
		&event.Message,
		&event.BPM,
		&event.TriggeredAt,
		&event.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("alert event not found: %s", eventID)
		}
		return nil, fmt.Errorf("failed to query alert event: %w", err)
	}

	return event, nil
}
