package repository

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

// VitalsRepository 生命体征仓库
type VitalsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVitalsRepository 创建生命体征仓库
func NewVitalsRepository(db *sql.DB, logger *zap.Logger) *VitalsRepository {
	return &VitalsRepository{
		db:     db,
		logger: logger,
	}
}

// Insert 插入一条读数，返回自增 ID
func (r *VitalsRepository) Insert(record *models.VitalRecord) (int64, error) {
	query := `
		INSERT INTO vitals (
			device_id,
			patient_id,
			heart_rate,
			activity,
			ecg,
			presence,
			recorded_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		query,
		record.DeviceID,
		record.PatientID,
		record.HeartRate,
		record.Activity,
		record.ECG,
		record.Presence,
		record.RecordedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to insert vital record: %w", err)
	}

	return id, nil
}

// ListByDevice 按时间范围查询某设备的读数（升序）
func (r *VitalsRepository) ListByDevice(deviceID string, from, to time.Time) ([]models.VitalRecord, error) {
	query := `
		SELECT
			id,
			device_id,
			patient_id,
			heart_rate,
			activity,
			ecg,
			presence,
			recorded_at
		FROM vitals
		WHERE device_id = $1
		  AND recorded_at >= $2
		  AND recorded_at <= $3
		ORDER BY recorded_at ASC
	`

	rows, err := r.db.Query(query, deviceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query vitals: %w", err)
	}
	defer rows.Close()

	var records []models.VitalRecord
	for rows.Next() {
		var rec models.VitalRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.DeviceID,
			&rec.PatientID,
			&rec.HeartRate,
			&rec.Activity,
			&rec.ECG,
			&rec.Presence,
			&rec.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vital record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vitals: %w", err)
	}

	return records, nil
}
