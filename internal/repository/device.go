package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Device devices 表的一行
type Device struct {
	DeviceID     string
	PatientID    string
	SerialNumber string
	DeviceName   string
	Status       string
}

// DeviceRepository 设备仓库
type DeviceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDeviceRepository 创建设备仓库
func NewDeviceRepository(db *sql.DB, logger *zap.Logger) *DeviceRepository {
	return &DeviceRepository{
		db:     db,
		logger: logger,
	}
}

// GetDeviceBySerial 根据设备序列号获取设备（手环消息里的 device_id 是序列号）
func (r *DeviceRepository) GetDeviceBySerial(serial string) (*Device, error) {
	query := `
		SELECT
			d.device_id,
			d.patient_id,
			d.serial_number,
			d.device_name,
			d.status
		FROM devices d
		WHERE d.serial_number = $1
		LIMIT 1
	`

	device := &Device{}
	err := r.db.QueryRow(query, serial).Scan(
		&device.DeviceID,
		&device.PatientID,
		&device.SerialNumber,
		&device.DeviceName,
		&device.Status,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("device not found: %s", serial)
		}
		return nil, fmt.Errorf("failed to query device: %w", err)
	}

	return device, nil
}
