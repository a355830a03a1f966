package evaluator

import (
	"time"

	"github.com/google/uuid"

	"healio-monitor/internal/models"
)

// AlertBuilder 告警事件构建器（统一填充 ID 和时间字段）
type AlertBuilder struct {
	deviceID  string
	patientID string
}

// NewAlertBuilder 创建告警事件构建器
func NewAlertBuilder(deviceID, patientID string) *AlertBuilder {
	return &AlertBuilder{
		deviceID:  deviceID,
		patientID: patientID,
	}
}

// Build 构建一条告警事件
func (b *AlertBuilder) Build(alertType, severity, message string, bpm int, triggeredAt time.Time) models.AlertEvent {
	now := time.Now()
	return models.AlertEvent{
		EventID:     uuid.New().String(),
		DeviceID:    b.deviceID,
		PatientID:   b.patientID,
		AlertType:   alertType,
		Severity:    severity,
		Message:     message,
		BPM:         bpm,
		TriggeredAt: triggeredAt,
		CreatedAt:   now,
	}
}
