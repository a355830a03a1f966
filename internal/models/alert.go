package models

import "time"

// 告警级别
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// 告警类型
const (
	AlertAbnormalHeartRate = "AbnormalHeartRate"
	AlertContactLost       = "ContactLost"
)

// AlertEvent alert_events 表的一行
type AlertEvent struct {
	EventID     string    `json:"event_id"` // UUID
	DeviceID    string    `json:"device_id"`
	PatientID   string    `json:"patient_id"`
	AlertType   string    `json:"alert_type"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	BPM         int       `json:"bpm"`
	TriggeredAt time.Time `json:"triggered_at"`
	CreatedAt   time.Time `json:"created_at"`
}
