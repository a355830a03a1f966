package models

import "time"

// VitalRecord vitals 表的一行（入库后的读数）
type VitalRecord struct {
	ID         int64     `json:"id"`
	DeviceID   string    `json:"device_id"`
	PatientID  string    `json:"patient_id"`
	HeartRate  int       `json:"heart_rate"`
	Activity   string    `json:"activity"`
	ECG        int       `json:"ecg"`
	Presence   bool      `json:"presence"`
	RecordedAt time.Time `json:"recorded_at"`
}
