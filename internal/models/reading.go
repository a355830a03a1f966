package models

// BandReading 手环每个 tick 上行的读数消息
// 发布主题：<prefix>/<device_id>/vitals（JSON 编码）
type BandReading struct {
	DeviceID  string `json:"device_id"` // 设备序列号
	Timestamp int64  `json:"timestamp"` // 采样时间（墙钟 Unix 毫秒，非设备单调时钟）
	Presence  bool   `json:"presence"`  // 佩戴状态
	BPM       int    `json:"bpm"`       // 合成心率，未佩戴时为 0
	Activity  string `json:"activity"`  // "Active" / "Resting" / "Moving"
	ECG       int    `json:"ecg"`       // ECG 原始采样值
}
