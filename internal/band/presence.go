package band

// DetectPresence 佩戴检测：单次采样，无去抖窗口
// 传感器物理缺失和未佩戴不可区分（已知简化，按原始设备行为保留）
func DetectPresence(raw bool) bool {
	return raw
}
