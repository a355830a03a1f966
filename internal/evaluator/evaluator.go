// Package evaluator 对入库的手环读数做固定阈值告警判断。
//
// 只有阈值规则，不做任何生理推断或模型预测：
//   - 规则1 心率越界：佩戴中且 bpm>0，低于 60 或高于 100 触发
//     AbnormalHeartRate（低于 40 或高于 120 升级为 high）
//   - 规则2 接触丢失：同一设备从"佩戴"跳变为"未佩戴"触发一次 ContactLost，
//     持续未佩戴不重复触发
package evaluator

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/models"
	"healio-monitor/internal/repository"
)

// 心率阈值（来自云端健康评分规则）
const (
	heartRateLowMedium  = 60
	heartRateHighMedium = 100
	heartRateLowHigh    = 40
	heartRateHighHigh   = 120
)

// Evaluator 读数告警评估器
type Evaluator struct {
	logger *zap.Logger

	// 每个设备最近一次的佩戴状态，用于识别"佩戴→未佩戴"跳变
	// MQTT 回调可能并发，需要加锁
	mu           sync.Mutex
	lastPresence map[string]bool
}

// NewEvaluator 创建评估器
func NewEvaluator(logger *zap.Logger) *Evaluator {
	return &Evaluator{
		logger:       logger,
		lastPresence: make(map[string]bool),
	}
}

// Evaluate 评估一条读数，返回触发的告警事件列表（可能为空）
func (e *Evaluator) Evaluate(reading models.BandReading, device *repository.Device) []models.AlertEvent {
	var alerts []models.AlertEvent

	builder := NewAlertBuilder(device.DeviceID, device.PatientID)
	triggeredAt := time.UnixMilli(reading.Timestamp)

	// 规则1：心率越界
	if alert := e.evaluateHeartRate(reading, builder, triggeredAt); alert != nil {
		alerts = append(alerts, *alert)
	}

	// 规则2：接触丢失（状态跳变）
	if alert := e.evaluateContactLost(reading, builder, triggeredAt); alert != nil {
		alerts = append(alerts, *alert)
	}

	return alerts
}

func (e *Evaluator) evaluateHeartRate(reading models.BandReading, builder *AlertBuilder, triggeredAt time.Time) *models.AlertEvent {
	// 未佩戴时 bpm 恒为 0，不参与判断
	if !reading.Presence || reading.BPM <= 0 {
		return nil
	}

	bpm := reading.BPM
	if bpm >= heartRateLowMedium && bpm <= heartRateHighMedium {
		return nil
	}

	severity := models.SeverityMedium
	if bpm < heartRateLowHigh || bpm > heartRateHighHigh {
		severity = models.SeverityHigh
	}

	message := fmt.Sprintf("heart rate %d outside normal range [%d, %d]",
		bpm, heartRateLowMedium, heartRateHighMedium)

	e.logger.Warn("Abnormal heart rate detected",
		zap.String("device_id", reading.DeviceID),
		zap.Int("bpm", bpm),
		zap.String("severity", severity),
	)

	alert := builder.Build(models.AlertAbnormalHeartRate, severity, message, bpm, triggeredAt)
	return &alert
}

func (e *Evaluator) evaluateContactLost(reading models.BandReading, builder *AlertBuilder, triggeredAt time.Time) *models.AlertEvent {
	e.mu.Lock()
	last, seen := e.lastPresence[reading.DeviceID]
	e.lastPresence[reading.DeviceID] = reading.Presence
	e.mu.Unlock()

	// 只在"佩戴→未佩戴"跳变时触发一次
	if !seen || reading.Presence || !last {
		return nil
	}

	e.logger.Info("Contact lost",
		zap.String("device_id", reading.DeviceID),
	)

	alert := builder.Build(models.AlertContactLost, models.SeverityLow,
		"device contact lost", 0, triggeredAt)
	return &alert
}
