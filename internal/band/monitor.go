// Package band 实现手环的采样-分类-渲染循环核心。
//
// 每个 tick 严格顺序执行四个阶段：佩戴检测 → 活动分类 → 合成心率更新 →
// 显示合成。数据在 tick 内单向流动：佩戴状态门控心率生成和显示布局，
// 活动标签和 ECG 原始值直接进入显示。跨 tick 仅保留心率生成器的
// 时间戳/缓存值（见 VitalSignGenerator）。
package band

import (
	"go.uber.org/zap"

	"healio-monitor/internal/hal"
)

// TickContext 单个采样周期内各阶段共享的上下文
// 显式传递而不是模块级全局状态，各阶段可独立测试
type TickContext struct {
	NowMillis int64

	Presence bool

	AccelX, AccelY, AccelZ float64
	Activity               ActivityLabel

	Vital int
	ECG   int
}

// Monitor 采样循环核心，持有全部硬件协作者和两个有状态组件
type Monitor struct {
	finger hal.DigitalInput
	accel  hal.Accelerometer
	ecg    hal.AnalogInput
	clock  hal.Clock

	vitals   *VitalSignGenerator
	composer *DisplayComposer

	logger *zap.Logger
}

// NewMonitor 创建采样循环核心
func NewMonitor(
	finger hal.DigitalInput,
	accel hal.Accelerometer,
	ecg hal.AnalogInput,
	clock hal.Clock,
	rand hal.RandSource,
	display hal.Display,
	logger *zap.Logger,
) *Monitor {
	return &Monitor{
		finger:   finger,
		accel:    accel,
		ecg:      ecg,
		clock:    clock,
		vitals:   NewVitalSignGenerator(rand),
		composer: NewDisplayComposer(display),
		logger:   logger,
	}
}

// Tick 执行一个完整的采样周期，返回本周期的上下文
func (m *Monitor) Tick() TickContext {
	tc := TickContext{NowMillis: m.clock.NowMillis()}

	// 1. 佩戴检测
	tc.Presence = DetectPresence(m.finger.Read())

	// 2. 活动分类（每个 tick 重新采样，不保留历史）
	tc.AccelX, tc.AccelY, tc.AccelZ = m.accel.Read()
	tc.Activity = Classify(tc.AccelX, tc.AccelY, tc.AccelZ)

	// 3. 合成心率（仅佩戴时生成，摘下立即归零）
	tc.Vital = m.vitals.Update(tc.Presence, tc.NowMillis)

	// 4. ECG 原始采样
	tc.ECG = m.ecg.Read()

	// 5. 渲染并提交一帧
	m.composer.Render(tc.Presence, tc.Vital, tc.Activity, tc.ECG)

	m.logger.Debug("Tick completed",
		zap.Bool("presence", tc.Presence),
		zap.Int("bpm", tc.Vital),
		zap.String("activity", string(tc.Activity)),
		zap.Int("ecg", tc.ECG),
	)

	return tc
}
