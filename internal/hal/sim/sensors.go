package sim

import (
	"math"

	"healio-monitor/internal/hal"
)

// FingerSwitch 模拟接触开关：按固定周期在"佩戴/摘下"之间切换
// wearMillis 内读数为 true，随后 removeMillis 内为 false，循环往复
type FingerSwitch struct {
	clock        hal.Clock
	wearMillis   int64
	removeMillis int64
}

// NewFingerSwitch 创建模拟接触开关
func NewFingerSwitch(clock hal.Clock, wearMillis, removeMillis int64) *FingerSwitch {
	return &FingerSwitch{
		clock:        clock,
		wearMillis:   wearMillis,
		removeMillis: removeMillis,
	}
}

// Read 返回当前周期内的佩戴状态
func (s *FingerSwitch) Read() bool {
	cycle := s.wearMillis + s.removeMillis
	if cycle <= 0 {
		return true
	}
	phase := s.clock.NowMillis() % cycle
	return phase < s.wearMillis
}

// Accelerometer 模拟三轴加速度计
// 静止基线：重力全部落在 z 轴（约 9.8 m/s²）加少量噪声；
// 按 burstChance 概率在 x/y 轴叠加运动脉冲
type Accelerometer struct {
	rand        *Rand
	burstChance float64
}

// NewAccelerometer 创建模拟加速度计
func NewAccelerometer(rand *Rand, burstChance float64) *Accelerometer {
	return &Accelerometer{rand: rand, burstChance: burstChance}
}

// Read 返回一次三轴采样，单位 m/s²
func (a *Accelerometer) Read() (float64, float64, float64) {
	x := a.rand.Float64()*0.1 - 0.05
	y := a.rand.Float64()*0.1 - 0.05
	z := 9.8 + a.rand.Float64()*0.06 - 0.03

	// 偶发运动脉冲
	if a.rand.Float64() < a.burstChance {
		x += a.rand.Float64()*6.0 - 3.0
		y += a.rand.Float64()*6.0 - 3.0
	}

	return x, y, z
}

// ECGInput 模拟 ECG 模拟输入通道
// 输出以 512 为中心的类正弦波形，叠加噪声，范围限制在 [0, 1023]
// （对应 10 位 ADC 的量程，波形本身无生理意义）
type ECGInput struct {
	clock hal.Clock
	rand  *Rand
}

// NewECGInput 创建模拟 ECG 输入
func NewECGInput(clock hal.Clock, rand *Rand) *ECGInput {
	return &ECGInput{clock: clock, rand: rand}
}

// Read 返回一次 ECG 采样值
func (e *ECGInput) Read() int {
	t := float64(e.clock.NowMillis())
	// 周期约 800ms，近似 75 次/分的节律
	value := 512 + int(80*math.Sin(2*math.Pi*t/800)) + e.rand.Next(-10, 11)
	if value < 0 {
		value = 0
	}
	if value > 1023 {
		value = 1023
	}
	return value
}
