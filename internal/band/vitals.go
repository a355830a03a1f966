package band

import "healio-monitor/internal/hal"

// 合成心率参数
const (
	vitalIntervalMillis int64 = 2000 // 重新生成间隔
	vitalMin                  = 68   // 含
	vitalMax                  = 85   // 不含
)

// VitalSignGenerator 合成心率生成器（占位实现，不做任何生理推断）
//
// 状态机只有两个状态：
//   - 未佩戴：输出强制为 0，内部时间戳不推进
//   - 佩戴中：距上次生成超过 2000ms 时从 [68,85) 取新值并记录时间戳，否则保持
//
// 未佩戴→佩戴的切换不重置时间戳。后果（按原始设备行为保留，不"修正"）：
//   - 摘下超过 2000ms 后重新佩戴，第一个 tick 就会立即生成新值；
//   - 在 2000ms 窗口内摘下又戴上，显示值保持 0 直到原窗口结束才生成
type VitalSignGenerator struct {
	rand       hal.RandSource
	lastUpdate int64 // 上次生成时间（单调毫秒）
	value      int
}

// NewVitalSignGenerator 创建合成心率生成器
func NewVitalSignGenerator(rand hal.RandSource) *VitalSignGenerator {
	return &VitalSignGenerator{rand: rand}
}

// Update 每个 tick 调用一次，返回当前输出值
func (g *VitalSignGenerator) Update(presence bool, nowMillis int64) int {
	if !presence {
		g.value = 0
		return g.value
	}

	if nowMillis-g.lastUpdate > vitalIntervalMillis {
		g.lastUpdate = nowMillis
		g.value = g.rand.Next(vitalMin, vitalMax)
	}
	return g.value
}
