package band

import "math"

// ActivityLabel 活动状态标签（加速度模值的三值映射）
type ActivityLabel string

const (
	ActivityActive  ActivityLabel = "Active"
	ActivityResting ActivityLabel = "Resting"
	ActivityMoving  ActivityLabel = "Moving"
)

// 分类阈值，单位 m/s²（模值包含重力分量，静止时约 9.8）
// 阈值和判断顺序来自设备标定，不得调整
const (
	activeThreshold   = 11.0
	restingLowerBound = 9.7
	restingUpperBound = 9.9
)

// Classify 根据三轴加速度分量计算欧氏模值并映射到活动标签
//
// 按顺序判断，首个命中生效：
//  1. m > 11.0          → Active
//  2. 9.7 < m < 9.9     → Resting
//  3. 其余               → Moving（默认分支）
//
// 注意 Resting 窄带是不对称的：m ≤ 9.7 和 [9.9, 11.0] 都落入 Moving，
// 即使它们接近静止重力。无滞回、无平滑，每个 tick 独立分类。
func Classify(ax, ay, az float64) ActivityLabel {
	magnitude := math.Sqrt(ax*ax + ay*ay + az*az)

	if magnitude > activeThreshold {
		return ActivityActive
	}
	if magnitude > restingLowerBound && magnitude < restingUpperBound {
		return ActivityResting
	}
	return ActivityMoving
}
