package sim

import (
	"math/rand"
	"time"
)

// Rand 有界随机整数源（math/rand 实现）
// 仅由单一采样线程调用，不加锁
type Rand struct {
	r *rand.Rand
}

// NewRand 创建随机源，seed 为 0 时按当前时间播种
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Next 返回 [low, highExclusive) 内的均匀随机整数
func (r *Rand) Next(low, highExclusive int) int {
	return low + r.r.Intn(highExclusive-low)
}

// Float64 返回 [0.0, 1.0) 内的随机浮点数（供模拟传感器使用）
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}
