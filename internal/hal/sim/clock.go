package sim

import "time"

// SystemClock 单调时钟实现，返回进程启动以来的毫秒数
// （等价于固件里的 millis()：从 0 开始计数，不受系统时间调整影响）
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建系统时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis 返回启动以来的毫秒数
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}
