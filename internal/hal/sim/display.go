package sim

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// LogDisplay 模拟显示屏：把绘制操作缓存起来，Commit 时整帧写入日志
// 便于无硬件运行时观察每个 tick 的渲染结果
type LogDisplay struct {
	logger *zap.Logger

	mu      sync.Mutex
	pending []string // 当前帧累积的绘制操作
	frame   []string // 最近一次 Commit 的帧内容
}

// NewLogDisplay 创建日志显示屏
func NewLogDisplay(logger *zap.Logger) *LogDisplay {
	return &LogDisplay{logger: logger}
}

// Clear 清屏（丢弃未提交的绘制操作）
func (d *LogDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = d.pending[:0]
}

// DrawText 在指定坐标绘制文本
func (d *LogDisplay) DrawText(x, y int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, fmt.Sprintf("text(%d,%d): %s", x, y, text))
}

// DrawLine 绘制直线
func (d *LogDisplay) DrawLine(x0, y0, x1, y1 int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, fmt.Sprintf("line(%d,%d)-(%d,%d)", x0, y0, x1, y1))
}

// Commit 提交当前帧
func (d *LogDisplay) Commit() {
	d.mu.Lock()
	d.frame = append(d.frame[:0], d.pending...)
	frame := append([]string(nil), d.frame...)
	d.mu.Unlock()

	d.logger.Debug("Display frame committed", zap.Strings("frame", frame))
}

// Frame 返回最近一次提交的帧内容
func (d *LogDisplay) Frame() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.frame...)
}
