package band

import (
	"fmt"

	"healio-monitor/internal/hal"
)

// 128x64 单色屏布局坐标（与原始设备一致，固定不变）
const (
	screenWidth = 128

	headerText = "HEALTH MONITOR"
	separatorY = 10

	bpmFieldY    = 15
	statusFieldY = 27
	ecgFieldY    = 39

	warningX      = 10
	warningLine1Y = 25
	warningLine2Y = 35
)

// DisplayComposer 显示合成器：把一个 tick 的结果渲染为完整的一帧
// 每帧完整清屏重绘，无增量刷新；Commit 一次性提交
type DisplayComposer struct {
	display hal.Display
}

// NewDisplayComposer 创建显示合成器
func NewDisplayComposer(display hal.Display) *DisplayComposer {
	return &DisplayComposer{display: display}
}

// Render 渲染一帧
//
// 固定部分：标题 + 分隔线。佩戴中显示三个数据字段（BPM / Status / ECG），
// 未佩戴显示两行警告。相同输入总是产生相同的帧内容。
func (c *DisplayComposer) Render(presence bool, vital int, label ActivityLabel, ecg int) {
	d := c.display
	d.Clear()

	d.DrawText(0, 0, headerText)
	d.DrawLine(0, separatorY, screenWidth, separatorY)

	if presence {
		d.DrawText(0, bpmFieldY, fmt.Sprintf("BPM: %d", vital))
		d.DrawText(0, statusFieldY, fmt.Sprintf("Status: %s", label))
		d.DrawText(0, ecgFieldY, fmt.Sprintf("ECG: %d", ecg))
	} else {
		d.DrawText(warningX, warningLine1Y, "NO FINGER")
		d.DrawText(warningX, warningLine2Y, "DETECTED")
	}

	d.Commit()
}
