package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogDisplay_CommitAndFrame(t *testing.T) {
	d := NewLogDisplay(zap.NewNop())

	d.Clear()
	d.DrawText(0, 0, "HEALTH MONITOR")
	d.DrawLine(0, 10, 128, 10)
	d.Commit()

	frame := d.Frame()
	require.Len(t, frame, 2)
	assert.Equal(t, "text(0,0): HEALTH MONITOR", frame[0])
	assert.Equal(t, "line(0,10)-(128,10)", frame[1])
}

func TestLogDisplay_ClearDropsPendingOps(t *testing.T) {
	d := NewLogDisplay(zap.NewNop())

	// 未提交的绘制操作在 Clear 后不进入下一帧
	d.DrawText(0, 15, "BPM: 70")
	d.Clear()
	d.DrawText(10, 25, "NO FINGER")
	d.Commit()

	frame := d.Frame()
	require.Len(t, frame, 1)
	assert.Equal(t, "text(10,25): NO FINGER", frame[0])
}

func TestLogDisplay_FrameKeepsLastCommit(t *testing.T) {
	d := NewLogDisplay(zap.NewNop())

	d.Clear()
	d.DrawText(0, 0, "first")
	d.Commit()

	d.Clear()
	d.DrawText(0, 0, "second")

	// 未提交的操作不影响 Frame 返回的上一帧
	frame := d.Frame()
	require.Len(t, frame, 1)
	assert.Equal(t, "text(0,0): first", frame[0])
}
