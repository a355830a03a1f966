package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMonitor(finger *fakeSwitch, accel *fakeAccel, ecg *fakeAnalog, clock *fakeClock, rand *fakeRand, display *fakeDisplay) *Monitor {
	return NewMonitor(finger, accel, ecg, clock, rand, display, zap.NewNop())
}

func TestMonitor_TickWorn(t *testing.T) {
	finger := &fakeSwitch{value: true}
	accel := &fakeAccel{x: 0, y: 0, z: 9.8}
	ecg := &fakeAnalog{value: 512}
	clock := &fakeClock{now: 10000}
	rand := &fakeRand{values: []int{70}}
	display := &fakeDisplay{}

	m := newTestMonitor(finger, accel, ecg, clock, rand, display)
	tc := m.Tick()

	assert.Equal(t, int64(10000), tc.NowMillis)
	assert.True(t, tc.Presence)
	assert.Equal(t, ActivityResting, tc.Activity)
	assert.Equal(t, 70, tc.Vital)
	assert.Equal(t, 512, tc.ECG)

	// 帧内容与 tick 结果一致
	frame := display.lastFrame()
	require.Len(t, frame, 5)
	assert.Equal(t, "text(0,15): BPM: 70", frame[2])
	assert.Equal(t, "text(0,27): Status: Resting", frame[3])
	assert.Equal(t, "text(0,39): ECG: 512", frame[4])
}

func TestMonitor_TickNotWorn(t *testing.T) {
	finger := &fakeSwitch{value: false}
	accel := &fakeAccel{x: 1, y: 2, z: 14}
	ecg := &fakeAnalog{value: 300}
	clock := &fakeClock{now: 10000}
	display := &fakeDisplay{}

	m := newTestMonitor(finger, accel, ecg, clock, &fakeRand{values: []int{70}}, display)
	tc := m.Tick()

	assert.False(t, tc.Presence)
	assert.Equal(t, 0, tc.Vital) // 未佩戴：强制为 0
	// 活动分类不受佩戴状态门控，仍然每 tick 计算
	assert.Equal(t, ActivityActive, tc.Activity)

	frame := display.lastFrame()
	require.Len(t, frame, 4)
	assert.Equal(t, "text(10,25): NO FINGER", frame[2])
	assert.Equal(t, "text(10,35): DETECTED", frame[3])
}

func TestMonitor_VitalStatePersistsAcrossTicks(t *testing.T) {
	finger := &fakeSwitch{value: true}
	clock := &fakeClock{now: 10000}
	display := &fakeDisplay{}

	m := newTestMonitor(finger, &fakeAccel{z: 9.8}, &fakeAnalog{value: 500}, clock,
		&fakeRand{values: []int{70, 80}}, display)

	tc := m.Tick()
	assert.Equal(t, 70, tc.Vital)

	// 间隔内的后续 tick 保持旧值
	clock.advance(100)
	tc = m.Tick()
	assert.Equal(t, 70, tc.Vital)

	// 摘下立即归零，重新佩戴后按到期规则生成
	finger.value = false
	clock.advance(100)
	tc = m.Tick()
	assert.Equal(t, 0, tc.Vital)

	finger.value = true
	clock.advance(2000)
	tc = m.Tick()
	assert.Equal(t, 80, tc.Vital)
}
