package band

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoop_RunsUntilCancelled(t *testing.T) {
	clock := &fakeClock{now: 10000}
	display := &fakeDisplay{}
	m := newTestMonitor(&fakeSwitch{value: true}, &fakeAccel{z: 9.8}, &fakeAnalog{value: 512},
		clock, &fakeRand{values: []int{70}}, display)

	ctx, cancel := context.WithCancel(context.Background())

	var observed []TickContext
	loop := NewLoop(m, 100*time.Millisecond, func(tc TickContext) {
		observed = append(observed, tc)
	}, zap.NewNop())

	// 注入延时函数：推进假时钟并在 5 个 tick 后取消，不做真实等待
	ticks := 0
	loop.sleep = func(d time.Duration) {
		clock.advance(d.Milliseconds())
		ticks++
		if ticks >= 5 {
			cancel()
		}
	}

	err := loop.Run(ctx)
	require.NoError(t, err)

	// 每个 tick 都执行了完整周期并通知了观察者
	assert.Equal(t, 5, len(observed))
	assert.Equal(t, 5, display.commits)

	// 固定延时调度：相邻 tick 的时间戳相差一个延时周期
	assert.Equal(t, int64(100), observed[1].NowMillis-observed[0].NowMillis)
}

func TestLoop_NilObserver(t *testing.T) {
	clock := &fakeClock{now: 0}
	m := newTestMonitor(&fakeSwitch{}, &fakeAccel{z: 9.8}, &fakeAnalog{}, clock,
		&fakeRand{}, &fakeDisplay{})

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(m, 50*time.Millisecond, nil, zap.NewNop())

	loop.sleep = func(time.Duration) { cancel() }

	err := loop.Run(ctx)
	require.NoError(t, err)
}
