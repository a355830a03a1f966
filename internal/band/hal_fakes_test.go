package band

import (
	"fmt"
	"sync"
)

// 测试用的硬件协作者假实现（替代真实驱动，见 hal 包接口）

type fakeSwitch struct {
	value bool
}

func (f *fakeSwitch) Read() bool { return f.value }

type fakeAccel struct {
	x, y, z float64
}

func (f *fakeAccel) Read() (float64, float64, float64) { return f.x, f.y, f.z }

type fakeAnalog struct {
	value int
}

func (f *fakeAnalog) Read() int { return f.value }

type fakeClock struct {
	now int64
}

func (f *fakeClock) NowMillis() int64 { return f.now }

func (f *fakeClock) advance(millis int64) { f.now += millis }

// fakeRand 按序返回预设值，用完后回绕
type fakeRand struct {
	values []int
	index  int
}

func (f *fakeRand) Next(low, highExclusive int) int {
	if len(f.values) == 0 {
		return low
	}
	v := f.values[f.index%len(f.values)]
	f.index++
	return v
}

// fakeDisplay 记录全部绘制操作，Commit 时保存为一帧
type fakeDisplay struct {
	mu      sync.Mutex
	pending []string
	frame   []string
	commits int
}

func (f *fakeDisplay) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = f.pending[:0]
}

func (f *fakeDisplay) DrawText(x, y int, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, fmt.Sprintf("text(%d,%d): %s", x, y, text))
}

func (f *fakeDisplay) DrawLine(x0, y0, x1, y1 int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, fmt.Sprintf("line(%d,%d)-(%d,%d)", x0, y0, x1, y1))
}

func (f *fakeDisplay) Commit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frame = append([]string(nil), f.pending...)
	f.commits++
}

func (f *fakeDisplay) lastFrame() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.frame...)
}
