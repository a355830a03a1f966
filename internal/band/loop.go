package band

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TickObserver 每个 tick 完成后的回调（如数据上行），失败不影响循环
type TickObserver func(TickContext)

// Loop 固定延时调度器
//
// 每个周期 = 本次工作耗时 + 固定延时，不是严格的墙钟节拍：
// 慢 tick 不会被跳过或追赶，只是整体节奏后移。循环在 ctx 取消前一直运行
// （对设备而言 ctx 取消就是断电）。
type Loop struct {
	monitor  *Monitor
	interval time.Duration
	observer TickObserver
	logger   *zap.Logger

	// 可注入的延时函数，测试中替换以避免真实等待
	sleep func(time.Duration)
}

// NewLoop 创建调度循环
func NewLoop(monitor *Monitor, interval time.Duration, observer TickObserver, logger *zap.Logger) *Loop {
	return &Loop{
		monitor:  monitor,
		interval: interval,
		observer: observer,
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// Run 运行采样循环直到 ctx 取消
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("Sampling loop started",
		zap.Duration("interval", l.interval),
	)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Sampling loop stopped")
			return nil
		default:
		}

		tc := l.monitor.Tick()

		if l.observer != nil {
			l.observer(tc)
		}

		l.sleep(l.interval)
	}
}
