package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/band"
	"healio-monitor/internal/config"
	"healio-monitor/internal/hal/sim"
	mqttcommon "healio-monitor/internal/mqtt"
	"healio-monitor/internal/uplink"
)

// BandService 手环服务：组装模拟硬件、采样循环核心和可选的上行通道
//
// 真实硬件部署时只需替换 hal 接口的实现，核心循环不变
type BandService struct {
	config *config.Config
	logger *zap.Logger

	loop       *band.Loop
	mqttClient *mqttcommon.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewBandService 创建手环服务
func NewBandService(cfg *config.Config, logger *zap.Logger) (*BandService, error) {
	// 模拟硬件协作者
	clock := sim.NewSystemClock()
	rng := sim.NewRand(cfg.Band.Sim.Seed)
	finger := sim.NewFingerSwitch(clock,
		int64(cfg.Band.Sim.WearSeconds)*1000,
		int64(cfg.Band.Sim.RemoveSeconds)*1000,
	)
	accel := sim.NewAccelerometer(rng, 0.1)
	ecg := sim.NewECGInput(clock, rng)
	display := sim.NewLogDisplay(logger)

	monitor := band.NewMonitor(finger, accel, ecg, clock, rng, display, logger)

	s := &BandService{
		config: cfg,
		logger: logger,
	}

	// 上行通道（可选）。通道建立失败只降级为本地显示，不阻止手环运行
	var observer band.TickObserver
	if cfg.Band.Uplink.Enabled || cfg.Band.Cloud.Enabled {
		observer = s.buildObserver()
	}

	interval := time.Duration(cfg.Band.TickIntervalMillis) * time.Millisecond
	s.loop = band.NewLoop(monitor, interval, observer, logger)

	return s, nil
}

// buildObserver 构建 tick 观察者：MQTT 发布和/或 HTTP 转发
func (s *BandService) buildObserver() band.TickObserver {
	cfg := s.config

	var publisher *uplink.Publisher
	if cfg.Band.Uplink.Enabled {
		mqttClient, err := mqttcommon.NewClient(&cfg.MQTT, s.logger)
		if err != nil {
			s.logger.Error("Failed to connect to MQTT broker, uplink disabled", zap.Error(err))
		} else {
			s.mqttClient = mqttClient
			publisher = uplink.NewPublisher(mqttClient, cfg.Band.DeviceID,
				cfg.Band.Uplink.TopicPrefix, cfg.MQTT.QoS, s.logger)
		}
	}

	var forwarder *uplink.Forwarder
	if cfg.Band.Cloud.Enabled {
		forwarder = uplink.NewForwarder(cfg.Band.Cloud.BaseURL, s.logger)
	}

	if publisher == nil && forwarder == nil {
		return nil
	}

	return func(tc band.TickContext) {
		if publisher != nil {
			publisher.Publish(tc)
		}
		if forwarder != nil {
			if err := forwarder.Forward(uplink.NewReading(cfg.Band.DeviceID, tc)); err != nil {
				s.logger.Warn("Failed to forward reading", zap.Error(err))
			}
		}
	}
}

// Start 启动采样循环
func (s *BandService) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.loop.Run(loopCtx); err != nil {
			s.logger.Error("Sampling loop exited with error", zap.Error(err))
		}
	}()

	s.logger.Info("Band service started",
		zap.String("device_id", s.config.Band.DeviceID),
		zap.Int("tick_interval_ms", s.config.Band.TickIntervalMillis),
	)
	return nil
}

// Stop 停止采样循环并断开上行连接
func (s *BandService) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.done != nil {
		select {
		case <-s.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if s.mqttClient != nil {
		s.mqttClient.Disconnect()
	}

	s.logger.Info("Band service stopped")
	return nil
}
