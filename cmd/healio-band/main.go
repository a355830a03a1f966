package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"healio-monitor/internal/config"
	"healio-monitor/internal/logger"
	"healio-monitor/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化Logger
	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "healio-band")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting healio-band",
		zap.String("device_id", cfg.Band.DeviceID),
		zap.Int("tick_interval_ms", cfg.Band.TickIntervalMillis),
		zap.Bool("uplink_enabled", cfg.Band.Uplink.Enabled),
	)

	// 创建服务
	bandService, err := service.NewBandService(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create band service", zap.Error(err))
	}

	// 启动服务
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := bandService.Start(ctx); err != nil {
		zapLogger.Fatal("Failed to start band service", zap.Error(err))
	}

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	zapLogger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	// 优雅关闭
	cancel()
	if err := bandService.Stop(context.Background()); err != nil {
		zapLogger.Error("Error during shutdown", zap.Error(err))
	}

	zapLogger.Info("Service stopped")
}
