package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"healio-monitor/internal/config"
	"healio-monitor/internal/consumer"
	"healio-monitor/internal/database"
	"healio-monitor/internal/evaluator"
	mqttcommon "healio-monitor/internal/mqtt"
	rediscommon "healio-monitor/internal/redis"
	"healio-monitor/internal/repository"
)

// IngestService 云端接入服务：订阅手环读数，入库并做阈值告警
type IngestService struct {
	config     *config.Config
	logger     *zap.Logger
	db         *sql.DB
	redis      *rediscommon.Client
	mqttClient *mqttcommon.Client
	consumer   *consumer.MQTTConsumer
}

// NewIngestService 创建接入服务
func NewIngestService(cfg *config.Config, logger *zap.Logger) (*IngestService, error) {
	// 初始化数据库
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 初始化Redis
	redisClient := rediscommon.NewRedisClient(&cfg.Redis)
	if err := rediscommon.Ping(context.Background(), redisClient); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// 初始化MQTT
	mqttClient, err := mqttcommon.NewClient(&cfg.MQTT, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT: %w", err)
	}

	// 创建Repository
	deviceRepo := repository.NewDeviceRepository(db, logger)
	vitalsRepo := repository.NewVitalsRepository(db, logger)
	alertsRepo := repository.NewAlertsRepository(db, logger)

	// 创建缓存管理器和评估器
	cacheManager := consumer.NewCacheManager(cfg, redisClient, logger)
	eval := evaluator.NewEvaluator(logger)

	// 创建Consumer
	mqttConsumer := consumer.NewMQTTConsumer(
		cfg, mqttClient, deviceRepo, vitalsRepo, alertsRepo, cacheManager, eval, logger,
	)

	return &IngestService{
		config:     cfg,
		logger:     logger,
		db:         db,
		redis:      redisClient,
		mqttClient: mqttClient,
		consumer:   mqttConsumer,
	}, nil
}

// Start 启动服务（阻塞直到 ctx 取消）
func (s *IngestService) Start(ctx context.Context) error {
	s.logger.Info("Starting ingest service components")

	if err := s.consumer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MQTT consumer: %w", err)
	}

	return nil
}

// Stop 停止服务并释放资源
func (s *IngestService) Stop(ctx context.Context) error {
	s.logger.Info("Stopping ingest service")

	if err := s.consumer.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop consumer", zap.Error(err))
	}

	s.mqttClient.Disconnect()

	if err := rediscommon.Close(s.redis); err != nil {
		s.logger.Error("Failed to close redis client", zap.Error(err))
	}

	if err := database.Close(s.db); err != nil {
		s.logger.Error("Failed to close database", zap.Error(err))
	}

	s.logger.Info("Ingest service stopped")
	return nil
}
