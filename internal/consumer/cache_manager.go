package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"healio-monitor/internal/config"
	"healio-monitor/internal/models"
)

// CacheManager 实时数据缓存管理器
// 每个设备两个键：
//   - <prefix><device_id><realtime_suffix>：最新一条读数（JSON）
//   - <prefix><device_id><alert_suffix>：最近触发的告警列表（JSON）
type CacheManager struct {
	config      *config.Config
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewCacheManager 创建缓存管理器
func NewCacheManager(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *CacheManager {
	return &CacheManager{
		config:      cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *CacheManager) realtimeKey(deviceID string) string {
	return fmt.Sprintf("%s%s%s",
		c.config.Ingest.Cache.KeyPrefix,
		deviceID,
		c.config.Ingest.Cache.RealtimeSuffix,
	)
}

func (c *CacheManager) alertKey(deviceID string) string {
	return fmt.Sprintf("%s%s%s",
		c.config.Ingest.Cache.KeyPrefix,
		deviceID,
		c.config.Ingest.Cache.AlertSuffix,
	)
}

// SetRealtimeReading 写入最新读数（带 TTL）
func (c *CacheManager) SetRealtimeReading(deviceID string, reading *models.BandReading) error {
	jsonData, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	ctx := context.Background()
	err = c.redisClient.Set(
		ctx,
		c.realtimeKey(deviceID),
		jsonData,
		time.Duration(c.config.Ingest.Cache.RealtimeTTL)*time.Second,
	).Err()

	if err != nil {
		return fmt.Errorf("failed to set realtime cache: %w", err)
	}

	return nil
}

// GetRealtimeReading 读取最新读数
func (c *CacheManager) GetRealtimeReading(deviceID string) (*models.BandReading, error) {
	ctx := context.Background()
	val, err := c.redisClient.Get(ctx, c.realtimeKey(deviceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("realtime reading not found for device: %s", deviceID)
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var reading models.BandReading
	if err := json.Unmarshal([]byte(val), &reading); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}

	return &reading, nil
}

// UpdateAlertCache 更新告警缓存（带 TTL）
func (c *CacheManager) UpdateAlertCache(deviceID string, alerts []models.AlertEvent) error {
	jsonData, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal alerts: %w", err)
	}

	ctx := context.Background()
	err = c.redisClient.Set(
		ctx,
		c.alertKey(deviceID),
		jsonData,
		time.Duration(c.config.Ingest.Cache.AlertTTL)*time.Second,
	).Err()

	if err != nil {
		return fmt.Errorf("failed to set alert cache: %w", err)
	}

	c.logger.Debug("Updated alert cache",
		zap.String("device_id", deviceID),
		zap.Int("alert_count", len(alerts)),
	)

	return nil
}

// GetAlerts 读取告警缓存
func (c *CacheManager) GetAlerts(deviceID string) ([]models.AlertEvent, error) {
	ctx := context.Background()
	val, err := c.redisClient.Get(ctx, c.alertKey(deviceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert cache: %w", err)
	}

	var alerts []models.AlertEvent
	if err := json.Unmarshal([]byte(val), &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alerts: %w", err)
	}

	return alerts, nil
}
