package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/config"
	"healio-monitor/internal/evaluator"
	"healio-monitor/internal/models"
	mqttcommon "healio-monitor/internal/mqtt"
	"healio-monitor/internal/repository"
)

// MQTTConsumer 手环读数消费者
//
// 订阅 healio/+/vitals，对每条消息依次：
//  1. 按序列号查询设备
//  2. 入库 vitals
//  3. 刷新 Redis 实时缓存
//  4. 阈值告警评估，触发的告警入库并写告警缓存
//
// 单条消息处理失败只记录日志，不中断订阅。
type MQTTConsumer struct {
	config       *config.Config
	mqttClient   *mqttcommon.Client
	deviceRepo   *repository.DeviceRepository
	vitalsRepo   *repository.VitalsRepository
	alertsRepo   *repository.AlertsRepository
	cacheManager *CacheManager
	evaluator    *evaluator.Evaluator
	logger       *zap.Logger
}

// NewMQTTConsumer 创建消费者
func NewMQTTConsumer(
	cfg *config.Config,
	mqttClient *mqttcommon.Client,
	deviceRepo *repository.DeviceRepository,
	vitalsRepo *repository.VitalsRepository,
	alertsRepo *repository.AlertsRepository,
	cacheManager *CacheManager,
	eval *evaluator.Evaluator,
	logger *zap.Logger,
) *MQTTConsumer {
	return &MQTTConsumer{
		config:       cfg,
		mqttClient:   mqttClient,
		deviceRepo:   deviceRepo,
		vitalsRepo:   vitalsRepo,
		alertsRepo:   alertsRepo,
		cacheManager: cacheManager,
		evaluator:    eval,
		logger:       logger,
	}
}

// Start 启动消费者
func (c *MQTTConsumer) Start(ctx context.Context) error {
	topic := c.config.Ingest.Topic
	if topic == "" {
		return fmt.Errorf("ingest MQTT topic not configured")
	}

	if err := c.mqttClient.Subscribe(topic, c.config.MQTT.QoS, c.handleMessage); err != nil {
		return fmt.Errorf("failed to subscribe to ingest topic: %w", err)
	}

	c.logger.Info("MQTT consumer started",
		zap.String("topic", topic),
	)

	// 等待上下文取消
	<-ctx.Done()
	return nil
}

// Stop 停止消费者
func (c *MQTTConsumer) Stop(ctx context.Context) error {
	topic := c.config.Ingest.Topic
	if topic != "" {
		if err := c.mqttClient.Unsubscribe(topic); err != nil {
			c.logger.Error("Failed to unsubscribe", zap.Error(err))
		}
	}

	c.logger.Info("MQTT consumer stopped")
	return nil
}

// handleMessage 处理一条手环读数消息
func (c *MQTTConsumer) handleMessage(topic string, payload []byte) error {
	c.logger.Debug("Received band reading",
		zap.String("topic", topic),
		zap.Int("payload_size", len(payload)),
	)

	var reading models.BandReading
	if err := json.Unmarshal(payload, &reading); err != nil {
		return fmt.Errorf("failed to unmarshal band reading: %w", err)
	}

	return c.processReading(&reading)
}

// processReading 处理一条读数：查设备 → 入库 → 刷缓存 → 告警评估
func (c *MQTTConsumer) processReading(reading *models.BandReading) error {
	// 1. 查询设备
	device, err := c.deviceRepo.GetDeviceBySerial(reading.DeviceID)
	if err != nil {
		c.logger.Warn("Device not found, dropping reading",
			zap.String("serial_number", reading.DeviceID),
			zap.Error(err),
		)
		return err
	}

	// 2. 入库
	record := &models.VitalRecord{
		DeviceID:   device.DeviceID,
		PatientID:  device.PatientID,
		HeartRate:  reading.BPM,
		Activity:   reading.Activity,
		ECG:        reading.ECG,
		Presence:   reading.Presence,
		RecordedAt: time.UnixMilli(reading.Timestamp),
	}
	if _, err := c.vitalsRepo.Insert(record); err != nil {
		c.logger.Error("Failed to insert vital record",
			zap.String("device_id", device.DeviceID),
			zap.Error(err),
		)
		return err
	}

	// 3. 刷新实时缓存（失败不影响后续步骤）
	if err := c.cacheManager.SetRealtimeReading(device.DeviceID, reading); err != nil {
		c.logger.Error("Failed to update realtime cache",
			zap.String("device_id", device.DeviceID),
			zap.Error(err),
		)
	}

	// 4. 告警评估
	alerts := c.evaluator.Evaluate(*reading, device)
	if len(alerts) == 0 {
		return nil
	}

	for _, alert := range alerts {
		if err := c.alertsRepo.CreateAlertEvent(&alert); err != nil {
			c.logger.Error("Failed to create alert event",
				zap.String("event_id", alert.EventID),
				zap.String("alert_type", alert.AlertType),
				zap.Error(err),
			)
			// 继续处理其余告警
		}
	}

	if err := c.cacheManager.UpdateAlertCache(device.DeviceID, alerts); err != nil {
		c.logger.Error("Failed to update alert cache",
			zap.String("device_id", device.DeviceID),
			zap.Error(err),
		)
	}

	return nil
}
