// Package uplink 负责把手环读数发送到云端（MQTT 发布和可选的 HTTP 转发）。
// 上行失败只记录日志，绝不影响采样循环。
package uplink

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/band"
	"healio-monitor/internal/models"
)

// MessagePublisher 消息发布接口（internal/mqtt.Client 实现，测试中用假实现）
type MessagePublisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// Publisher 把每个 tick 的结果作为 BandReading 发布到 MQTT
type Publisher struct {
	client      MessagePublisher
	deviceID    string
	topicPrefix string
	qos         byte
	logger      *zap.Logger
}

// NewPublisher 创建上行发布器
func NewPublisher(client MessagePublisher, deviceID, topicPrefix string, qos byte, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:      client,
		deviceID:    deviceID,
		topicPrefix: topicPrefix,
		qos:         qos,
		logger:      logger,
	}
}

// Topic 返回该设备的数据主题
func (p *Publisher) Topic() string {
	return fmt.Sprintf("%s/%s/vitals", p.topicPrefix, p.deviceID)
}

// NewReading 把 tick 上下文转换为上行消息
// 时间戳用墙钟 Unix 毫秒：tc.NowMillis 是设备开机以来的单调毫秒，
// 只用于设备内部的生成间隔判断，不能当作采样时间入库
func NewReading(deviceID string, tc band.TickContext) models.BandReading {
	return models.BandReading{
		DeviceID:  deviceID,
		Timestamp: time.Now().UnixMilli(),
		Presence:  tc.Presence,
		BPM:       tc.Vital,
		Activity:  string(tc.Activity),
		ECG:       tc.ECG,
	}
}

// Publish 发布一个 tick 的读数，失败只记录日志
func (p *Publisher) Publish(tc band.TickContext) {
	reading := NewReading(p.deviceID, tc)

	payload, err := json.Marshal(reading)
	if err != nil {
		p.logger.Error("Failed to marshal band reading", zap.Error(err))
		return
	}

	if err := p.client.Publish(p.Topic(), p.qos, false, payload); err != nil {
		p.logger.Warn("Failed to publish band reading",
			zap.String("topic", p.Topic()),
			zap.Error(err),
		)
	}
}
