package uplink

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

// Forwarder 通过 HTTP 把读数直接转发到上游接口（云端 /api/vitals）
// 作为 MQTT 上行之外的可选通道
type Forwarder struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewForwarder 创建 HTTP 转发器
func NewForwarder(baseURL string, logger *zap.Logger) *Forwarder {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Forwarder{
		httpClient: client,
		logger:     logger,
	}
}

// Forward 转发一条读数
func (f *Forwarder) Forward(reading models.BandReading) error {
	resp, err := f.httpClient.R().
		SetBody(reading).
		Post("/api/vitals")
	if err != nil {
		return fmt.Errorf("failed to forward reading: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("upstream rejected reading: status %d", resp.StatusCode())
	}

	f.logger.Debug("Reading forwarded",
		zap.String("device_id", reading.DeviceID),
		zap.Int("status", resp.StatusCode()),
	)
	return nil
}
