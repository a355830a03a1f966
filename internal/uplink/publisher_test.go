package uplink

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healio-monitor/internal/band"
	"healio-monitor/internal/models"
)

// fakeMQTT 记录发布的消息
type fakeMQTT struct {
	topics   []string
	payloads [][]byte
	qos      []byte
	err      error
}

func (f *fakeMQTT) Publish(topic string, qos byte, retained bool, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	f.qos = append(f.qos, qos)
	return nil
}

func TestPublisher_Topic(t *testing.T) {
	p := NewPublisher(&fakeMQTT{}, "band-01", "healio", 1, zap.NewNop())
	assert.Equal(t, "healio/band-01/vitals", p.Topic())
}

func TestPublisher_Publish(t *testing.T) {
	client := &fakeMQTT{}
	p := NewPublisher(client, "band-01", "healio", 1, zap.NewNop())

	tc := band.TickContext{
		NowMillis: 123456,
		Presence:  true,
		Activity:  band.ActivityResting,
		Vital:     72,
		ECG:       512,
	}
	p.Publish(tc)

	require.Len(t, client.payloads, 1)
	assert.Equal(t, "healio/band-01/vitals", client.topics[0])
	assert.Equal(t, byte(1), client.qos[0])

	var reading models.BandReading
	require.NoError(t, json.Unmarshal(client.payloads[0], &reading))
	assert.Equal(t, "band-01", reading.DeviceID)
	assert.True(t, reading.Presence)
	assert.Equal(t, 72, reading.BPM)
	assert.Equal(t, "Resting", reading.Activity)
	assert.Equal(t, 512, reading.ECG)
}

func TestNewReading_WallClockTimestamp(t *testing.T) {
	// 设备时钟是开机以来的单调毫秒（接近 0），消息时间戳必须是墙钟
	// Unix 毫秒，否则云端 time.UnixMilli 转换后入库时间落在 1970 年
	before := time.Now().UnixMilli()
	reading := NewReading("band-01", band.TickContext{NowMillis: 123456, Presence: true, Vital: 72})
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, reading.Timestamp, before)
	assert.LessOrEqual(t, reading.Timestamp, after)
	assert.WithinDuration(t, time.Now(), time.UnixMilli(reading.Timestamp), time.Minute)
}

func TestPublisher_PublishErrorDoesNotPanic(t *testing.T) {
	// 发布失败只记录日志，不影响调用方
	client := &fakeMQTT{err: errors.New("broker down")}
	p := NewPublisher(client, "band-01", "healio", 1, zap.NewNop())

	assert.NotPanics(t, func() {
		p.Publish(band.TickContext{Presence: true, Vital: 70})
	})
}
