package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig MQTT配置
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Config 服务配置（band 和 ingest 共用一份配置结构）
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	// 手环端配置
	Band struct {
		DeviceID           string // 设备序列号，用于 MQTT 主题和消息体
		TickIntervalMillis int    // 每个采样周期结束后的固定延时（默认 100ms）

		Uplink struct {
			Enabled     bool
			TopicPrefix string // 数据主题前缀，实际主题为 <prefix>/<device_id>/vitals
		}

		// 可选：直接转发到上游 HTTP 接口（原云端 /api/vitals）
		Cloud struct {
			Enabled bool
			BaseURL string
		}

		// 模拟硬件参数（无真实硬件时使用）
		Sim struct {
			Seed          int64 // 随机种子，0 表示按时间播种
			WearSeconds   int   // 模拟佩戴持续时间
			RemoveSeconds int   // 模拟摘下持续时间
		}
	}

	// 云端接入服务配置
	Ingest struct {
		Topic string // 订阅主题，如 "healio/+/vitals"

		Cache struct {
			KeyPrefix      string // 如 "healio:device:"
			RealtimeSuffix string // 如 ":realtime"
			AlertSuffix    string // 如 ":alerts"
			RealtimeTTL    int    // 秒
			AlertTTL       int    // 秒
		}
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置（环境变量覆盖默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "healio")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "healio-monitor")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.QoS = 1

	// 手环端
	cfg.Band.DeviceID = getEnv("BAND_DEVICE_ID", "healio-band-01")
	cfg.Band.TickIntervalMillis = getEnvInt("BAND_TICK_INTERVAL_MS", 100)
	cfg.Band.Uplink.Enabled = getEnvBool("BAND_UPLINK_ENABLED", false)
	cfg.Band.Uplink.TopicPrefix = getEnv("BAND_UPLINK_TOPIC_PREFIX", "healio")
	cfg.Band.Cloud.Enabled = getEnvBool("BAND_CLOUD_ENABLED", false)
	cfg.Band.Cloud.BaseURL = getEnv("BAND_CLOUD_BASE_URL", "http://localhost:5000")
	cfg.Band.Sim.Seed = int64(getEnvInt("BAND_SIM_SEED", 0))
	cfg.Band.Sim.WearSeconds = getEnvInt("BAND_SIM_WEAR_SECONDS", 30)
	cfg.Band.Sim.RemoveSeconds = getEnvInt("BAND_SIM_REMOVE_SECONDS", 10)

	// 云端接入
	cfg.Ingest.Topic = getEnv("INGEST_TOPIC", "healio/+/vitals")
	cfg.Ingest.Cache.KeyPrefix = getEnv("INGEST_CACHE_KEY_PREFIX", "healio:device:")
	cfg.Ingest.Cache.RealtimeSuffix = getEnv("INGEST_CACHE_REALTIME_SUFFIX", ":realtime")
	cfg.Ingest.Cache.AlertSuffix = getEnv("INGEST_CACHE_ALERT_SUFFIX", ":alerts")
	cfg.Ingest.Cache.RealtimeTTL = getEnvInt("INGEST_CACHE_REALTIME_TTL", 60)
	cfg.Ingest.Cache.AlertTTL = getEnvInt("INGEST_CACHE_ALERT_TTL", 300)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
