// export-vitals 从数据库导出某设备时间范围内的读数到 Excel 报表。
//
// 用法:
//
//	export-vitals -device healio-band-01 -from 2026-08-01T00:00:00Z -to 2026-08-02T00:00:00Z -out vitals.xlsx
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"healio-monitor/internal/config"
	"healio-monitor/internal/database"
	"healio-monitor/internal/logger"
	"healio-monitor/internal/report"
	"healio-monitor/internal/repository"
)

func main() {
	deviceID := flag.String("device", "", "device ID to export")
	fromStr := flag.String("from", "", "range start (RFC3339), default 24h ago")
	toStr := flag.String("to", "", "range end (RFC3339), default now")
	outPath := flag.String("out", "vitals.xlsx", "output .xlsx path")
	flag.Parse()

	if *deviceID == "" {
		log.Fatal("missing required flag: -device")
	}

	now := time.Now()
	from := now.Add(-24 * time.Hour)
	to := now
	var err error
	if *fromStr != "" {
		from, err = time.Parse(time.RFC3339, *fromStr)
		if err != nil {
			log.Fatalf("invalid -from: %v", err)
		}
	}
	if *toStr != "" {
		to, err = time.Parse(time.RFC3339, *toStr)
		if err != nil {
			log.Fatalf("invalid -to: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "export-vitals")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	vitalsRepo := repository.NewVitalsRepository(db, zapLogger)
	exporter := report.NewExporter(vitalsRepo, zapLogger)

	if err := exporter.ExportVitals(*deviceID, from, to, *outPath); err != nil {
		zapLogger.Fatal("Export failed", zap.Error(err))
	}
}
