package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

// VitalsSource 读数查询接口（repository.VitalsRepository 实现）
type VitalsSource interface {
	ListByDevice(deviceID string, from, to time.Time) ([]models.VitalRecord, error)
}

// vitalsExportHeader 导出表头
var vitalsExportHeader = []string{
	"Recorded At",
	"Device ID",
	"Patient ID",
	"Heart Rate",
	"Activity",
	"ECG",
	"Presence",
}

// Exporter 生命体征报告导出器（Excel 格式）
type Exporter struct {
	source VitalsSource
	logger *zap.Logger
}

// NewExporter 创建导出器
func NewExporter(source VitalsSource, logger *zap.Logger) *Exporter {
	return &Exporter{
		source: source,
		logger: logger,
	}
}

// ExportVitals 导出某设备指定时间范围的读数到 .xlsx 文件
func (e *Exporter) ExportVitals(deviceID string, from, to time.Time, path string) error {
	records, err := e.source.ListByDevice(deviceID, from, to)
	if err != nil {
		return fmt.Errorf("failed to load vitals: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Vitals"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	// 删除默认的 Sheet1
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// 表头加粗
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range vitalsExportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	// 数据行
	for rowIdx, rec := range records {
		values := []any{
			rec.RecordedAt.Format(time.RFC3339),
			rec.DeviceID,
			rec.PatientID,
			rec.HeartRate,
			rec.Activity,
			rec.ECG,
			rec.Presence,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to set data cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	e.logger.Info("Vitals report exported",
		zap.String("device_id", deviceID),
		zap.Int("record_count", len(records)),
		zap.String("path", path),
	)

	return nil
}
