package models

import (
	"time"
)

// SpeedTestResult is one speed-test observation for a line.
// Same append-only lifecycle as QuotaResult.
type SpeedTestResult struct {
	ID            int64     `gorm:"column:id;primaryKey" json:"id"`
	ProcessID     string    `gorm:"column:process_id;index" json:"process_id"`
	LineID        int64     `gorm:"column:line_id;index" json:"line_id"`
	Ping          float64   `gorm:"column:ping" json:"ping"`
	UploadSpeed   float64   `gorm:"column:upload_speed" json:"upload_speed"`
	DownloadSpeed float64   `gorm:"column:download_speed" json:"download_speed"`
	PublicIP      string    `gorm:"column:public_ip" json:"public_ip"`
	DateTime      time.Time `gorm:"column:date_time;index" json:"date_time"`
}

func (SpeedTestResult) TableName() string {
	return "speed_test_results"
}
