package models

import (
	"time"
)

// QuotaResult is one data-quota observation for a line. Append-only:
// a row is never updated once the ingestion run that produced it commits.
type QuotaResult struct {
	ID              int64     `gorm:"column:id;primaryKey" json:"id"`
	ProcessID       string    `gorm:"column:process_id;index" json:"process_id"`
	LineID          int64     `gorm:"column:line_id;index" json:"line_id"`
	DataUsed        float64   `gorm:"column:data_used" json:"data_used"`
	UsagePercentage float64   `gorm:"column:usage_percentage" json:"usage_percentage"`
	DataRemaining   float64   `gorm:"column:data_remaining" json:"data_remaining"`
	Balance         float64   `gorm:"column:balance" json:"balance"`
	RenewalDate     string    `gorm:"column:renewal_date" json:"renewal_date"`
	RemainingDays   int       `gorm:"column:remaining_days" json:"remaining_days"`
	RenewalCost     float64   `gorm:"column:renewal_cost;index" json:"renewal_cost"`
	DateTime        time.Time `gorm:"column:date_time;index" json:"date_time"`
}

func (QuotaResult) TableName() string {
	return "quota_results"
}
