package models

// Line is a monitored network line. Rows are created by the ingestion
// pipeline and never touched by this server.
type Line struct {
	ID         int64  `gorm:"column:id;primaryKey" json:"id"`
	LineNumber string `gorm:"column:line_number;uniqueIndex" json:"line_number"`
	Name       string `gorm:"column:name;uniqueIndex" json:"name"`
}

func (Line) TableName() string {
	return "lines"
}
