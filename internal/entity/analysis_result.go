package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisResult is one archived AI market analysis. The filterable fields are
// generated columns derived from analysis_data by the database, so they are
// read-only here.
type AnalysisResult struct {
	ID              string         `gorm:"primaryKey;type:uuid" json:"id"`
	Timestamp       time.Time      `gorm:"not null;index" json:"timestamp"`
	AnalysisData    datatypes.JSON `gorm:"type:jsonb;not null" json:"analysis_data" swaggertype:"object"`
	Symbol          *string        `gorm:"->" json:"-"`
	ConsensusSignal *string        `gorm:"->" json:"-"`
	CurrentTrend    *string        `gorm:"->" json:"-"`
	Recommendation  *string        `gorm:"->" json:"-"`
	Summary         *string        `gorm:"->" json:"-"`
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}
