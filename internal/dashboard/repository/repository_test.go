package repository

import (
	"fmt"
	"testing"
	"time"

	"golang-trading-dashboard/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const analysisResultsDDL = `CREATE TABLE analysis_results (
	id TEXT PRIMARY KEY,
	timestamp DATETIME NOT NULL,
	analysis_data TEXT NOT NULL,
	symbol TEXT GENERATED ALWAYS AS (json_extract(analysis_data, '$.symbol')) VIRTUAL,
	consensus_signal TEXT GENERATED ALWAYS AS (json_extract(analysis_data, '$.consensus.signal')) VIRTUAL,
	current_trend TEXT GENERATED ALWAYS AS (json_extract(analysis_data, '$.ai_analysis.current_trend')) VIRTUAL,
	recommendation TEXT GENERATED ALWAYS AS (json_extract(analysis_data, '$.ai_analysis.recommendation')) VIRTUAL,
	summary TEXT GENERATED ALWAYS AS (json_extract(analysis_data, '$.ai_analysis.summary')) VIRTUAL
)`

var baseTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the dashboard schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Position{}, &entity.Account{}))
	require.NoError(t, db.Exec(analysisResultsDDL).Error)
	return db
}

type positionSeed struct {
	symbol       string
	positionType string
	status       string
	pnl          float64
	createdAt    time.Time
}

func seedPosition(t *testing.T, db *gorm.DB, s positionSeed) entity.Position {
	t.Helper()

	if s.positionType == "" {
		s.positionType = "LONG"
	}
	if s.status == "" {
		s.status = "CLOSED"
	}
	if s.createdAt.IsZero() {
		s.createdAt = baseTime
	}
	p := entity.Position{
		ID:           uuid.NewString(),
		Symbol:       s.symbol,
		PositionType: s.positionType,
		Status:       s.status,
		EntryPrice:   100,
		Quantity:     1,
		PnL:          s.pnl,
		EntryTime:    s.createdAt,
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.createdAt,
	}
	if s.status == "CLOSED" {
		exit := 100 + s.pnl
		p.ExitPrice = &exit
		p.ExitTime = &s.createdAt
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedAnalysis(t *testing.T, db *gorm.DB, ts time.Time, data string) entity.AnalysisResult {
	t.Helper()

	r := entity.AnalysisResult{
		ID:           uuid.NewString(),
		Timestamp:    ts,
		AnalysisData: datatypes.JSON(data),
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func analysisJSON(symbol, signal, trend, recommendation, summary string) string {
	return fmt.Sprintf(`{"symbol":%q,"resolution":"1h","days":30,"indicators":[],"strategies":[],`+
		`"consensus":{"signal":%q,"confidence":0.7},`+
		`"ai_analysis":{"recommendation":%q,"current_trend":%q,"summary":%q}}`,
		symbol, signal, recommendation, trend, summary)
}
