package entity

import "time"

// Account is the singleton balance snapshot kept up to date by the trade
// execution system as positions close.
type Account struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CurrentBalance   float64   `gorm:"type:decimal(20,8)" json:"current_balance"`
	InitialBalance   float64   `gorm:"type:decimal(20,8)" json:"initial_balance"`
	Equity           float64   `gorm:"type:decimal(20,8)" json:"equity"`
	AvailableMargin  float64   `gorm:"type:decimal(20,8)" json:"available_margin"`
	TotalMarginUsed  float64   `gorm:"type:decimal(20,8)" json:"total_margin_used"`
	MaxLeverage      float64   `gorm:"type:decimal(10,2)" json:"max_leverage"`
	TotalProfit      float64   `gorm:"type:decimal(20,8)" json:"total_profit"`
	TotalTrades      int       `json:"total_trades"`
	WinRate          float64   `gorm:"type:decimal(5,2)" json:"win_rate"`
	DailyTradesCount int       `json:"daily_trades_count"`
	DailyTradesLimit int       `json:"daily_trades_limit"`
	BrokerTrading    float64   `gorm:"type:decimal(20,8)" json:"broker_trading"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// GrowthPercent returns (current - initial) / initial * 100, or 0 when the
// initial balance is not positive.
func (a Account) GrowthPercent() float64 {
	if a.InitialBalance <= 0 {
		return 0
	}
	return (a.CurrentBalance - a.InitialBalance) / a.InitialBalance * 100
}
