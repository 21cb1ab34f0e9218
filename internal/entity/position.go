package entity

import "time"

// Position is one trade record of the ledger. Rows are written by the trade
// execution system; this service only reads them.
type Position struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	Symbol         string     `gorm:"not null;index" json:"symbol"`
	PositionType   string     `gorm:"column:position_type;not null" json:"position_type"`
	Status         string     `gorm:"not null;index" json:"status"`
	EntryPrice     float64    `gorm:"type:decimal(20,8);not null" json:"entry_price"`
	ExitPrice      *float64   `gorm:"type:decimal(20,8)" json:"exit_price,omitempty"`
	Quantity       float64    `gorm:"type:decimal(20,8);not null" json:"quantity"`
	InvestedAmount *float64   `gorm:"type:decimal(20,8)" json:"invested_amount,omitempty"`
	Leverage       *float64   `gorm:"type:decimal(10,2)" json:"leverage,omitempty"`
	MarginUsed     *float64   `gorm:"type:decimal(20,8)" json:"margin_used,omitempty"`
	StopLoss       *float64   `gorm:"type:decimal(20,8)" json:"stop_loss,omitempty"`
	Target         *float64   `gorm:"type:decimal(20,8)" json:"target,omitempty"`
	TrailingStop   *float64   `gorm:"type:decimal(20,8)" json:"trailing_stop,omitempty"`
	PnL            float64    `gorm:"column:pnl;type:decimal(20,8);not null;default:0" json:"pnl"`
	EntryTime      time.Time  `gorm:"not null" json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	HoldingTime    string     `json:"holding_time"`
	StrategyName   string     `json:"strategy_name"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Position) TableName() string {
	return "positions"
}
