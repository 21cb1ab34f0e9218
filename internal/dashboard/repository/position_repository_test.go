package repository

import (
	"context"
	"testing"
	"time"

	"golang-trading-dashboard/internal/dashboard/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedFilter() query.Filter {
	return query.Filter{Predicates: []query.Predicate{
		query.ExactMatch{Field: query.FieldStatus, Value: "CLOSED"},
	}}
}

func TestPositionRepository_FindPage_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)
	for i := 0; i < 25; i++ {
		seedPosition(t, db, positionSeed{symbol: "BTCUSDT", createdAt: baseTime.Add(time.Duration(i) * time.Minute)})
	}

	tests := []struct {
		page     int
		wantRows int
	}{
		{1, 10},
		{2, 10},
		{3, 5},
		{4, 0},
	}
	for _, tt := range tests {
		positions, total, err := repo.FindPage(context.Background(), closedFilter(), query.NewPage(tt.page, 10, 10, 500))
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, positions, tt.wantRows, "page %d", tt.page)
		assert.NotNil(t, positions)
	}
}

func TestPositionRepository_FindPage_PagesPartitionTheSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)

	want := make(map[string]struct{})
	for i := 0; i < 13; i++ {
		// Several rows share a timestamp so the id tie-breaker matters.
		p := seedPosition(t, db, positionSeed{symbol: "ETHUSDT", createdAt: baseTime.Add(time.Duration(i/3) * time.Hour)})
		want[p.ID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var lastCreated time.Time
	for page := 1; page <= 5; page++ {
		positions, _, err := repo.FindPage(context.Background(), query.Filter{}, query.NewPage(page, 3, 10, 500))
		require.NoError(t, err)
		for _, p := range positions {
			_, dup := seen[p.ID]
			assert.False(t, dup, "position %s returned twice", p.ID)
			seen[p.ID] = struct{}{}
			if !lastCreated.IsZero() {
				assert.False(t, p.CreatedAt.After(lastCreated), "not newest first")
			}
			lastCreated = p.CreatedAt
		}
	}
	assert.Equal(t, want, seen)
}

func TestPositionRepository_FindPage_TieBreaksOnIDDescending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)
	a := seedPosition(t, db, positionSeed{symbol: "SOLUSDT"})
	b := seedPosition(t, db, positionSeed{symbol: "SOLUSDT"})

	positions, _, err := repo.FindPage(context.Background(), query.Filter{}, query.NewPage(1, 10, 10, 500))
	require.NoError(t, err)
	require.Len(t, positions, 2)

	first, second := a.ID, b.ID
	if first < second {
		first, second = second, first
	}
	assert.Equal(t, first, positions[0].ID)
	assert.Equal(t, second, positions[1].ID)
}

func TestPositionRepository_FindPage_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)
	seedPosition(t, db, positionSeed{symbol: "BTCUSDT", pnl: 50})
	seedPosition(t, db, positionSeed{symbol: "ETHUSDT", positionType: "SHORT", pnl: 50})
	seedPosition(t, db, positionSeed{symbol: "BTC%USD", pnl: -5})
	seedPosition(t, db, positionSeed{symbol: "BTCXUSD", pnl: 20})
	seedPosition(t, db, positionSeed{symbol: "BTC_EUR", pnl: 0})
	seedPosition(t, db, positionSeed{symbol: "BTCAEUR", status: "OPEN", pnl: 12})

	tests := []struct {
		name    string
		status  string
		raw     map[string]interface{}
		symbols []string
	}{
		{"case-insensitive substring", "CLOSED", map[string]interface{}{"symbol": "btc"}, []string{"BTC%USD", "BTCUSDT", "BTCXUSD", "BTC_EUR"}},
		{"percent is literal", "", map[string]interface{}{"symbol": "c%u"}, []string{"BTC%USD"}},
		{"underscore is literal", "", map[string]interface{}{"symbol": "c_e"}, []string{"BTC_EUR"}},
		{"exact pnl", "", map[string]interface{}{"minPnl": 50, "maxPnl": "50"}, []string{"BTCUSDT", "ETHUSDT"}},
		{"position type", "", map[string]interface{}{"position_type": "short"}, []string{"ETHUSDT"}},
		{"open", "OPEN", nil, []string{"BTCAEUR"}},
		{"negative bound", "CLOSED", map[string]interface{}{"maxPnl": 0}, []string{"BTC%USD", "BTC_EUR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := query.BuildPositionFilter(tt.status, tt.raw)
			positions, total, err := repo.FindPage(context.Background(), f, query.NewPage(1, 50, 10, 500))
			require.NoError(t, err)

			got := make([]string, 0, len(positions))
			for _, p := range positions {
				got = append(got, p.Symbol)
			}
			assert.ElementsMatch(t, tt.symbols, got)
			assert.Equal(t, int64(len(tt.symbols)), total)
		})
	}
}

func TestPositionRepository_DistinctValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)
	seedPosition(t, db, positionSeed{symbol: "ETHUSDT", positionType: "SHORT"})
	seedPosition(t, db, positionSeed{symbol: "BTCUSDT"})
	seedPosition(t, db, positionSeed{symbol: "BTCUSDT", status: "OPEN"})
	seedPosition(t, db, positionSeed{symbol: ""})

	values, err := repo.DistinctValues(context.Background(), query.FieldSymbol, query.FieldPositionType)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, values[query.FieldSymbol])
	assert.Equal(t, []string{"LONG", "SHORT"}, values[query.FieldPositionType])
}

func TestPositionRepository_DistinctValues_EmptyTable(t *testing.T) {
	repo := NewPositionRepository(newTestDB(t))

	values, err := repo.DistinctValues(context.Background(), query.FieldSymbol)
	require.NoError(t, err)
	assert.NotNil(t, values[query.FieldSymbol])
	assert.Empty(t, values[query.FieldSymbol])
}

func TestPositionRepository_DistinctValues_UnknownField(t *testing.T) {
	repo := NewPositionRepository(newTestDB(t))

	_, err := repo.DistinctValues(context.Background(), query.FieldSummary)
	assert.Error(t, err)
}

func TestPositionRepository_AggregatePnL(t *testing.T) {
	tests := []struct {
		name string
		pnls []float64
		want PnLAggregate
	}{
		{
			name: "mixed",
			pnls: []float64{150, -40, -10, 0, 300},
			want: PnLAggregate{Count: 5, MaxPnL: 300, MinPnL: -40, PositiveSum: 450, NegativeSum: -50, TotalPnL: 400},
		},
		{
			name: "empty",
			want: PnLAggregate{},
		},
		{
			name: "all profitable",
			pnls: []float64{10, 20},
			want: PnLAggregate{Count: 2, MaxPnL: 20, MinPnL: 10, PositiveSum: 30, TotalPnL: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			repo := NewPositionRepository(db)
			for _, pnl := range tt.pnls {
				seedPosition(t, db, positionSeed{symbol: "BTCUSDT", pnl: pnl})
			}
			// Open positions never count towards realized figures.
			seedPosition(t, db, positionSeed{symbol: "BTCUSDT", status: "OPEN", pnl: 999})

			agg, err := repo.AggregatePnL(context.Background(), closedFilter())
			require.NoError(t, err)
			assert.Equal(t, tt.want, *agg)
		})
	}
}

func TestPositionRepository_AggregatePnL_Open(t *testing.T) {
	db := newTestDB(t)
	repo := NewPositionRepository(db)
	seedPosition(t, db, positionSeed{symbol: "BTCUSDT", status: "OPEN", pnl: 12.5})
	seedPosition(t, db, positionSeed{symbol: "ETHUSDT", status: "OPEN", pnl: -2.5})
	seedPosition(t, db, positionSeed{symbol: "ETHUSDT", pnl: 100})

	agg, err := repo.AggregatePnL(context.Background(), query.BuildPositionFilter("OPEN", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.Count)
	assert.InDelta(t, 10.0, agg.TotalPnL, 1e-9)
}
