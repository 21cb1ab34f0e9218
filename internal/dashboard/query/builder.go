package query

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang-trading-dashboard/pkg/common"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Recognized filter request keys.
const (
	KeySymbol         = "symbol"
	KeyPositionType   = "position_type"
	KeySignal         = "signal"
	KeyTrend          = "trend"
	KeyRecommendation = "recommendation"
	KeyMinPnl         = "minPnl"
	KeyMaxPnl         = "maxPnl"
)

var positionKeys = map[string]struct{}{
	KeySymbol:       {},
	KeyPositionType: {},
	KeyMinPnl:       {},
	KeyMaxPnl:       {},
}

var analysisKeys = map[string]struct{}{
	KeySymbol:         {},
	KeySignal:         {},
	KeyTrend:          {},
	KeyRecommendation: {},
}

// BuildPositionFilter normalizes a positions request. status selects OPEN
// (anything not CLOSED), CLOSED, or no status constraint for any other value.
func BuildPositionFilter(status string, raw map[string]interface{}) Filter {
	var f Filter

	switch strings.ToUpper(strings.TrimSpace(status)) {
	case common.PositionStatusOpen:
		f.Predicates = append(f.Predicates, NotEqualMatch{Field: FieldStatus, Value: common.PositionStatusClosed})
	case common.PositionStatusClosed:
		f.Predicates = append(f.Predicates, ExactMatch{Field: FieldStatus, Value: common.PositionStatusClosed})
	}

	if term, ok := stringValue(raw[KeySymbol]); ok {
		f.Predicates = append(f.Predicates, SubstringMatch{Fields: []Field{FieldSymbol}, Term: term})
	}

	if v, ok := stringValue(raw[KeyPositionType]); ok {
		switch pt := strings.ToUpper(v); pt {
		case common.PositionTypeLong, common.PositionTypeShort:
			f.Predicates = append(f.Predicates, ExactMatch{Field: FieldPositionType, Value: pt})
		}
	}

	minPnl, hasMin := numberValue(raw[KeyMinPnl])
	maxPnl, hasMax := numberValue(raw[KeyMaxPnl])
	if hasMin || hasMax {
		r := RangeMatch{Field: FieldPnL}
		if hasMin {
			r.Min = &minPnl
		}
		if hasMax {
			r.Max = &maxPnl
		}
		f.Predicates = append(f.Predicates, r)
	}

	f.Ignored = unknownKeys(raw, positionKeys)
	return f
}

// BuildAnalysisFilter normalizes an analysis request. A search term that
// parses as a record id becomes an identity lookup and replaces every other
// predicate; any other non-blank term is matched against symbol and summary.
func BuildAnalysisFilter(searchTerm string, raw map[string]interface{}) Filter {
	var f Filter
	f.Ignored = unknownKeys(raw, analysisKeys)

	term := strings.TrimSpace(searchTerm)
	if id, err := uuid.Parse(term); err == nil {
		f.Predicates = []Predicate{IdentityMatch{ID: id.String()}}
		return f
	}
	if term != "" {
		f.Predicates = append(f.Predicates, SubstringMatch{Fields: []Field{FieldSymbol, FieldSummary}, Term: term})
	}

	if v, ok := stringValue(raw[KeySymbol]); ok {
		f.Predicates = append(f.Predicates, SubstringMatch{Fields: []Field{FieldSymbol}, Term: v})
	}
	if v, ok := stringValue(raw[KeySignal]); ok {
		f.Predicates = append(f.Predicates, ExactMatch{Field: FieldSignal, Value: v})
	}
	if v, ok := stringValue(raw[KeyTrend]); ok {
		f.Predicates = append(f.Predicates, ExactMatch{Field: FieldTrend, Value: v})
	}
	if v, ok := stringValue(raw[KeyRecommendation]); ok {
		f.Predicates = append(f.Predicates, ExactMatch{Field: FieldRecommendation, Value: v})
	}
	return f
}

// stringValue accepts strings and JSON numbers. Blank strings and every other
// type count as absent.
func stringValue(v interface{}) (string, bool) {
	switch v.(type) {
	case string, json.Number, float64, float32, int, int32, int64:
	default:
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// numberValue parses a bound. Anything that is not a finite number counts as absent.
func numberValue(v interface{}) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		f, err = t.Float64()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func unknownKeys(raw map[string]interface{}, known map[string]struct{}) []string {
	var out []string
	for k := range raw {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
