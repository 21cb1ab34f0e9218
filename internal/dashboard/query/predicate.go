package query

// Field names a filterable column. Fields are only ever produced from the
// constants below, never from client input.
type Field string

const (
	FieldID             Field = "id"
	FieldSymbol         Field = "symbol"
	FieldPositionType   Field = "position_type"
	FieldStatus         Field = "status"
	FieldPnL            Field = "pnl"
	FieldCreatedAt      Field = "created_at"
	FieldTimestamp      Field = "timestamp"
	FieldSignal         Field = "consensus_signal"
	FieldTrend          Field = "current_trend"
	FieldRecommendation Field = "recommendation"
	FieldSummary        Field = "summary"
)

// Predicate is one normalized constraint. The concrete types form a closed set.
type Predicate interface {
	predicate()
}

// SubstringMatch is a case-insensitive substring match of Term against any of
// Fields (OR). Term is the raw user text; escaping happens at the storage edge.
type SubstringMatch struct {
	Fields []Field
	Term   string
}

// ExactMatch requires Field to equal Value.
type ExactMatch struct {
	Field Field
	Value string
}

// NotEqualMatch requires Field to differ from Value.
type NotEqualMatch struct {
	Field Field
	Value string
}

// RangeMatch bounds a numeric Field inclusively. A nil bound is open.
type RangeMatch struct {
	Field Field
	Min   *float64
	Max   *float64
}

// IdentityMatch selects the single record with the given id.
type IdentityMatch struct {
	ID string
}

func (SubstringMatch) predicate() {}
func (ExactMatch) predicate()     {}
func (NotEqualMatch) predicate()  {}
func (RangeMatch) predicate()     {}
func (IdentityMatch) predicate()  {}

// Filter is a conjunction of predicates.
type Filter struct {
	Predicates []Predicate
	// Ignored lists the request keys that were not recognized.
	Ignored []string
}

// IsEmpty reports whether the filter places no constraint at all.
func (f Filter) IsEmpty() bool {
	return len(f.Predicates) == 0
}
