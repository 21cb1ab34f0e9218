package repository

import (
	"fmt"
	"strings"

	"golang-trading-dashboard/internal/dashboard/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columnSet maps the filterable fields of one table to their column names.
type columnSet map[query.Field]string

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user text only ever matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (c columnSet) column(f query.Field) (string, error) {
	col, ok := c[f]
	if !ok {
		return "", fmt.Errorf("field %q is not filterable", f)
	}
	return col, nil
}

// applyFilter translates a normalized filter into WHERE clauses on tx.
// Every value is bound as a parameter; column names come from the columnSet.
func applyFilter(tx *gorm.DB, cols columnSet, f query.Filter) (*gorm.DB, error) {
	for _, p := range f.Predicates {
		switch pr := p.(type) {
		case query.SubstringMatch:
			if len(pr.Fields) == 0 {
				continue
			}
			pattern := "%" + escapeLike(strings.ToLower(pr.Term)) + "%"
			clauses := make([]string, 0, len(pr.Fields))
			args := make([]interface{}, 0, len(pr.Fields))
			for _, field := range pr.Fields {
				col, err := cols.column(field)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, tx.Statement.Quote(col)))
				args = append(args, pattern)
			}
			tx = tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
		case query.ExactMatch:
			col, err := cols.column(pr.Field)
			if err != nil {
				return nil, err
			}
			tx = tx.Where(tx.Statement.Quote(col)+" = ?", pr.Value)
		case query.NotEqualMatch:
			col, err := cols.column(pr.Field)
			if err != nil {
				return nil, err
			}
			tx = tx.Where(tx.Statement.Quote(col)+" <> ?", pr.Value)
		case query.RangeMatch:
			col, err := cols.column(pr.Field)
			if err != nil {
				return nil, err
			}
			if pr.Min != nil {
				tx = tx.Where(tx.Statement.Quote(col)+" >= ?", *pr.Min)
			}
			if pr.Max != nil {
				tx = tx.Where(tx.Statement.Quote(col)+" <= ?", *pr.Max)
			}
		case query.IdentityMatch:
			col, err := cols.column(query.FieldID)
			if err != nil {
				return nil, err
			}
			tx = tx.Where(tx.Statement.Quote(col)+" = ?", pr.ID)
		default:
			return nil, fmt.Errorf("unsupported predicate %T", p)
		}
	}
	return tx, nil
}

// newestFirst orders by col descending with id as the tie-breaker, which
// makes the order total.
func newestFirst(col string) clause.OrderBy {
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: col}, Desc: true},
		{Column: clause.Column{Name: "id"}, Desc: true},
	}}
}
