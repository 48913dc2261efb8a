package query

import (
	"fmt"
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Compiles predicates into squirrel conditions.
//
// Null semantics are aligned with the in-memory source:
// "neq" matches NULL, all other conditions never match NULL.
// In SQL comparisons with NULL are already unknown, so only "neq" needs special handling.
type compiler struct{}

var _ filter.Compiler[sq.Sqlizer] = compiler{}

func identifier(column catalog.Descriptor) string {
	return pgx.Identifier{column.Storage}.Sanitize()
}

func (compiler) Compare(p *filter.Compare) (sq.Sqlizer, error) {
	col := identifier(p.Column)

	switch p.Op {
	case filter.Eq:
		return sq.Eq{col: p.Value}, nil
	case filter.Neq:
		if p.Column.Nullable {
			return sq.Or{sq.NotEq{col: p.Value}, sq.Eq{col: nil}}, nil
		}
		return sq.NotEq{col: p.Value}, nil
	case filter.Gt:
		return sq.Gt{col: p.Value}, nil
	case filter.Lt:
		return sq.Lt{col: p.Value}, nil
	case filter.Gte:
		return sq.GtOrEq{col: p.Value}, nil
	case filter.Lte:
		return sq.LtOrEq{col: p.Value}, nil
	}

	return nil, fmt.Errorf("operator '%s' can't be used for comparison", p.Op)
}

func (compiler) IsNull(p *filter.IsNull) (sq.Sqlizer, error) {
	col := identifier(p.Column)
	if p.Negated {
		return sq.NotEq{col: nil}, nil
	}
	return sq.Eq{col: nil}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (compiler) Match(p *filter.Match) (sq.Sqlizer, error) {
	text := likeEscaper.Replace(p.Text)

	var pattern string
	switch p.Mode {
	case filter.MatchContains:
		pattern = "%" + text + "%"
	case filter.MatchPrefix:
		pattern = text + "%"
	case filter.MatchSuffix:
		pattern = "%" + text
	default:
		return nil, fmt.Errorf("unknown match mode: %d", p.Mode)
	}

	return sq.Like{identifier(p.Column): pattern}, nil
}

func (compiler) Set(p *filter.Set) (sq.Sqlizer, error) {
	return sq.Eq{identifier(p.Column): p.Values}, nil
}

func (compiler) Range(p *filter.Range) (sq.Sqlizer, error) {
	return sq.Expr(identifier(p.Column)+" BETWEEN ? AND ?", p.Lower, p.Upper), nil
}

func (compiler) Any(terms []sq.Sqlizer) (sq.Sqlizer, error) {
	return sq.Or(terms), nil
}

func (compiler) All(terms []sq.Sqlizer) (sq.Sqlizer, error) {
	return sq.And(terms), nil
}

// Compiles p into SQL condition. Returns nil if p is nil.
func Where(p filter.Predicate) (sq.Sqlizer, error) {
	if p == nil {
		return nil, nil
	}
	return filter.Compile[sq.Sqlizer](p, compiler{})
}
