package memory

import (
	"fmt"
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"strings"
)

type matcher[E any] func(entity *E) bool

// Compiles predicates into matchers over entities of the catalog.
//
// Null handling follows SQL with C#-like inequality:
// null never satisfies comparison, set, range or match,
// but it does satisfy "neq", since null isn't equal to any value.
type compiler[E any] struct {
	catalog *catalog.Catalog[E]
}

func (c compiler[E]) getter(column catalog.Descriptor) (func(*E) any, error) {
	col, ok := c.catalog.Lookup(column.Name)
	if !ok {
		return nil, fmt.Errorf("column %s isn't in catalog", column.Name)
	}
	return col.Get, nil
}

func (c compiler[E]) Compare(p *filter.Compare) (matcher[E], error) {
	get, err := c.getter(p.Column)
	if err != nil {
		return nil, err
	}

	var test func(r int) bool

	switch p.Op {
	case filter.Eq:
		test = func(r int) bool { return r == 0 }
	case filter.Neq:
		test = func(r int) bool { return r != 0 }
	case filter.Gt:
		test = func(r int) bool { return r > 0 }
	case filter.Lt:
		test = func(r int) bool { return r < 0 }
	case filter.Gte:
		test = func(r int) bool { return r >= 0 }
	case filter.Lte:
		test = func(r int) bool { return r <= 0 }
	default:
		return nil, fmt.Errorf("unsupported comparison operator: %s", p.Op)
	}

	return func(entity *E) bool {
		v := get(entity)
		if v == nil {
			return p.Op == filter.Neq
		}
		r, ok := compareValues(v, p.Value)
		return ok && test(r)
	}, nil
}

func (c compiler[E]) IsNull(p *filter.IsNull) (matcher[E], error) {
	get, err := c.getter(p.Column)
	if err != nil {
		return nil, err
	}

	return func(entity *E) bool {
		return (get(entity) == nil) != p.Negated
	}, nil
}

func (c compiler[E]) Match(p *filter.Match) (matcher[E], error) {
	get, err := c.getter(p.Column)
	if err != nil {
		return nil, err
	}

	var test func(s string, substr string) bool

	switch p.Mode {
	case filter.MatchContains:
		test = strings.Contains
	case filter.MatchPrefix:
		test = strings.HasPrefix
	case filter.MatchSuffix:
		test = strings.HasSuffix
	default:
		return nil, fmt.Errorf("unsupported match mode: %d", p.Mode)
	}

	return func(entity *E) bool {
		s, ok := get(entity).(string)
		return ok && test(s, p.Text)
	}, nil
}

func (c compiler[E]) Set(p *filter.Set) (matcher[E], error) {
	get, err := c.getter(p.Column)
	if err != nil {
		return nil, err
	}

	return func(entity *E) bool {
		v := get(entity)
		if v == nil {
			return false
		}
		for _, value := range p.Values {
			if r, ok := compareValues(v, value); ok && r == 0 {
				return true
			}
		}
		return false
	}, nil
}

func (c compiler[E]) Range(p *filter.Range) (matcher[E], error) {
	get, err := c.getter(p.Column)
	if err != nil {
		return nil, err
	}

	return func(entity *E) bool {
		v := get(entity)
		if v == nil {
			return false
		}
		lower, ok := compareValues(v, p.Lower)
		if !ok || lower < 0 {
			return false
		}
		upper, ok := compareValues(v, p.Upper)
		return ok && upper <= 0
	}, nil
}

func (compiler[E]) Any(terms []matcher[E]) (matcher[E], error) {
	return func(entity *E) bool {
		for _, term := range terms {
			if term(entity) {
				return true
			}
		}
		return false
	}, nil
}

func (compiler[E]) All(terms []matcher[E]) (matcher[E], error) {
	return func(entity *E) bool {
		for _, term := range terms {
			if !term(entity) {
				return false
			}
		}
		return true
	}, nil
}

// Compiles predicate into function which reports whether entity satisfies it.
// nil predicate is satisfied by any entity.
func Matcher[E any](cat *catalog.Catalog[E], p filter.Predicate) (func(entity *E) bool, error) {
	if p == nil {
		return func(*E) bool { return true }, nil
	}

	m, err := filter.Compile[matcher[E]](p, compiler[E]{catalog: cat})
	if err != nil {
		return nil, err
	}

	return m, nil
}
