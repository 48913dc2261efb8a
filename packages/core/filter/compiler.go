package filter

import "fmt"

// Translates predicates into native form of the storage backend,
// e.g. SQL expression or in-memory matcher.
type Compiler[T any] interface {
	Compare(p *Compare) (T, error)
	IsNull(p *IsNull) (T, error)
	Match(p *Match) (T, error)
	Set(p *Set) (T, error)
	Range(p *Range) (T, error)
	// Receives already compiled terms
	Any(terms []T) (T, error)
	// Receives already compiled terms
	All(terms []T) (T, error)
}

// Walks predicate tree bottom-up and compiles it via c.
func Compile[T any](p Predicate, c Compiler[T]) (T, error) {
	var zero T

	switch p := p.(type) {
	case *Compare:
		return c.Compare(p)
	case *IsNull:
		return c.IsNull(p)
	case *Match:
		return c.Match(p)
	case *Set:
		return c.Set(p)
	case *Range:
		return c.Range(p)
	case *Any:
		terms, err := compileTerms(p.Terms, c)
		if err != nil {
			return zero, err
		}
		return c.Any(terms)
	case *All:
		terms, err := compileTerms(p.Terms, c)
		if err != nil {
			return zero, err
		}
		return c.All(terms)
	}

	return zero, fmt.Errorf("unknown predicate type: %T", p)
}

func compileTerms[T any](terms []Predicate, c Compiler[T]) ([]T, error) {
	r := make([]T, 0, len(terms))
	for _, term := range terms {
		compiled, err := Compile(term, c)
		if err != nil {
			return nil, err
		}
		r = append(r, compiled)
	}
	return r, nil
}
