// Package catalog describes filterable and sortable properties of an entity.
//
// Catalog is built once per entity type from an explicit column table
// and is immutable afterwards, so it may be shared between goroutines.
package catalog

import (
	"errors"
	"strconv"
	"strings"
)

type Kind uint8

const (
	String Kind = iota + 1
	Bool
	Int32
	Int64
	Decimal
	Time
)

var kindToStrMap = map[Kind]string{
	String:  "string",
	Bool:    "bool",
	Int32:   "int32",
	Int64:   "int64",
	Decimal: "decimal",
	Time:    "time",
}

func (k Kind) String() string {
	if s, ok := kindToStrMap[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsValid() bool {
	_, ok := kindToStrMap[k]
	return ok
}

// Storage independent part of the column.
type Descriptor struct {
	// Canonical name of the property
	Name     string
	Kind     Kind
	Nullable bool
	// Name of the column in the storage (e.g. SQL table column)
	Storage string
}

type Column[E any] struct {
	Descriptor
	// Returns nil if value is null, otherwise value of the Go type which corresponds to Kind:
	// string, bool, int32, int64, decimal.Decimal or time.Time.
	Get func(entity *E) any
}

type Catalog[E any] struct {
	columns []*Column[E]
	index   map[string]*Column[E]
	names   []string
}

func key(name string) string {
	return strings.ToLower(name)
}

// Creates a new catalog from the given columns. Order of columns is preserved.
//
// Returns error if any column has empty name, invalid kind or no getter,
// or if two columns has the same name (case insensitive).
func New[E any](columns ...Column[E]) (*Catalog[E], error) {
	c := &Catalog[E]{
		columns: make([]*Column[E], 0, len(columns)),
		index:   make(map[string]*Column[E], len(columns)),
		names:   make([]string, 0, len(columns)),
	}

	for i := range columns {
		col := columns[i]

		if strings.TrimSpace(col.Name) == "" {
			return nil, errors.New("column #" + strconv.Itoa(i) + " has empty name")
		}
		if !col.Kind.IsValid() {
			return nil, errors.New("column " + col.Name + " has invalid kind: " + col.Kind.String())
		}
		if col.Get == nil {
			return nil, errors.New("column " + col.Name + " has no getter")
		}
		if _, exists := c.index[key(col.Name)]; exists {
			return nil, errors.New("duplicate column: " + col.Name)
		}
		if col.Storage == "" {
			col.Storage = col.Name
		}

		c.columns = append(c.columns, &col)
		c.index[key(col.Name)] = &col
		c.names = append(c.names, col.Name)
	}

	return c, nil
}

// Same as New, but panics on error.
func MustNew[E any](columns ...Column[E]) *Catalog[E] {
	c, err := New(columns...)
	if err != nil {
		panic("invalid catalog: " + err.Error())
	}
	return c
}

// Resolves column by exact, case insensitive, match of its name.
func (c *Catalog[E]) Lookup(token string) (*Column[E], bool) {
	col, ok := c.index[key(token)]
	return col, ok
}

// Returns canonical names of all columns in declaration order.
func (c *Catalog[E]) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Returns all columns in declaration order.
func (c *Catalog[E]) Columns() []*Column[E] {
	columns := make([]*Column[E], len(c.columns))
	copy(columns, c.columns)
	return columns
}

func (c *Catalog[E]) Len() int {
	return len(c.columns)
}
