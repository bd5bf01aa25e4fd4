// Package query builds and runs brand-scoped list and lookup statements,
// optionally folding one child relation into a JSON array per parent row.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnscoped is returned when a statement is rendered without a brand
// predicate.
var ErrUnscoped = errors.New("query: statement has no brand scope")

// Ident quotes a table name, or a table-qualified column when given two
// parts. "option" collides with a SQL keyword, so every identifier is quoted.
func Ident(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ".")
}

// Predicate is one WHERE fragment using ? bindvars.
type Predicate struct {
	SQL  string
	Args []any
}

// Eq is an exact match.
func Eq(column string, value any) Predicate {
	return Predicate{SQL: column + " = ?", Args: []any{value}}
}

// Contains is a case-insensitive substring match. LIKE wildcards in s are
// escaped so the caller's text is matched literally.
func Contains(column, s string) Predicate {
	return Predicate{SQL: column + " ILIKE ?", Args: []any{"%" + escapeLike(s) + "%"}}
}

// Exists wraps a correlated subquery.
func Exists(subquery string, args ...any) Predicate {
	return Predicate{SQL: "EXISTS (" + subquery + ")", Args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Join is a LEFT JOIN. A parent without children still yields one row, with
// the child columns NULL.
type Join struct {
	Table string
	On    string
}

// Aggregate folds one child relation into a JSON array of {id, <Key>}
// objects. Rows where the child id is NULL are join artifacts and are
// filtered out, so a parent with no children aggregates to [].
type Aggregate struct {
	Alias   string // output column
	Table   string // child table
	Key     string // JSON key of the display attribute
	Display string // child column carrying the display attribute
}

func (a Aggregate) sql() string {
	id := Ident(a.Table, "id")
	return fmt.Sprintf(
		"COALESCE(JSONB_AGG(JSONB_BUILD_OBJECT('id', %s, '%s', %s) ORDER BY %s) FILTER (WHERE %s IS NOT NULL), '[]'::JSONB) AS %s",
		id, a.Key, Ident(a.Table, a.Display), id, id, Ident(a.Alias),
	)
}

// Select describes one statement. Build it with From, then chain.
type Select struct {
	table     string
	columns   []string
	scope     *Predicate
	joins     []Join
	where     []Predicate
	aggregate *Aggregate
	orderBy   []string
	limit     int
}

// From starts a statement over table selecting the given columns of it.
func From(table string, columns ...string) *Select {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = Ident(table, c)
	}
	return &Select{table: table, columns: cols}
}

// Table returns the root table name.
func (s *Select) Table() string {
	return s.table
}

// Brand sets the tenant predicate. It is always rendered first.
func (s *Select) Brand(column, brandID string) *Select {
	p := Eq(Ident(s.table, column), brandID)
	s.scope = &p
	return s
}

func (s *Select) Where(p Predicate) *Select {
	s.where = append(s.where, p)
	return s
}

func (s *Select) LeftJoin(table, on string) *Select {
	s.joins = append(s.joins, Join{Table: table, On: on})
	return s
}

// Aggregate attaches a child relation. The statement is then grouped by
// every selected parent column so each parent appears once.
func (s *Select) Aggregate(a Aggregate) *Select {
	s.aggregate = &a
	return s
}

func (s *Select) OrderBy(columns ...string) *Select {
	s.orderBy = append(s.orderBy, columns...)
	return s
}

func (s *Select) Limit(n int) *Select {
	s.limit = n
	return s
}

// ToSQL renders the statement with ? bindvars.
func (s *Select) ToSQL() (string, []any, error) {
	if s.scope == nil {
		return "", nil, ErrUnscoped
	}

	var b strings.Builder
	var args []any

	cols := s.columns
	if s.aggregate != nil {
		cols = append(append([]string{}, s.columns...), s.aggregate.sql())
	}
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(" FROM ")
	b.WriteString(Ident(s.table))

	for _, j := range s.joins {
		b.WriteString(" LEFT JOIN ")
		b.WriteString(Ident(j.Table))
		b.WriteString(" ON ")
		b.WriteString(j.On)
	}

	conds := []string{s.scope.SQL}
	args = append(args, s.scope.Args...)
	for _, p := range s.where {
		conds = append(conds, p.SQL)
		args = append(args, p.Args...)
	}
	b.WriteString(" WHERE ")
	b.WriteString(strings.Join(conds, " AND "))

	if s.aggregate != nil && len(s.columns) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(s.columns, ", "))
	}

	if len(s.orderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(s.orderBy, ", "))
	}

	if s.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", s.limit)
	}

	return b.String(), args, nil
}

// On renders an equality join condition between two qualified columns.
func On(leftTable, leftColumn, rightTable, rightColumn string) string {
	return Ident(leftTable, leftColumn) + " = " + Ident(rightTable, rightColumn)
}

// Asc renders an ascending ORDER BY term.
func Asc(table, column string) string {
	return Ident(table, column) + " ASC"
}
