package query

import (
	"strconv"
	"strings"
)

// Builder accumulates optional predicates as (fragment, bound args) pairs.
// Fragments use '?' placeholders and are joined with AND; raw values never
// appear inline in the generated SQL text.
type Builder struct {
	conds []string
	args  []interface{}

	// timeConstrained records whether any predicate narrows the time range,
	// which flips the composer's ordering policy.
	timeConstrained bool
}

// Where appends one predicate fragment with its bound arguments.
func (b *Builder) Where(cond string, args ...interface{}) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

// WhereTime appends a predicate that constrains the time range.
func (b *Builder) WhereTime(cond string, args ...interface{}) {
	b.timeConstrained = true
	b.Where(cond, args...)
}

// Empty reports whether no predicate was added.
func (b *Builder) Empty() bool {
	return len(b.conds) == 0
}

// TimeConstrained reports whether any time-range predicate was added.
func (b *Builder) TimeConstrained() bool {
	return b.timeConstrained
}

// Clause renders the WHERE clause (with leading space) and its arguments.
// Returns "" and no args when no predicate was added.
func (b *Builder) Clause() (string, []interface{}) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// Rebind renumbers '?' placeholders into PostgreSQL '$n' ordinals. The
// shipments schema carries no string literals containing '?', so a plain
// scan is sufficient.
func Rebind(sql string) string {
	var out strings.Builder
	out.Grow(len(sql) + 8)
	n := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' {
			n++
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(n))
			continue
		}
		out.WriteByte(sql[i])
	}
	return out.String()
}
