// Package query holds the vendor-neutral query plan that the query engine
// assembles and dialect drivers adjust. A Plan is a value: driver
// modifications (row limiting in particular) return adjusted copies and
// never mutate the input.
package query

import (
	"strings"

	"github.com/querybridge/querybridge/pkg/expr"
)

// Table is a schema-qualified table reference.
type Table struct {
	Schema string
	Name   string
}

// SQL renders the quoted table reference.
func (t Table) SQL() string {
	var b strings.Builder
	if t.Schema != "" {
		writeQuoted(&b, t.Schema)
		b.WriteByte('.')
	}
	writeQuoted(&b, t.Name)
	return b.String()
}

func writeQuoted(b *strings.Builder, name string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(name, `"`, `""`))
	b.WriteByte('"')
}

// OrderItem is one ORDER BY entry.
type OrderItem struct {
	E    expr.Expr
	Desc bool
}

// Plan is a single-table SELECT in vendor-neutral form. Columns render as
// "*" when empty; Where entries are ANDed. RowLimit is a dialect-rendered
// clause fragment set by a driver's ApplyLimit; the plan itself knows
// nothing about any backend's limiting syntax.
type Plan struct {
	Columns  []expr.Expr
	From     Table
	Where    []expr.Expr
	OrderBy  []OrderItem
	RowLimit expr.Expr
}

// WithRowLimit returns a copy of the plan with the row-limiting clause set.
func (p Plan) WithRowLimit(clause expr.Expr) Plan {
	p.RowLimit = clause
	return p
}

// SQL renders the complete statement.
func (p Plan) SQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(p.Columns) == 0 {
		b.WriteByte('*')
	} else {
		for i, c := range p.Columns {
			if i > 0 {
				b.WriteString(", ")
			}
			c.WriteSQL(&b)
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(p.From.SQL())

	for i, w := range p.Where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		w.WriteSQL(&b)
	}

	for i, o := range p.OrderBy {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		o.E.WriteSQL(&b)
		if o.Desc {
			b.WriteString(" DESC")
		}
	}

	if p.RowLimit != nil {
		b.WriteByte(' ')
		p.RowLimit.WriteSQL(&b)
	}

	return b.String()
}
