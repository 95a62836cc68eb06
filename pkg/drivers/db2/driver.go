// Package db2 implements the IBM Db2 dialect driver.
//
// Db2 diverges from the ANSI defaults in querybridge/pkg/driver in a few
// well-known ways: row limiting uses FETCH FIRST instead of LIMIT, date
// truncation goes through TRUNC_TIMESTAMP with vendor format strings, and
// date arithmetic uses labeled durations (7 DAYS, 3 MONTHS) rather than
// INTERVAL literals.
package db2

import (
	"strconv"

	"github.com/querybridge/querybridge/pkg/driver"
	"github.com/querybridge/querybridge/pkg/expr"
	"github.com/querybridge/querybridge/pkg/query"
)

// DialectKey is the registry key for this driver.
const DialectKey driver.Key = "db2"

// Driver is the Db2 dialect implementation. It embeds the ANSI base and
// overrides everything the base gets wrong for Db2. The zero value is
// usable; New exists for symmetry with the other driver packages.
type Driver struct {
	driver.BaseSQL
}

var _ driver.Driver = (*Driver)(nil)

func New() *Driver {
	return &Driver{}
}

func (*Driver) Name() string {
	return "IBM Db2"
}

func (*Driver) Key() driver.Key {
	return DialectKey
}

// ApplyLimit rewrites the plan's row limit as a FETCH FIRST clause.
// Db2 has no LIMIT keyword.
func (*Driver) ApplyLimit(p query.Plan, limit int) query.Plan {
	return p.WithRowLimit(expr.Raw("FETCH FIRST " + strconv.Itoa(limit) + " ROWS ONLY"))
}

// System schemas that never hold user tables.
var excludedSchemas = map[string]struct{}{
	"SQLJ":           {},
	"SYSCAT":         {},
	"SYSFUN":         {},
	"SYSIBM":         {},
	"SYSIBMADM":      {},
	"SYSIBMINTERNAL": {},
	"SYSIBMTS":       {},
	"SPM":            {},
	"SYSPROC":        {},
	"SYSPUBLIC":      {},
	"SYSSTAT":        {},
	"SYSTOOLS":       {},
}

func (*Driver) ExcludedSchemas() map[string]struct{} {
	out := make(map[string]struct{}, len(excludedSchemas))
	for s := range excludedSchemas {
		out[s] = struct{}{}
	}
	return out
}

func (*Driver) StdDevFn() string {
	return "STDDEV"
}

func (*Driver) StringLengthFn() string {
	return "LENGTH"
}

// CurrentDatetimeExpr returns Db2's special register. Note the space: the
// register is spelled CURRENT TIMESTAMP, not CURRENT_TIMESTAMP.
func (*Driver) CurrentDatetimeExpr() expr.Expr {
	return expr.Raw("CURRENT TIMESTAMP")
}
