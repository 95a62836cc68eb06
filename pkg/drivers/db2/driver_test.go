package db2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/querybridge/querybridge/pkg/drivers/db2"
	"github.com/querybridge/querybridge/pkg/expr"
	"github.com/querybridge/querybridge/pkg/query"
)

func TestDriverIdentity(t *testing.T) {
	d := db2.New()
	assert.Equal(t, "IBM Db2", d.Name())
	assert.Equal(t, db2.DialectKey, d.Key())
}

func TestApplyLimitUsesFetchFirst(t *testing.T) {
	d := db2.New()
	plan := query.Plan{From: query.Table{Schema: "SALES", Name: "ORDERS"}}

	limited := d.ApplyLimit(plan, 10)

	sql := limited.SQL()
	assert.Equal(t, `SELECT * FROM "SALES"."ORDERS" FETCH FIRST 10 ROWS ONLY`, sql)
	assert.NotContains(t, sql, "LIMIT")
	assert.Nil(t, plan.RowLimit, "input plan must not be mutated")
}

func TestApplyLimitReplacesExistingClause(t *testing.T) {
	d := db2.New()
	plan := query.Plan{From: query.Table{Name: "ORDERS"}}

	limited := d.ApplyLimit(d.ApplyLimit(plan, 100), 10)

	assert.Equal(t, `SELECT * FROM "ORDERS" FETCH FIRST 10 ROWS ONLY`, limited.SQL())
}

func TestExcludedSchemas(t *testing.T) {
	d := db2.New()
	schemas := d.ExcludedSchemas()

	for _, s := range []string{"SYSCAT", "SYSIBM", "SYSTOOLS", "SQLJ", "SPM"} {
		assert.Contains(t, schemas, s)
	}
	assert.NotContains(t, schemas, "SALES")

	// Callers get their own copy.
	delete(schemas, "SYSCAT")
	assert.Contains(t, d.ExcludedSchemas(), "SYSCAT")
}

func TestDialectFunctions(t *testing.T) {
	d := db2.New()
	assert.Equal(t, "STDDEV", d.StdDevFn())
	assert.Equal(t, "LENGTH", d.StringLengthFn())
	assert.Equal(t, "CURRENT TIMESTAMP", expr.SQL(d.CurrentDatetimeExpr()))
}
