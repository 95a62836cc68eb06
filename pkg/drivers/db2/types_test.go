package db2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/drivers/db2"
)

func TestBaseType(t *testing.T) {
	tests := []struct {
		native string
		want   core.FieldType
	}{
		{"BIGINT", core.FieldTypeBigInteger},
		{"BOOLEAN", core.FieldTypeBoolean},
		{"CHAR", core.FieldTypeChar},
		{"CLOB", core.FieldTypeText},
		{"DATE", core.FieldTypeDate},
		{"DECFLOAT", core.FieldTypeDecimal},
		{"DECIMAL", core.FieldTypeDecimal},
		{"DOUBLE", core.FieldTypeFloat},
		{"INTEGER", core.FieldTypeInteger},
		{"SMALLINT", core.FieldTypeInteger},
		{"TIME", core.FieldTypeTime},
		{"TIMESTAMP", core.FieldTypeDateTime},
		{"VARCHAR", core.FieldTypeText},
		{"VARGRAPHIC", core.FieldTypeText},
		{"XML", core.FieldTypeText},

		// Binary and LOB types have no generic counterpart.
		{"BLOB", core.FieldTypeUnknown},
		{"ROWID", core.FieldTypeUnknown},

		// Unlisted native types resolve, they never error.
		{"GEOMETRY", core.FieldTypeUnknown},
		{"", core.FieldTypeUnknown},
	}
	d := db2.New()
	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			assert.Equal(t, tt.want, d.BaseType(tt.native))
		})
	}
}

func TestBaseTypeIsCaseInsensitive(t *testing.T) {
	d := db2.New()
	assert.Equal(t, core.FieldTypeText, d.BaseType("varchar"))
	assert.Equal(t, core.FieldTypeBigInteger, d.BaseType("  BigInt  "))
}
