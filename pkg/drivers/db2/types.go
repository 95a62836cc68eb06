package db2

import (
	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/driver"
)

// baseTypes maps Db2 native column types to their generic field types.
// LOB and binary types are mapped explicitly to Unknown so that adding a
// real mapping later is a one-line change.
var baseTypes = map[string]core.FieldType{
	"BIGINT":     core.FieldTypeBigInteger,
	"BINARY":     core.FieldTypeUnknown,
	"BLOB":       core.FieldTypeUnknown,
	"BOOLEAN":    core.FieldTypeBoolean,
	"CHAR":       core.FieldTypeChar,
	"CLOB":       core.FieldTypeText,
	"DATALINK":   core.FieldTypeUnknown,
	"DATE":       core.FieldTypeDate,
	"DBCLOB":     core.FieldTypeText,
	"DECFLOAT":   core.FieldTypeDecimal,
	"DECIMAL":    core.FieldTypeDecimal,
	"DOUBLE":     core.FieldTypeFloat,
	"FLOAT":      core.FieldTypeFloat,
	"GRAPHIC":    core.FieldTypeText,
	"INTEGER":    core.FieldTypeInteger,
	"NUMERIC":    core.FieldTypeDecimal,
	"REAL":       core.FieldTypeFloat,
	"ROWID":      core.FieldTypeUnknown,
	"SMALLINT":   core.FieldTypeInteger,
	"TIME":       core.FieldTypeTime,
	"TIMESTAMP":  core.FieldTypeDateTime,
	"VARCHAR":    core.FieldTypeText,
	"VARGRAPHIC": core.FieldTypeText,
	"XML":        core.FieldTypeText,
}

// BaseType resolves a native Db2 type name. Unrecognized names map to
// FieldTypeUnknown rather than failing; sync can always proceed.
func (*Driver) BaseType(native string) core.FieldType {
	return driver.MapNativeType(baseTypes, native)
}
