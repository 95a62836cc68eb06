package core

// FieldType is the vendor-neutral semantic type assigned to a result column
// for downstream processing. Backend-native type names are mapped into this
// closed set by each driver's type mapper; anything a backend reports that
// the mapper does not recognize resolves to FieldTypeUnknown, never to an
// error.
type FieldType int

const (
	// FieldTypeUnknown is the mapping for native types outside the
	// backend's known-types table. It is the zero value on purpose:
	// a missed table lookup yields it without special-casing.
	FieldTypeUnknown FieldType = iota
	FieldTypeBigInteger
	FieldTypeBoolean
	FieldTypeChar
	FieldTypeDate
	FieldTypeDateTime
	FieldTypeDecimal
	FieldTypeFloat
	FieldTypeInteger
	FieldTypeText
	FieldTypeTime
)

// String returns the string representation of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldTypeBigInteger:
		return "biginteger"
	case FieldTypeBoolean:
		return "boolean"
	case FieldTypeChar:
		return "char"
	case FieldTypeDate:
		return "date"
	case FieldTypeDateTime:
		return "datetime"
	case FieldTypeDecimal:
		return "decimal"
	case FieldTypeFloat:
		return "float"
	case FieldTypeInteger:
		return "integer"
	case FieldTypeText:
		return "text"
	case FieldTypeTime:
		return "time"
	default:
		return "unknown"
	}
}
