package core

// ConnectionSpec is the fully-resolved parameter set a connector needs to
// open a connection to a specific backend instance. It is built from raw
// user-supplied details by a driver's SpecFromDetails and is constructed
// per connection attempt; this layer never caches it.
type ConnectionSpec struct {
	// Subprotocol identifies the wire protocol / driver family ("db2").
	Subprotocol string

	Host     string
	Port     int
	Database string
	User     string
	Password string

	// Subname is the dialect-specific locator, e.g. "//host:port/dbname".
	Subname string

	// Options carries driver-specific key=value pairs appended verbatim
	// to the connection string by the (out-of-scope) connector.
	Options map[string]string
}

// FieldKind is the input control type of a connection details field.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindInteger  FieldKind = "integer"
	FieldKindBoolean  FieldKind = "boolean"
	FieldKindPassword FieldKind = "password"
)

// DetailsField describes one connection parameter a driver accepts.
// It is declarative metadata only, no behavior. The configuration UI
// renders these as form inputs, in slice order.
type DetailsField struct {
	Name        string
	DisplayName string
	Kind        FieldKind
	Default     any
	Placeholder string
	Required    bool
}
