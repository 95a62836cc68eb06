package db2

import (
	"fmt"
	"strings"

	"github.com/querybridge/querybridge/pkg/core"
	"github.com/querybridge/querybridge/pkg/driver"
)

const (
	defaultHost = "localhost"
	defaultPort = 50000
)

// detailsFields is the connection form, in display order.
var detailsFields = []core.DetailsField{
	{Name: "host", DisplayName: "Host", Kind: core.FieldKindText, Default: defaultHost},
	{Name: "port", DisplayName: "Port", Kind: core.FieldKindInteger, Default: defaultPort},
	{Name: "dbname", DisplayName: "Database name", Kind: core.FieldKindText, Placeholder: "BLUDB", Required: true},
	{Name: "user", DisplayName: "Username", Kind: core.FieldKindText, Required: true},
	{Name: "password", DisplayName: "Password", Kind: core.FieldKindPassword},
	{Name: "ssl", DisplayName: "Use a secure connection (SSL)", Kind: core.FieldKindBoolean, Default: false},
	{Name: "additional-options", DisplayName: "Additional connection string options", Kind: core.FieldKindText, Placeholder: "securityMechanism=9"},
}

func (*Driver) DetailsFields() []core.DetailsField {
	fields := make([]core.DetailsField, len(detailsFields))
	copy(fields, detailsFields)
	return fields
}

// connectionDetails is the typed shape of the raw details map.
type connectionDetails struct {
	Host              string `details:"host"`
	Port              int    `details:"port"`
	DBName            string `details:"dbname"`
	User              string `details:"user"`
	Password          string `details:"password"`
	SSL               bool   `details:"ssl"`
	AdditionalOptions string `details:"additional-options"`
}

// SpecFromDetails validates the raw details and resolves them into a
// ConnectionSpec, applying the host/port defaults. Missing identity fields
// fail here, before any connection attempt.
func (*Driver) SpecFromDetails(details map[string]any) (core.ConnectionSpec, error) {
	var d connectionDetails
	if err := driver.DecodeDetails(details, &d); err != nil {
		return core.ConnectionSpec{}, fmt.Errorf("decoding db2 connection details: %w", err)
	}
	if d.DBName == "" {
		return core.ConnectionSpec{}, &driver.InvalidDetailsError{Field: "dbname", Reason: "is required"}
	}
	if d.User == "" {
		return core.ConnectionSpec{}, &driver.InvalidDetailsError{Field: "user", Reason: "is required"}
	}
	if d.Host == "" {
		d.Host = defaultHost
	}
	if d.Port == 0 {
		d.Port = defaultPort
	}

	opts, err := parseAdditionalOptions(d.AdditionalOptions)
	if err != nil {
		return core.ConnectionSpec{}, err
	}
	if d.SSL {
		if opts == nil {
			opts = make(map[string]string, 1)
		}
		opts["sslConnection"] = "true"
	}

	return core.ConnectionSpec{
		Subprotocol: string(DialectKey),
		Host:        d.Host,
		Port:        d.Port,
		Database:    d.DBName,
		User:        d.User,
		Password:    d.Password,
		Subname:     fmt.Sprintf("//%s:%d/%s", d.Host, d.Port, d.DBName),
		Options:     opts,
	}, nil
}

// parseAdditionalOptions splits a "key=value;key=value" string. Empty
// segments are tolerated; a segment without "=" is a user typo and fails.
func parseAdditionalOptions(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	opts := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, &driver.InvalidDetailsError{
				Field:  "additional-options",
				Reason: fmt.Sprintf("has malformed option %q, want key=value", pair),
			}
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return opts, nil
}
