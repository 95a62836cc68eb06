package driver

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeDetails decodes a raw untyped details map (as delivered by the
// configuration subsystem) into a driver's typed details struct. Fields
// are matched by the `details` tag. Input is weakly typed: ports and flags
// arrive as strings from forms and YAML, and are coerced.
func DecodeDetails(details map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "details",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("building details decoder: %w", err)
	}
	if err := dec.Decode(details); err != nil {
		return fmt.Errorf("decoding connection details: %w", err)
	}
	return nil
}
