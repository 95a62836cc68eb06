// Package core defines the shared language of the QueryBridge system.
//
// This package contains:
//   - The vendor-neutral field type enumeration (FieldType)
//   - Temporal units for truncation/extraction (TemporalUnit)
//   - Connection contract types (ConnectionSpec, DetailsField)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
