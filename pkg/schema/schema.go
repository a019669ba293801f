/*
schema defines the typed models exchanged with the Open WebUI API, one
file per API router. Response models decode into static types and drop
unknown fields; form models omit unset optional fields so that the
endpoint applies its own defaults. Fields where the endpoint
distinguishes an absent value from an explicit null are pointers
without omitempty.

Timestamps are Unix epoch seconds unless named otherwise; channel and
message timestamps are epoch nanoseconds.
*/
package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns v as indented JSON, for the String methods on the
// schema types.
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
