package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// isJSONRequest reports whether the request body should be decoded as JSON.
// Anything else falls back to form decoding, since clients submit both
// application/json and urlencoded form bodies.
func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// FlexString decodes from either a JSON string or a JSON number, keeping the
// raw text so the service layer can do the integer coercion.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = FlexString(n.String())
		return nil
	}
	return errors.New("expected string or number")
}
