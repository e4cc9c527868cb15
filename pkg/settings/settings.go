// Package settings keeps the Agent Gateway admin settings record and applies untrusted
// partial updates to it.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrBadRequest is returned when an update payload can't be parsed as structured data
var ErrBadRequest = errors.New("invalid request")

// AuthMode defines how clients authenticate against the gateway
type AuthMode string

// supported auth modes
const (
	AuthModeNone  AuthMode = "none"
	AuthModeToken AuthMode = "token"
	AuthModeOAuth AuthMode = "oauth"
)

// IsValid reports whether the mode is one of the supported literals
func (m AuthMode) IsValid() bool {
	switch m {
	case AuthModeNone, AuthModeToken, AuthModeOAuth:
		return true
	}
	return false
}

// AuthModes returns all supported auth modes in display order
func AuthModes() []AuthMode {
	return []AuthMode{AuthModeNone, AuthModeToken, AuthModeOAuth}
}

// Record is the Agent Gateway settings record
type Record struct {
	Enabled     bool     `json:"enabled"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ThemeColor  string   `json:"themeColor"`
	PublicURL   string   `json:"publicUrl"`
	AuthMode    AuthMode `json:"authMode"`
}

// Default returns the record every process starts with
func Default() Record {
	return Record{
		Enabled:     false,
		Title:       "Agent Gateway",
		Description: "Expose your agents through a single secured gateway",
		ThemeColor:  "#4f46e5",
		PublicURL:   "",
		AuthMode:    AuthModeToken,
	}
}

// Patch is an untrusted, partially specified update payload keyed by record JSON field names
type Patch map[string]any

// ParsePatch decodes a raw payload into a Patch. Invalid JSON and a bare null are rejected with
// ErrBadRequest. Any other non-object JSON value yields an empty patch.
func ParsePatch(data []byte) (Patch, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after payload", ErrBadRequest)
	}

	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null payload", ErrBadRequest)
	case map[string]any:
		return Patch(val), nil
	default:
		return Patch{}, nil
	}
}

// Merge returns a copy of r with the patch applied field by field.
// enabled is always overwritten with the truthiness of the patch value, text fields are
// replaced only by strings and authMode only by one of the supported literals.
func (r Record) Merge(p Patch) Record {
	res := r
	res.Enabled = truthy(p["enabled"])
	res.Title = textOr(p["title"], r.Title)
	res.Description = textOr(p["description"], r.Description)
	res.ThemeColor = textOr(p["themeColor"], r.ThemeColor)
	res.PublicURL = textOr(p["publicUrl"], r.PublicURL)
	if s, ok := p["authMode"].(string); ok && AuthMode(s).IsValid() {
		res.AuthMode = AuthMode(s)
	}
	return res
}

func textOr(v any, current string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return current
}

// truthy follows loose truthiness: nil, false, zero numbers, NaN and "" are false,
// everything else (including "false", empty arrays and objects) is true
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			// out of float range, still a non-zero number
			return true
		}
		return f != 0
	case float64:
		return val != 0 && !math.IsNaN(val)
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case int:
		return val != 0
	case int64:
		return val != 0
	}
	return true
}
