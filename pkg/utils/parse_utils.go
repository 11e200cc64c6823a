package utils

import (
	"encoding/json"
	"strings"
)

// DecodeStringList tolerantly decodes a list of strings that may arrive as an
// already-structured JSON array, a JSON-encoded string holding an array, or a
// plain comma-separated string. Malformed input degrades to an empty list so a
// single bad record never fails the whole request.
func DecodeStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return compactStrings(list)
	}

	// Some rows store the array double-encoded as a JSON string.
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &list); err == nil {
			return compactStrings(list)
		}
	}

	if strings.Contains(raw, ",") {
		return compactStrings(strings.Split(raw, ","))
	}

	return []string{raw}
}

// RouteStopRecord is one leg of a package route as stored in the catalog. The
// Location field is a free-text place name, not a destination id.
type RouteStopRecord struct {
	Day      int    `json:"day"`
	Location string `json:"location"`
	Note     string `json:"note,omitempty"`
}

// DecodeRouteStops decodes a package route column. Accepts a structured JSON
// array or a double-encoded JSON string; anything else yields an empty route.
func DecodeRouteStops(raw string) []RouteStopRecord {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []RouteStopRecord{}
	}

	var stops []RouteStopRecord
	if err := json.Unmarshal([]byte(raw), &stops); err == nil {
		return stops
	}

	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &stops); err == nil {
			return stops
		}
	}

	return []RouteStopRecord{}
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContainsFold reports whether either string contains the other, ignoring
// case. Package routes reference destinations by free-text name, so overlap
// checks have to be substring-based in both directions.
func ContainsFold(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
