package service

import (
	"encoding/json"
	"strings"

	"travel_booking_backend/platform/sanitize"
)

// ParseIncluded reads the "included" form value. A JSON string array is
// used as is; anything else is split on commas. Empty entries are dropped.
func ParseIncluded(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var items []string
	if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &items) == nil {
		return sanitize.Strings(items)
	}
	return sanitize.Strings(strings.Split(raw, ","))
}
