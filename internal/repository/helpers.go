package repository

import (
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error message looks like a unique index violation
// that the database layer could not parse into a DuplicateKeyError.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "already contains")
}

// recordKey extracts the key part of a SurrealDB record ID
// (pokemon:⟨1b4e28ba-...⟩ -> 1b4e28ba-...)
func recordKey(id interface{}) string {
	switch v := id.(type) {
	case models.RecordID:
		return cast.ToString(v.ID)
	case *models.RecordID:
		if v != nil {
			return cast.ToString(v.ID)
		}
	case string:
		if i := strings.Index(v, ":"); i >= 0 {
			v = v[i+1:]
		}
		return strings.Trim(v, "⟨⟩`")
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		return cast.ToString(v["id"])
	}
	return ""
}

// parseTime parses time from the formats SurrealDB may return
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getInt extracts an int value from a map. CBOR decoding yields int64,
// uint64 or float64 depending on the stored value.
func getInt(m map[string]interface{}, key string) int {
	return cast.ToInt(m[key])
}
