package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Helpers over the generic tree produced by JSON decoding. None of them
// fail: absent or mistyped values come back as zero values or nil.

func lookup(node any, keys ...string) any {
	current := node
	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

func asMap(value any) map[string]any {
	obj, _ := value.(map[string]any)
	return obj
}

func mapAt(src map[string]any, keys ...string) map[string]any {
	return asMap(lookup(src, keys...))
}

func mapList(value any) []map[string]any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func hasKeys(src map[string]any, keys ...string) bool {
	if src == nil {
		return false
	}
	for _, key := range keys {
		if _, ok := src[key]; !ok {
			return false
		}
	}
	return true
}

func scalarString(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return ""
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	return scalarString(src[key])
}

func getOptString(src map[string]any, key string) *string {
	value := getString(src, key)
	if value == "" {
		return nil
	}
	return &value
}

func toInt64(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) {
			return 0, false
		}
		return int64(typed), true
	case int:
		return int64(typed), true
	case int64:
		return typed, true
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func getInt64(src map[string]any, key string) int64 {
	if src == nil {
		return 0
	}
	v, _ := toInt64(src[key])
	return v
}

func getOptInt(src map[string]any, key string) *int {
	if src == nil {
		return nil
	}
	v, ok := toInt64(src[key])
	if !ok {
		return nil
	}
	out := int(v)
	return &out
}

func toFloat64(raw any) (float64, bool) {
	switch typed := raw.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0, false
		}
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func getOptFloat(src map[string]any, key string) *float64 {
	if src == nil {
		return nil
	}
	v, ok := toFloat64(src[key])
	if !ok {
		return nil
	}
	return &v
}

// getBool accepts JSON booleans and the flag spellings used by the older
// feeds ("Y", "yes", "1").
func getBool(src map[string]any, key string) bool {
	if src == nil {
		return false
	}
	switch typed := src[key].(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "y", "yes", "true", "1":
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

func firstList(values ...any) []map[string]any {
	for _, value := range values {
		if items := mapList(value); len(items) > 0 {
			return items
		}
	}
	return nil
}

func ptrString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
