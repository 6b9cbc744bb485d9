package scraper

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
	"github.com/iqscore/scorefeed/internal/usecase"
	"github.com/shopspring/decimal"
)

func decodePayload(family string, raw []byte) (any, error) {
	var root any
	if err := sonic.Unmarshal(raw, &root); err != nil {
		return nil, &usecase.NormalizationError{Family: family, Reason: "payload is not valid JSON", Err: err}
	}
	return root, nil
}

func decodeObject(family string, raw []byte) (map[string]any, error) {
	root, err := decodePayload(family, raw)
	if err != nil {
		return nil, err
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &usecase.NormalizationError{Family: family, Reason: "payload is not an object"}
	}
	return obj, nil
}

func shapeError(family, reason string) error {
	return &usecase.NormalizationError{Family: family, Reason: reason}
}

// lookup finds the first key present in src. Exact matches win; otherwise
// keys are compared case- and accent-insensitively so "PAÍS", "Pais" and
// "pais" resolve to the same column. When several columns fold to the same
// alias the lexically smallest one is used.
func lookup(src map[string]any, keys ...string) (any, bool) {
	if src == nil {
		return nil, false
	}
	for _, key := range keys {
		if v, ok := src[key]; ok && v != nil {
			return v, true
		}
	}
	columns := slices.Sorted(maps.Keys(src))
	for _, key := range keys {
		want := foldKey(key)
		for _, k := range columns {
			if v := src[k]; v != nil && foldKey(k) == want {
				return v, true
			}
		}
	}
	return nil, false
}

func foldKey(key string) string {
	folded := textfix.Fold(key)
	folded = strings.NewReplacer("_", "", "-", "", " ", "").Replace(folded)
	return folded
}

func getStringAny(src map[string]any, keys ...string) string {
	raw, ok := lookup(src, keys...)
	if !ok {
		return ""
	}
	return textfix.Clean(asString(raw))
}

func asString(raw any) string {
	switch typed := raw.(type) {
	case string:
		return typed
	case float64:
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

func hasAny(src map[string]any, keys ...string) bool {
	_, ok := lookup(src, keys...)
	return ok
}

func getIntAny(src map[string]any, keys ...string) int {
	raw, ok := lookup(src, keys...)
	if !ok {
		return 0
	}
	return asInt(raw)
}

// asInt accepts numbers and numeric strings such as "12", "+5", "-3" or
// "7.0". Anything else is 0.
func asInt(raw any) int {
	switch typed := raw.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int64:
		return int(typed)
	case string:
		value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(typed), "+"))
		if value == "" {
			return 0
		}
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// asDecimal parses numbers and strings like "0.85", "0,85" or "45%".
func asDecimal(raw any) (decimal.Decimal, bool) {
	switch typed := raw.(type) {
	case float64:
		return decimal.NewFromFloat(typed), true
	case int:
		return decimal.NewFromInt(int64(typed)), true
	case int64:
		return decimal.NewFromInt(typed), true
	case string:
		value := strings.TrimSpace(typed)
		value = strings.TrimSuffix(value, "%")
		value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
		if value == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

func getDecimalAny(src map[string]any, keys ...string) (decimal.Decimal, bool) {
	raw, ok := lookup(src, keys...)
	if !ok {
		return decimal.Zero, false
	}
	return asDecimal(raw)
}

func getMapAny(src map[string]any, keys ...string) map[string]any {
	raw, ok := lookup(src, keys...)
	if !ok {
		return nil
	}
	obj, _ := raw.(map[string]any)
	return obj
}

func getSliceAny(src map[string]any, keys ...string) ([]any, bool) {
	raw, ok := lookup(src, keys...)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	return items, ok
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

// isHeaderEcho reports a data row whose label repeats a column header.
func isHeaderEcho(value string, headers ...string) bool {
	v := textfix.Fold(value)
	if v == "" {
		return false
	}
	for _, h := range headers {
		if v == textfix.Fold(h) {
			return true
		}
	}
	return false
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
	"02.01.2006 15:04",
	"2006-01-02",
	"02/01/2006",
}

// parseTimestamp returns nil for anything it does not recognise. Callers keep
// the raw text alongside.
func parseTimestamp(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}
