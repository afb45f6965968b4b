// Package serializer converts persisted documents into wire-safe values:
// object identifiers become their 24-hex string form, timestamps become
// ISO-8601 text, and decimal amounts become canonical decimal strings.
package serializer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize recursively rewrites v into a JSON-safe representation,
// descending into nested documents and arrays. It is idempotent: values
// that are already wire-safe pass through unchanged.
func Serialize(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return t.String()
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Serialize(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Serialize(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = Serialize(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Serialize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Serialize(val)
		}
		return out
	case []bson.M:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Serialize(val)
		}
		return out
	default:
		return v
	}
}
