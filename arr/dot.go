package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for map[string]any
//
// Keys are dot-separated paths into nested map[string]any values:
//
//	m := map[string]any{
//	    "player": map[string]any{
//	        "name": "Ada",
//	        "hand": map[string]any{"size": 2},
//	    },
//	}
//
//	Get(m, "player.hand.size")  → 2, true
//	Set(m, "player.score", 10)
//	Has(m, "player.name")       → true
//	Forget(m, "player.hand")
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Get retrieves the value stored at the dot-notation key. The boolean is
// false when any segment of the path is missing or not a nested map.
func Get(m map[string]any, key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. A non-map value in the way is replaced.
func Set(m map[string]any, key string, value any) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		m[key] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Get(m, key)
	return ok
}

// Forget removes the dot-notation key from m.
// Intermediate maps are not cleaned up.
func Forget(m map[string]any, key string) {
	seg, rest, nested := strings.Cut(key, ".")
	if !nested {
		delete(m, key)
		return
	}
	if child, ok := m[seg].(map[string]any); ok {
		Forget(child, rest)
	}
}
