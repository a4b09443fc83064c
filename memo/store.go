// Package memo provides bounded stores for memoized switch results.
//
// Results are addressed by a key path, one element per subject value. Each
// element must be comparable or implement fmt.Stringer; KeyOf normalizes
// Stringers to their string form so that non-comparable subjects with a
// stable textual identity can still be used.
package memo

import "fmt"

// Key is one element of a key path.
type Key any

// Store holds values by key path.
type Store[V any] interface {
	Load(keys []Key) (V, bool)
	Store(keys []Key, value V)
}

// KeyOf normalizes a subject value into a Key.
func KeyOf(v any) Key {
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}
	return v
}

// KeysOf normalizes every value with KeyOf.
func KeysOf(vs ...any) []Key {
	keys := make([]Key, len(vs))
	for i, v := range vs {
		keys[i] = KeyOf(v)
	}
	return keys
}

// Encode renders a key path as a string that includes each element's type,
// so that 1 and "1" stay distinct. Every element is length-prefixed, so no
// content of one element can be read as the boundary of another.
func Encode(keys []Key) string {
	if len(keys) == 0 {
		panic("memo: empty keys")
	}
	var out []byte
	for _, k := range keys {
		typ, text := fmt.Sprintf("%T", k), fmt.Sprint(k)
		out = fmt.Appendf(out, "%d:%s%d:%s", len(typ), typ, len(text), text)
	}
	return string(out)
}
