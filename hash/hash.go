package hash

import "strings"

// Key is any value that can be turned into an identifier.
type Key interface {
	string | []byte | int | int32 | uint32 | int64 | uint64 | uint16
}

// ShortID returns the 16-bit identifier for key.
func ShortID[K Key](key K, caseSensitive bool) uint16 {
	if n, ok := number(key); ok {
		return uint16(n) //nolint:gosec // narrowing is the point
	}
	return CRC16(bytesOf(key, caseSensitive))
}

// ResourceID returns the 32-bit resource identifier for key. Every name
// stored in a container is keyed by this value.
func ResourceID[K Key](key K, caseSensitive bool) int32 {
	if n, ok := number(key); ok {
		return int32(n) //nolint:gosec // narrowing is the point
	}
	return int32(CRC32(bytesOf(key, caseSensitive))) //nolint:gosec // reinterpreted as signed
}

// ObjectID returns the 32-bit object identifier for key.
func ObjectID[K Key](key K, caseSensitive bool) int32 {
	if n, ok := number(key); ok {
		return int32(n) //nolint:gosec // narrowing is the point
	}
	return int32(ID32(bytesOf(key, caseSensitive))) //nolint:gosec // reinterpreted as signed
}

// Func is a hash over a resolved key.
type Func func(key string, caseSensitive bool) int32

// Resource and Object adapt the generic functions to Func for string keys.
var (
	Resource Func = ResourceID[string]
	Object   Func = ObjectID[string]
)

// Match reports whether a and b hash to the same value under fn.
func Match(fn Func, a, b string) bool {
	return fn(a, false) == fn(b, false)
}

func number[K Key](key K) (int64, bool) {
	switch v := any(key).(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint32:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), true //nolint:gosec // wraps like the 32-bit narrowing
	case uint16:
		return int64(v), true
	}
	return 0, false
}

func bytesOf[K Key](key K, caseSensitive bool) []byte {
	switch v := any(key).(type) {
	case string:
		if !caseSensitive {
			v = strings.ToLower(v)
		}
		return []byte(v)
	case []byte:
		return v
	}
	return nil
}
