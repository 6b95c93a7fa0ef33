package infra

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey is the totally ordered key set accepted by the trees.
// byte => ~uint8
// NaN floats break the total order and must not be used as keys.
type OrderedKey interface {
	Integer | Float | ~string
}

// Compare returns
//  1. i == j, 0
//  2. i > j, 1, turn to right part.
//  3. i < j, -1, turn to left part.
func Compare[K OrderedKey](i, j K) int {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}
