package i

// Rand is a source of random integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// RandFactory builds a Rand from a seed. Equal seeds must yield equal streams.
type RandFactory func(seed int64) Rand
