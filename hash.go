package blacklist

// HashKind identifies the base string hash used by a Hasher.
type HashKind string

// HashKind constants.
const (
	HashXXHash  HashKind = "xxhash"
	HashXXH3    HashKind = "xxh3"
	HashMurmur3 HashKind = "murmur3"
)

// HashKinds returns all supported hash kinds.
func HashKinds() []HashKind {
	return []HashKind{HashXXHash, HashXXH3, HashMurmur3}
}

// Hasher maps a string to an unsigned integer.
// Implementations must be pure: the same input always yields the same output.
type Hasher interface {
	Hash(input string) uint64
}
