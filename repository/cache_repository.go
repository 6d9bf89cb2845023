package repository

// CacheRepository memoises expensive computations, currently the net→gross
// salary inversions. Implementations must be safe for concurrent use.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
