package db

// KV is the persistence adapter the store writes through. It mirrors the
// get/set/remove contract of a browser key-value store: values are opaque
// strings, keys are flat.
//
// Get reports absence rather than failing; adapters absorb backend read
// errors into "absent" so the store's load guarantees hold.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
