// Package storage provides the key-value stores that persist client state.
package storage

// KV is a small string key-value store. Get reports ok=false for missing keys.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
