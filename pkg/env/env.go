// Package env provides a read-only view of environment variables so that
// callers can be handed a fixed map in tests instead of the process env.
package env

import "os"

// Lookup reads environment variables.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// OS reads from the process environment.
type OS struct{}

// Lookup implements Lookup via os.LookupEnv.
func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed environment.
type Map map[string]string

// Lookup implements Lookup.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func Get(l Lookup, key string) string {
	if l == nil {
		return ""
	}
	v, _ := l.Lookup(key)
	return v
}
