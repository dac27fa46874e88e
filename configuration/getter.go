package configuration

import (
	"strings"
)

// All returns a copy of the config map, flattened to lowercased key paths.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Get returns the raw, uncast value of the given key path, or nil if the
// path does not exist. Callers that need to distinguish "unset" from a
// zero value use Get instead of the typed getters.
func (c *Configuration) Get(path string) interface{} {
	return c.config.Get(strings.ToLower(path))
}

// Int returns the int value of the given key path, or 0 if the path does
// not exist or does not hold a valid int.
func (c *Configuration) Int(path string) int {
	return c.config.Int(strings.ToLower(path))
}

// String returns the string value of the given key path, or "" if the path
// does not exist or does not hold a valid string.
func (c *Configuration) String(path string) string {
	return c.config.String(strings.ToLower(path))
}

// Strings returns the []string value of the given key path, or an empty
// slice if the path does not exist or does not hold a valid string slice.
func (c *Configuration) Strings(path string) []string {
	return c.config.Strings(strings.ToLower(path))
}
