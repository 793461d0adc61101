package pkgconfig

import "time"

// Config is the read-only view of application configuration used by business code.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	// GetArray splits a comma separated value, dropping blank entries.
	GetArray(key string) []string
	// GetSize parses sizes such as "10MB" or "512kb" into bytes.
	GetSize(key string) int64
	GetDuration(key string) time.Duration
	Close() error
}
