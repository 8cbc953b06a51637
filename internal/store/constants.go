package store

import "time"

// Registry defaults
const (
	DefaultRegistrySize = 1024
	DefaultRegistryTTL  = time.Hour
)
