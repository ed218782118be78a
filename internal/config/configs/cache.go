package configs

import "time"

// Cache configures the in-process campaign cache.
type Cache struct {
	// TTL is how long a completed load of own campaigns or campaign images
	// is served before the next read goes back to the store.
	TTL time.Duration `env:"TTL" envDefault:"10s"`
}
