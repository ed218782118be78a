package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown once a signal is received.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MaxBodyBytes caps request bodies. Campaign creation carries the
	// encoded images and documents, so the default is generous.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"67108864"`
}
