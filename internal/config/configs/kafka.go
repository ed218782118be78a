package configs

// Kafka configures domain event publishing. An empty broker list disables
// publishing and a no-op publisher is used instead.
type Kafka struct {
	Brokers     []string `env:"BROKERS" envSeparator:","`
	TopicPrefix string   `env:"TOPIC_PREFIX" envDefault:"lark."`
}

// Enabled reports whether at least one broker is configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}
