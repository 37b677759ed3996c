package configs

import "time"

// Kafka configures ledger event publishing. With no brokers events are
// dropped.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	TopicPrefix  string        `env:"TOPIC_PREFIX" envDefault:"crowdoo."`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}
