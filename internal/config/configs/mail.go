package configs

import "time"

// Mail configures the SMTP notification sender. When Enabled is false
// notifications are only logged.
type Mail struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"465"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"no-reply@crowdoo.local"`
	// ImplicitTLS dials TLS directly (port 465); otherwise STARTTLS is used
	// when the server offers it.
	ImplicitTLS bool          `env:"IMPLICIT_TLS" envDefault:"true"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
