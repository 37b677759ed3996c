package configs

// Redis configures the login lockout store. An empty URL disables lockouts.
type Redis struct {
	URL string `env:"URL"`
}
