package configs

import "time"

// Scheduler configures the external payout timer run by "payouts schedule".
type Scheduler struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
}
