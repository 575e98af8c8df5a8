package composer

// Config holds delivery settings.
type Config struct {
	// Concurrency bounds the number of emails in flight per message.
	Concurrency int `env:"RICHMAIL_CONCURRENCY" envDefault:"4"`
}

func (c Config) concurrency() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}
