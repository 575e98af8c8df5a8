package mailer

// Config holds mailer defaults. Parsed from the environment with caarlos0/env.
type Config struct {
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultTemplate string `env:"MAILER_DEFAULT_TEMPLATE" envDefault:"message.md"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
}
