package resend

import "errors"

var (
	ErrMissingAPIKey = errors.New("resend: api key is required")
	ErrMissingSender = errors.New("resend: sender email is required")
)

// Config holds Resend credentials and the default sender.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// Validate reports missing required settings.
func (c Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.SenderEmail == "" {
		errs = append(errs, ErrMissingSender)
	}
	return errors.Join(errs...)
}
