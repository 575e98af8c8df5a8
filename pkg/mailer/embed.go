package mailer

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// DefaultTemplates returns the built-in message template and base layout.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
