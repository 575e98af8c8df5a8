package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/richmail/pkg/richtext"
	"github.com/dmitrymomot/richmail/pkg/validator"
)

var errInvalid = errors.New("validation failed")

func (c *cli) validateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Check a document for empty content and unknown variables",
		Long: `Validate reads an editor document ("-" for stdin) and reports every
violation with its location. It exits non-zero when the document is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			vs := c.pipeline().Validate(doc)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if vs == nil {
					vs = richtext.Violations{}
				}
				if err := enc.Encode(vs); err != nil {
					return err
				}
			} else if len(vs) == 0 {
				fmt.Fprintln(out, "content is valid")
			} else {
				c.printValidation(out, vs)
			}

			if len(vs) > 0 {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print violations as JSON")
	return cmd
}

// printValidation writes one translated "field: message" line per error. It
// reports whether err carried field errors or content violations.
func (c *cli) printValidation(w io.Writer, err error) bool {
	errs := validator.ExtractValidationErrors(err)
	if errs == nil {
		errs = richtext.ExtractViolations(err).ValidationErrors()
	}
	if c.tr != nil {
		errs.Translate(c.tr.TranslateMessage)
	}
	for _, e := range errs {
		fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message)
	}
	return len(errs) > 0
}
