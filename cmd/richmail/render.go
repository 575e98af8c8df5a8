package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/richmail/pkg/mailer"
)

func (c *cli) renderCmd() *cobra.Command {
	var (
		contextPath string
		title       string
		subject     string
		wrap        bool
		text        bool
	)

	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a document to HTML and substitute variables",
		Long: `Render validates the document, renders it and resolves variables from
the context file. Variables that cannot be resolved stay in the output as
markers. With --wrap the body is placed in the email template and layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			vars, err := loadContext(contextPath)
			if err != nil {
				return err
			}

			p := c.pipeline()
			body, err := p.Process(doc, vars)
			if err != nil {
				c.printValidation(cmd.ErrOrStderr(), err)
				return errInvalid
			}

			out := cmd.OutOrStdout()
			if !wrap && !text {
				fmt.Fprintln(out, body)
				return nil
			}

			layout, template := c.cfg.Mailer.DefaultLayout, c.cfg.Mailer.DefaultTemplate
			if !wrap {
				layout, template = "", ""
			}

			result, err := mailer.NewRenderer(c.templates()).Render(layout, template, mailer.LayoutData{
				Title:   p.Resolve(title, vars),
				Subject: p.Resolve(subject, vars),
				Content: body,
			})
			if err != nil {
				return err
			}

			if text {
				fmt.Fprintln(out, result.Text)
			} else {
				fmt.Fprintln(out, result.HTML)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "YAML or JSON file with variable values")
	cmd.Flags().StringVar(&title, "title", "", "message title shown by the template")
	cmd.Flags().StringVar(&subject, "subject", "", "message subject shown by the layout")
	cmd.Flags().BoolVar(&wrap, "wrap", false, "wrap the body in the email template and layout")
	cmd.Flags().BoolVar(&text, "text", false, "print the plain text alternative")
	return cmd
}
