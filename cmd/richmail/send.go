package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/richmail/pkg/composer"
	"github.com/dmitrymomot/richmail/pkg/mailer"
	"github.com/dmitrymomot/richmail/pkg/mailer/resend"
)

func (c *cli) sendCmd() *cobra.Command {
	var (
		messagePath string
		contextPath string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to each of its recipients",
		Long: `Send validates the message envelope and content, resolves variables and
delivers one email per recipient through Resend. With --dry-run the emails
are built and listed instead of delivered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := loadMessage(cmd, messagePath)
			if err != nil {
				return err
			}
			vars, err := loadContext(contextPath)
			if err != nil {
				return err
			}

			sender, err := c.sender(dryRun)
			if err != nil {
				return err
			}

			m := mailer.New(sender, mailer.NewRenderer(c.templates()), c.cfg.Mailer)
			comp := composer.New(m, c.cfg.Composer,
				composer.WithLogger(c.log),
				composer.WithPipeline(c.pipeline()),
			)

			deliveries, err := comp.Send(cmd.Context(), msg, vars)
			if c.printValidation(cmd.ErrOrStderr(), err) {
				return errInvalid
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range deliveries {
				fmt.Fprintf(w, "%s\t%s\n", d.Recipient, d.MessageID)
			}
			if ferr := w.Flush(); ferr != nil && err == nil {
				err = ferr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&messagePath, "message", "m", "-", `message JSON file ("-" for stdin)`)
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "YAML or JSON file with variable values")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "build emails without delivering them")
	return cmd
}

func (c *cli) sender(dryRun bool) (mailer.Sender, error) {
	if !dryRun {
		return resend.New(c.cfg.Resend)
	}
	return mailer.SenderFunc(func(ctx context.Context, email *mailer.Email) error {
		c.log.InfoContext(ctx, "dry run",
			slog.String("recipient", email.To[0]),
			slog.String("subject", email.Subject),
			slog.Int("html_bytes", len(email.HTML)),
		)
		return nil
	}), nil
}
