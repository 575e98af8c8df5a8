package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/richmail/pkg/composer"
	"github.com/dmitrymomot/richmail/pkg/config"
	"github.com/dmitrymomot/richmail/pkg/i18n"
	"github.com/dmitrymomot/richmail/pkg/logger"
	"github.com/dmitrymomot/richmail/pkg/mailer"
	"github.com/dmitrymomot/richmail/pkg/mailer/resend"
	"github.com/dmitrymomot/richmail/pkg/variable"
)

// appConfig is read from the environment after .env files are loaded.
type appConfig struct {
	LogLevel     slog.Level `env:"RICHMAIL_LOG_LEVEL" envDefault:"INFO"`
	TemplatesDir string     `env:"RICHMAIL_TEMPLATES_DIR"`
	Lang         string     `env:"RICHMAIL_LANG" envDefault:"en"`

	Mailer   mailer.Config
	Resend   resend.Config
	Composer composer.Config
	Sentry   logger.SentryConfig
}

type cli struct {
	log      *slog.Logger
	envFiles []string
	lang     string
	cfg      appConfig
	tr       *i18n.Translator
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logger.NewNope()}

	root := &cobra.Command{
		Use:   "richmail",
		Short: "Validate, render and send rich-text email messages",
		Long: `richmail works with documents produced by the rich-text email editor.
It checks them for empty content and unknown variables, renders them to HTML,
substitutes variables from a context file and delivers the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&c.envFiles, "env-file", nil, "load environment variables from these .env files")
	root.PersistentFlags().StringVar(&c.lang, "lang", "", "language of validation messages (default $RICHMAIL_LANG or en)")

	root.AddCommand(
		c.variablesCmd(),
		c.validateCmd(),
		c.renderCmd(),
		c.sendCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	logger.FlushSentry(2 * time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(c.envFiles...); err != nil {
		return err
	}
	if err := config.Load(&c.cfg); err != nil {
		return err
	}

	c.log = logger.NewWithSentry(c.cfg.Sentry,
		logger.WithLevel(c.cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithExtractors(logger.MessageIDExtractor),
	)

	lang := c.lang
	if lang == "" {
		lang = c.cfg.Lang
	}
	if !i18n.Default().Supports(lang) {
		c.log.Warn("unsupported language, falling back", "lang", lang, "fallback", i18n.Default().DefaultLanguage())
	}
	c.tr = i18n.NewTranslator(i18n.Default(), lang, i18n.MessagesNamespace)
	return nil
}

func (c *cli) templates() fs.FS {
	if c.cfg.TemplatesDir != "" {
		return os.DirFS(c.cfg.TemplatesDir)
	}
	return mailer.DefaultTemplates()
}

func (c *cli) pipeline() *composer.Pipeline {
	return composer.NewPipeline(variable.Default(), variable.WithLogger(c.log))
}
