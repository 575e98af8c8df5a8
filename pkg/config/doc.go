// Package config loads configuration structs from the environment.
//
// Values come from process environment variables, optionally seeded from
// .env files with godotenv, and are parsed into structs tagged for
// caarlos0/env:
//
//	type Settings struct {
//		Concurrency int    `env:"RICHMAIL_CONCURRENCY" envDefault:"4"`
//		APIKey      string `env:"RESEND_API_KEY"`
//	}
//
//	if err := config.LoadEnv(".env"); err != nil {
//		return err
//	}
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// Variables already present in the environment take precedence over values
// from .env files.
package config
