package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/richmail/pkg/composer"
	"github.com/dmitrymomot/richmail/pkg/richtext"
	"github.com/dmitrymomot/richmail/pkg/variable"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func loadDocument(cmd *cobra.Command, path string) (richtext.Document, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	doc, err := richtext.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func loadMessage(cmd *cobra.Command, path string) (composer.Message, error) {
	var msg composer.Message
	data, err := readInput(cmd, path)
	if err != nil {
		return msg, err
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("%s: %w", path, err)
	}
	return msg, nil
}

// loadContext reads a YAML or JSON file mapping entities to properties.
// An empty path yields an empty context.
func loadContext(path string) (variable.Context, error) {
	if path == "" {
		return variable.Context{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return variable.Decode(raw)
}
