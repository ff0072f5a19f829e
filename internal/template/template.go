package template

import (
	_ "embed"
	"path/filepath"
)

//go:embed config.yaml
var DefaultConfig string

// RalphDir is the name of the ralph configuration directory.
const RalphDir = ".ralph"

// File name constants for consistent usage across the codebase.
const (
	ConfigFile = "config.yaml"
	PromptFile = "prompt.md" // Last rendered prompt, read by the loop runner
	EnvFile    = ".env"
)

// PlansDir is where design documents are written, relative to the project.
var PlansDir = filepath.Join("docs", "plans")

// DefaultFiles returns the default files to create in .ralph/
func DefaultFiles() map[string]string {
	return map[string]string{
		ConfigFile: DefaultConfig,
	}
}
