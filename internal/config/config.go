package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/template"
	"gopkg.in/yaml.v3"
)

// Config holds the effective settings for a project.
type Config struct {
	ProjectName string
	PromptFile  string
	Answers     *brainstorm.Answers
}

// rawConfig is used for YAML unmarshaling to distinguish missing keys from explicit empty values.
type rawConfig struct {
	ProjectName *string             `yaml:"projectName"`
	PromptFile  *string             `yaml:"promptFile"`
	Answers     *brainstorm.Answers `yaml:"answers"`
}

// Default returns the configuration used when no config file exists.
func Default(projectDir string) Config {
	return Config{
		ProjectName: defaultProjectName(projectDir),
		PromptFile:  filepath.Join(template.RalphDir, template.PromptFile),
		Answers:     brainstorm.NewAnswers(),
	}
}

func defaultProjectName(projectDir string) string {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return filepath.Base(projectDir)
	}
	return filepath.Base(abs)
}

// Validate checks that the Config fields are valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return fmt.Errorf("projectName must not be empty")
	}
	if c.PromptFile == "" {
		return fmt.Errorf("promptFile must not be empty")
	}
	if filepath.IsAbs(c.PromptFile) {
		return fmt.Errorf("promptFile must be relative to the project, got %q", c.PromptFile)
	}
	if err := brainstorm.ValidateAnswers(c.Answers); err != nil {
		return fmt.Errorf("answers: %w", err)
	}
	return nil
}

// Path returns the config file location for a project.
func Path(projectDir string) string {
	return filepath.Join(projectDir, template.RalphDir, template.ConfigFile)
}

// Load reads .ralph/config.yaml in projectDir. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(projectDir string) (*Config, error) {
	cfg := Default(projectDir)

	data, err := os.ReadFile(Path(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if raw.ProjectName != nil {
		cfg.ProjectName = *raw.ProjectName
	}
	if raw.PromptFile != nil {
		cfg.PromptFile = *raw.PromptFile
	}
	if raw.Answers != nil {
		cfg.Answers = raw.Answers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
