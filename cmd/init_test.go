package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string)
		wantErr    string
		wantOutput string
	}{
		{
			name:       "creates config",
			wantOutput: "Initialized .ralph/",
		},
		{
			name: "refuses existing directory",
			setup: func(t *testing.T, dir string) {
				if err := os.MkdirAll(filepath.Join(dir, ".ralph"), 0755); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ".ralph/ already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dir)
			}
			var out bytes.Buffer

			err := runInit(dir, &out)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOutput)
			}
			if _, err := os.Stat(filepath.Join(dir, ".ralph", "config.yaml")); err != nil {
				t.Errorf("config.yaml not created: %v", err)
			}
		})
	}
}

func TestRunInit_ConfigLoads(t *testing.T) {
	dir := t.TempDir()
	if err := runInit(dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}
	var out bytes.Buffer
	if err := runConfig(dir, &out); err != nil {
		t.Fatalf("runConfig() error on default config: %v", err)
	}
	if !strings.Contains(out.String(), "promptFile: .ralph/prompt.md") {
		t.Errorf("config output:\n%s", out.String())
	}
}
