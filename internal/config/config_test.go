package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alan/gmeek-pub/cmd"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		fileContent    string
		skipWrite      bool
		wantErr        bool
		wantErrMsg     string
		expectedRepo   string
		expectedRemote string
	}{
		{
			name: "valid config",
			fileContent: `repo: acme/blog
remote: upstream
api_url: https://github.example.com/api/v3/
token_env: GHE_TOKEN`,
			expectedRepo:   "acme/blog",
			expectedRemote: "upstream",
		},
		{
			name:         "minimal config",
			fileContent:  `repo: acme/notes`,
			expectedRepo: "acme/notes",
		},
		{
			name:       "file not found",
			skipWrite:  true,
			wantErr:    true,
			wantErrMsg: "failed to read config file",
		},
		{
			name:        "invalid yaml",
			fileContent: "invalid: yaml: content: [",
			wantErr:     true,
			wantErrMsg:  "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configFile := filepath.Join(tempDir, "config.yaml")

			if !tt.skipWrite {
				if err := os.WriteFile(configFile, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			config, err := LoadConfig(configFile)

			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadConfig() expected error, got nil")
					return
				}
				if tt.wantErrMsg != "" && !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("LoadConfig() error = %v, want error containing %v", err, tt.wantErrMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("LoadConfig() unexpected error = %v", err)
				return
			}

			if config.Repo != tt.expectedRepo {
				t.Errorf("LoadConfig() repo = %v, want %v", config.Repo, tt.expectedRepo)
			}

			if config.Remote != tt.expectedRemote {
				t.Errorf("LoadConfig() remote = %v, want %v", config.Remote, tt.expectedRemote)
			}
		})
	}
}

func TestLoadOptionalConfig(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		config, err := LoadOptionalConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadOptionalConfig() unexpected error = %v", err)
		}
		if *config != (cmd.Config{}) {
			t.Errorf("LoadOptionalConfig() = %+v, want empty config", *config)
		}
	})

	t.Run("invalid file is still an error", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(configFile, []byte("repo: [unterminated"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		if _, err := LoadOptionalConfig(configFile); err == nil {
			t.Error("LoadOptionalConfig() expected error, got nil")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *cmd.Config
	}{
		{
			name:   "repo only",
			config: &cmd.Config{Repo: "acme/blog"},
		},
		{
			name: "all fields",
			config: &cmd.Config{
				Repo:     "acme/blog",
				Remote:   "upstream",
				Host:     "github.example.com",
				APIURL:   "https://github.example.com/api/v3/",
				TokenEnv: "GHE_TOKEN",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")

			if err := SaveConfig(configFile, tt.config); err != nil {
				t.Fatalf("SaveConfig() unexpected error = %v", err)
			}

			// Verify the file was created and can be loaded back
			loadedConfig, err := LoadConfig(configFile)
			if err != nil {
				t.Fatalf("SaveConfig() created invalid file: %v", err)
			}

			if *loadedConfig != *tt.config {
				t.Errorf("SaveConfig() round trip = %+v, want %+v", *loadedConfig, *tt.config)
			}
		})
	}
}
