// Package config implements the config command for initializing and updating gmeek-pub configuration.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/alan/gmeek-pub/internal/gitremote"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	var provided cmd.Config

	cobraCmd := createConfigCommand(globalConfigFile, &provided, loadConfig, saveConfig)
	addConfigFlags(cobraCmd, &provided)

	return cobraCmd
}

// createConfigCommand creates the basic config command structure
func createConfigCommand(globalConfigFile *string, provided *cmd.Config, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Initialize a .gmeek-pub.yaml configuration file",
		Long: `Config creates or updates the .gmeek-pub.yaml file that tells gmeek-pub
which GitHub repository to publish to.

When run from a git repository, the repository is detected from the
configured remote (origin by default), so later publishes skip detection
and never prompt.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigWithGitDetection(c.Context(), c.OutOrStdout(), *globalConfigFile, *provided, defaultResolver, loadConfig, saveConfig)
		},
	}
}

// addConfigFlags adds all flags to the config command
func addConfigFlags(cobraCmd *cobra.Command, provided *cmd.Config) {
	cobraCmd.Flags().StringVarP(&provided.Repo, "repo", "r", "", "GitHub repository as owner/repo (auto-detected from git if available)")
	cobraCmd.Flags().StringVar(&provided.Remote, "remote", "", "Git remote used for detection (default \"origin\")")
	cobraCmd.Flags().StringVar(&provided.Host, "host", "", "Git host matched in remote URLs (default \"github.com\")")
	cobraCmd.Flags().StringVar(&provided.APIURL, "api-url", "", "GitHub API URL, for GitHub Enterprise")
	cobraCmd.Flags().StringVar(&provided.TokenEnv, "token-env", "", "Environment variable holding the API token (default \"GITHUB_TOKEN\")")
}

// defaultResolver detects the repository from the current directory
func defaultResolver(config cmd.Config) gitremote.Resolver {
	return gitremote.Chain{
		gitremote.NewCLIResolver(config.Remote, config.Host),
		gitremote.NewRepositoryResolver(".", config.Remote, config.Host),
	}
}

// runConfigWithGitDetection handles config creation with git auto-detection
func runConfigWithGitDetection(ctx context.Context, out io.Writer, configFile string, provided cmd.Config, newResolver func(cmd.Config) gitremote.Resolver, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) error {
	config, isUpdate, err := loadOrCreateConfig(configFile, loadConfig)
	if err != nil {
		return err
	}

	merged := config.Merge(provided)
	config = &merged

	if config.Repo == "" {
		if repo, ok := newResolver(config.WithDefaults()).ResolveRemote(ctx); ok {
			config.Repo = repo.String()
			slog.Info("Auto-detected repository", "repo", config.Repo)
		}
	}

	if config.Repo == "" {
		return fmt.Errorf("repository is required (use --repo flag or run from a git repository)")
	}
	repo, err := cmd.ParseRepoID(config.Repo)
	if err != nil {
		return err
	}
	config.Repo = repo.String()

	if err := saveConfig(configFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayConfigSuccess(out, configFile, config, isUpdate)
	return nil
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(out io.Writer, configFile string, config *cmd.Config, isUpdate bool) {
	action := "initialized"
	if isUpdate {
		action = "updated"
	}
	effective := config.WithDefaults()
	fmt.Fprintf(out, "Successfully %s %s with:\n", action, configFile)
	fmt.Fprintf(out, "  Repository: %s\n", effective.Repo)
	fmt.Fprintf(out, "  Remote: %s\n", effective.Remote)
	fmt.Fprintf(out, "  API URL: %s\n", effective.APIURL)
	fmt.Fprintf(out, "  Token Variable: %s\n", effective.TokenEnv)
}

// loadOrCreateConfig loads existing config or creates a new one
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) (*cmd.Config, bool, error) {
	config, err := loadConfig(configFile)
	if err != nil {
		return nil, false, err
	}
	return config, *config != (cmd.Config{}), nil
}
