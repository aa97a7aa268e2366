package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alan/gmeek-pub/cmd"
	"github.com/alan/gmeek-pub/internal/github"
	"github.com/alan/gmeek-pub/internal/gitremote"
)

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ConfigFile   *string
	LoadConfig   func(string) (*cmd.Config, error)
	Overrides    cmd.Config // values from command-line flags, applied over the file
	Getenv       func(string) string
	GitHubClient *github.Client
	Context      context.Context
	Config       cmd.Config
	Token        string
}

// Init loads configuration, reads the token and creates the GitHub client.
// An empty token is not an error here; the publisher reports it.
func (bc *BaseCommand) Init(ctx context.Context) error {
	config, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return err
	}
	bc.Config = config.Merge(bc.Overrides).WithDefaults()

	bc.Token = bc.getenv(bc.Config.TokenEnv)
	bc.Context = ctx

	client, err := github.NewClient(ctx, bc.Token, bc.Config.APIURL)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}
	bc.GitHubClient = client

	return nil
}

// Repo returns the configured repository, zero when detection should be used
func (bc *BaseCommand) Repo() (cmd.RepoID, error) {
	if bc.Config.Repo == "" {
		return cmd.RepoID{}, nil
	}
	return cmd.ParseRepoID(bc.Config.Repo)
}

// Resolver returns the repository detection chain: the git binary first,
// then reading .git/config directly
func (bc *BaseCommand) Resolver(dir string) gitremote.Resolver {
	return gitremote.Chain{
		gitremote.NewCLIResolver(bc.Config.Remote, bc.Config.Host),
		gitremote.NewRepositoryResolver(dir, bc.Config.Remote, bc.Config.Host),
	}
}

func (bc *BaseCommand) getenv(key string) string {
	if bc.Getenv != nil {
		return bc.Getenv(key)
	}
	return os.Getenv(key)
}
