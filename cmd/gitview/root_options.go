package main

import (
	"github.com/rgilmutdinov/gitview/pkg/repo"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	repoPath   string
	configPath string
}

// openRepo opens the repository named by --repo. "." falls back to upward
// discovery so the tool works from anywhere inside a working tree.
func (o *rootOptions) openRepo() (*repo.Repo, error) {
	if o.repoPath == "." {
		return repo.Discover(".")
	}
	return repo.Open(o.repoPath)
}

// loadConfig reads the viewer config named by --config, defaulting to
// gitview.toml in the current directory. A missing file yields defaults.
func (o *rootOptions) loadConfig() (*repo.Config, error) {
	path := o.configPath
	if path == "" {
		path = "gitview.toml"
	}
	return repo.LoadConfig(path)
}
