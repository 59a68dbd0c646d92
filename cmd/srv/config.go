package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/collabflow/backend/config"
	"github.com/urfave/cli/v2"
)

// loadConfig reads the toml configuration file, then lets a few environment
// variables override it for deployments that cannot ship a file.
func (s *srv) loadConfig(cctx *cli.Context) error {
	configs := config.Configs{}
	if _, err := toml.DecodeFile(cctx.String("config"), &configs); err != nil {
		return err
	}

	if env := os.Getenv("ENV"); env != "" {
		configs.Env = env
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		configs.Database.Host = host
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		configs.Database.Password = password
	}

	if secret := os.Getenv("TOKEN_SECRET"); secret != "" {
		configs.Auth.TokenSecret = secret
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		configs.Session.Secret = secret
	}

	s.configs = &configs
	return nil
}
