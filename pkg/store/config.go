package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where the vault and the settings live.
type Config interface {
	// VaultPath is the root directory backing files are resolved against.
	VaultPath() string
	// HomePath is the directory holding persisted settings and logs.
	HomePath() string
	// ConfigFile is the config file that was read, or "".
	ConfigFile() string
}

// LoadConfig reads .sidelist.yaml and SIDELIST_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("vault", ".")
	v.SetDefault("home", "~/.sidelist")
	v.SetConfigName(".sidelist") // .yaml is implicit
	v.SetEnvPrefix("SIDELIST")
	v.AutomaticEnv()

	if override := os.Getenv("SIDELIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	vault, err := homedir.Expand(v.GetString("vault"))
	if err != nil {
		return nil, fmt.Errorf("store: expand vault path: %w", err)
	}
	home, err := homedir.Expand(v.GetString("home"))
	if err != nil {
		return nil, fmt.Errorf("store: expand home path: %w", err)
	}
	return &fileConfig{Vault: vault, Home: home, File: v.ConfigFileUsed()}, nil
}

// StaticConfig returns a Config with fixed paths.
func StaticConfig(vault, home string) Config {
	return &fileConfig{Vault: vault, Home: home}
}

type fileConfig struct {
	Vault string `json:"vault"`
	Home  string `json:"home"`
	File  string `json:"file,omitempty"`
}

func (f *fileConfig) VaultPath() string { return f.Vault }

func (f *fileConfig) HomePath() string { return f.Home }

func (f *fileConfig) ConfigFile() string { return f.File }
