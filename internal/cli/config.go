package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the config file. Every field
// can be overridden by the matching command flag.
type Config struct {
	// Skin is the default skin for timing diagrams.
	Skin string `toml:"skin"`

	// Strict disables rendering extensions beyond the reference dialect.
	Strict bool `toml:"strict"`

	// NoCache disables the file cache for render commands.
	NoCache bool `toml:"no_cache"`

	// Addr is the default listen address for the serve command.
	Addr string `toml:"addr"`

	// Redis is the address of a Redis server used as the artifact
	// cache by the serve command. Empty means file cache.
	Redis string `toml:"redis"`

	// MongoURI is the connection string of a MongoDB server used as
	// the gallery store by the serve command. Empty means in-memory.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase overrides the database name for the gallery store.
	MongoDatabase string `toml:"mongo_database"`
}

// loadConfig reads the user's config file. A missing file is not an
// error; flag defaults apply.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configPath returns the config file path using XDG standard
// (~/.config/wavetrace/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
