package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"gopkg.in/yaml.v2"
)

// Config provides the settings of a terminal game
type Config struct {
	Players   int           `yaml:"players" envconfig:"players"`
	HumanName string        `yaml:"humanName" envconfig:"human_name"`
	HandSize  int           `yaml:"handSize" envconfig:"hand_size"`
	Delay     time.Duration `yaml:"delay" envconfig:"delay"`
}

func Default() Config {
	return Config{
		Players:   consts.DefaultPlayers,
		HumanName: "You",
		HandSize:  consts.DefaultHandSize,
		Delay:     time.Second,
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// UNO_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.Open(path)
	if err != nil && !os.IsNotExist(err) {
		return config, err
	}
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return config, err
		}
	}

	if err := envconfig.Process("uno", &config); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the settings a game can be started with
func (c Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return consts.ErrorsPlayersInvalid
	}
	// every hand plus the first card has to come out of one standard deck
	if c.HandSize <= 0 || c.Players*c.HandSize >= card.StandardSize {
		return consts.ErrorsHandSizeInvalid
	}
	return nil
}

// Getenv returns the environment variable or the fallback if it is not set
func Getenv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// File is where the terminal game looks for its settings
func File() string {
	return Getenv("UNO_CONFIG_FILE", "uno.yaml")
}
