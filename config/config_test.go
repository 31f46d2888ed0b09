package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	clear1 := setEnv("UNO_HAND_SIZE", "3")
	defer clear1()

	cfg, err := config.Load("testdata/uno.yaml")
	require.NoError(t, err)

	a := assert.New(t)
	a.Equal(6, cfg.Players)
	a.Equal("Anna", cfg.HumanName)
	a.Equal(3, cfg.HandSize)
	a.Equal(250*time.Millisecond, cfg.Delay)
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("testdata/missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadBrokenFile(t *testing.T) {
	_, err := config.Load("testdata/broken.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	scenarios := []struct {
		description string
		players     int
		handSize    int
		expected    error
	}{
		{"too_few_players", 1, 7, consts.ErrorsPlayersInvalid},
		{"too_many_players", 11, 7, consts.ErrorsPlayersInvalid},
		{"empty_hands", 4, 0, consts.ErrorsHandSizeInvalid},
		{"hands_larger_than_the_deck", 10, 11, consts.ErrorsHandSizeInvalid},
		{"no_card_left_to_turn_over", 4, 26, consts.ErrorsHandSizeInvalid},
		{"one_card_left_to_turn_over", 3, 34, nil},
		{"two_players", 2, 7, nil},
		{"ten_players", 10, 1, nil},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			cfg := config.Default()
			cfg.Players = scenario.players
			cfg.HandSize = scenario.handSize
			assert.Equal(t, scenario.expected, cfg.Validate())
		})
	}
}

func TestFile(t *testing.T) {
	clear1 := setEnv("UNO_CONFIG_FILE", "testdata/uno.yaml")
	assert.Equal(t, "testdata/uno.yaml", config.File())
	clear1()

	_ = os.Unsetenv("UNO_CONFIG_FILE")
	assert.Equal(t, "uno.yaml", config.File())
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
