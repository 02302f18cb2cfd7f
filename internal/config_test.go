package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		LogLevel:           "INFO",
		Embedder:           "skipgram",
		VectorSize:         100,
		MinCount:           5,
		Window:             5,
		Negative:           5,
		Epochs:             5,
		LearningRate:       0.025,
		ClusterCount:       5,
		Seed:               123,
		MaxIterations:      20,
		Workers:            4,
		RedactionCharacter: "*",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Reference values are valid", func(c *Config) {}, false},
		{"Zero vector size is rejected", func(c *Config) { c.VectorSize = 0 }, true},
		{"Zero cluster count is rejected", func(c *Config) { c.ClusterCount = 0 }, true},
		{"Unknown log level is rejected", func(c *Config) { c.LogLevel = "VERBOSE" }, true},
		{"Hashing embedder is valid", func(c *Config) { c.Embedder = "hashing" }, false},
		{"Unknown embedder is rejected", func(c *Config) { c.Embedder = "bert" }, true},
		{"Zero negative samples is rejected", func(c *Config) { c.Negative = 0 }, true},
		{"Redaction character must be one rune", func(c *Config) { c.RedactionCharacter = "**" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			config := validConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("CLUSTER_COUNT", "3")
	t.Setenv("SEED", "42")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(100, config.VectorSize)
	req.Equal(5, config.MinCount)
	req.Equal(3, config.ClusterCount)
	req.Equal(int64(42), config.Seed)
	req.Equal("*", config.RedactionCharacter)
	req.True(config.Colours)
	req.Equal("skipgram", config.Embedder)
}

func TestSplitList(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a", "b", "c"}, SplitList("a, b,,c "))
	req.Nil(SplitList(""))
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("")
	req.Error(err)
}
