package internal

import (
	"fmt"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogLevel           string  `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	InputFile          string  `env:"INPUT_FILE"`
	Embedder           string  `env:"EMBEDDER,default=skipgram" validate:"oneof=skipgram hashing"`
	VectorSize         int     `env:"VECTOR_SIZE,default=100" validate:"gt=0"`
	MinCount           int     `env:"MIN_COUNT,default=5" validate:"gt=0"`
	Window             int     `env:"WINDOW,default=5" validate:"gt=0"`
	Negative           int     `env:"NEGATIVE,default=5" validate:"gt=0"`
	Epochs             int     `env:"EPOCHS,default=5" validate:"gt=0"`
	LearningRate       float64 `env:"LEARNING_RATE,default=0.025" validate:"gt=0"`
	ClusterCount       int     `env:"CLUSTER_COUNT,default=5" validate:"gt=0"`
	Seed               int64   `env:"SEED,default=123"`
	MaxIterations      int     `env:"MAX_ITERATIONS,default=20" validate:"gt=0"`
	Workers            int     `env:"WORKERS,default=4" validate:"gt=0"`
	StopWordsExtra     string  `env:"STOP_WORDS_EXTRA"`
	RedactedWords      string  `env:"REDACTED_WORDS"`
	RedactionCharacter string  `env:"REDACTION_CHARACTER,default=*"`
	Colours            bool    `env:"COLOURS,default=true"`
	BadgerFilepath     string  `env:"BADGER_FILEPATH"`
	BlugeFilepath      string  `env:"BLUGE_FILEPATH"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the .env file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := CharacterRune(c.RedactionCharacter); err != nil {
		return err
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"REDACTION_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// SplitList turns "a, b,,c" into [a b c].
func SplitList(str string) []string {
	var out []string
	for _, part := range strings.Split(str, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
