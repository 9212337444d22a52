package trp

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultMaxCandidates matches the capacity of the classic Tideman exercise.
const DefaultMaxCandidates = 9

// Policy decides what happens to the run when a ballot fails validation.
type Policy string

const (
	// PolicyAbort stops the whole election on the first invalid ballot.
	PolicyAbort Policy = "abort"
	// PolicyRetry asks the voter again, or drops the ballot when nobody can be asked.
	PolicyRetry Policy = "retry"
)

// Config holds the knobs of an election run.
type Config struct {
	MaxCandidates int    `yaml:"max_candidates" validate:"min=1"`
	InvalidBallot Policy `yaml:"invalid_ballot" validate:"oneof=abort retry"`
}

var validate = validator.New()

func DefaultConfig() Config {
	return Config{
		MaxCandidates: DefaultMaxCandidates,
		InvalidBallot: PolicyAbort,
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig overlays YAML from r onto c. Keys absent from the document keep their current values.
func (c Config) LoadConfig(r io.Reader) (Config, error) {
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return c, nil
}

// LoadConfigFile is LoadConfig for a path on disk.
func (c Config) LoadConfigFile(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return c.LoadConfig(f)
}

// FromEnv overlays TIDEMAN_MAX_CANDIDATES and TIDEMAN_INVALID_BALLOT when they are set.
func (c Config) FromEnv(getenv func(string) string) (Config, error) {
	if s := getenv("TIDEMAN_MAX_CANDIDATES"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TIDEMAN_MAX_CANDIDATES %q: %w", s, err)
		}
		c.MaxCandidates = n
	}
	if s := getenv("TIDEMAN_INVALID_BALLOT"); s != "" {
		c.InvalidBallot = Policy(s)
	}
	return c, nil
}
