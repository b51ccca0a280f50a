package converge

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrIllegalArity    = errors.New("illegal arity")
	ErrIllegalRange    = errors.New("illegal range")
	ErrIllegalAttempts = errors.New("illegal attempts")
)

type Config struct {
	Target      int `yaml:"target"`   // Value every position must reach.
	Arity       int `yaml:"arity"`    // Tuple length.
	Min         int `yaml:"min"`      // Smallest value enumerated.
	Max         int `yaml:"max"`      // Exclusive upper bound of values enumerated.
	MaxAttempts int `yaml:"attempts"` // Steps simulated per check.
}

// DefaultConfig searches 4-tuples over [0,10) for convergence to 4.
func DefaultConfig() Config {
	return Config{
		Target:      4,
		Arity:       4,
		Min:         0,
		Max:         10,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("Target=%d Arity=%d Min=%d Max=%d MaxAttempts=%d",
		c.Target, c.Arity, c.Min, c.Max, c.MaxAttempts)
}

func (c *Config) Validate() error {
	if c.Arity < 1 {
		return errors.Wrapf(ErrIllegalArity, "arity=%d", c.Arity)
	}
	if c.Max <= c.Min {
		return errors.Wrapf(ErrIllegalRange, "min=%d max=%d", c.Min, c.Max)
	}
	if c.MaxAttempts < 0 {
		return errors.Wrapf(ErrIllegalAttempts, "attempts=%d", c.MaxAttempts)
	}
	return nil
}

// LoadConfig reads YAML from path over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return c, nil
}
