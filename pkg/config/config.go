package config

import "fmt"

// Config holds the settings for a generation or cleanup run.
type Config struct {
	Dir     string
	Sizes   []int
	Smooth  bool
	ICO     bool
	SVG     bool
	Verbose bool
}

// MaxSize is the largest accepted icon size in pixels.
const MaxSize = 4096

// MaxICOSize is the largest size the ICO format can encode.
const MaxICOSize = 256

func (c *Config) Validate() []error {
	var errors []error

	if c.Dir == "" {
		errors = append(errors, fmt.Errorf("output directory must not be empty"))
	}

	if len(c.Sizes) == 0 {
		errors = append(errors, fmt.Errorf("at least one size is required"))
	}

	for _, size := range c.Sizes {
		if err := validateSize(size); err != nil {
			errors = append(errors, err)
			continue
		}

		if c.ICO && size > MaxICOSize {
			errors = append(errors, fmt.Errorf("size %d exceeds the ICO limit of %d, drop '--ico' or the size", size, MaxICOSize))
		}
	}

	return errors
}

func validateSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%d not in [1, %d]", size, MaxSize)
	}

	return nil
}
