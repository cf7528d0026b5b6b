package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Planner.Timeout <= 0 {
		return fmt.Errorf("planner.timeout must be positive (got %v)", c.Planner.Timeout)
	}
	if c.Planner.Model == "" {
		return fmt.Errorf("planner.model must not be empty")
	}

	if c.Command.MaxActions < 1 {
		return fmt.Errorf("command.max_actions must be >= 1 (got %d)", c.Command.MaxActions)
	}
	if c.Command.SimilarityThreshold <= 0 || c.Command.SimilarityThreshold > 1 {
		return fmt.Errorf("command.similarity_threshold must be in (0, 1] (got %v)", c.Command.SimilarityThreshold)
	}
	if c.Command.MaxCommandLength < 1 {
		return fmt.Errorf("command.max_command_length must be >= 1 (got %d)", c.Command.MaxCommandLength)
	}

	return nil
}
