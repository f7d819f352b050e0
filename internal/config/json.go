package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonConfig is the on-disk form. Pointer fields distinguish "absent" from
// a zero value, so a file only overrides what it mentions.
type jsonConfig struct {
	Users     []string `json:"users"`
	Shadow    *string  `json:"shadow"`
	Alphabet  *string  `json:"alphabet"`
	MinLength *int     `json:"min_length"`
	MaxLength *int     `json:"max_length"`
	Workers   *int     `json:"workers"`
	RateLimit *int     `json:"rate_limit"`
	Progress  *string  `json:"progress"`
	Verbose   *bool    `json:"verbose"`
	Quiet     *bool    `json:"quiet"`
	Algorithm *string  `json:"algorithm"`
}

// parseJSON overlays cfg with the values present in the file at path.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if jc.Users != nil {
		cfg.Users = jc.Users
	}
	set(&cfg.ShadowPath, jc.Shadow)
	set(&cfg.Alphabet, jc.Alphabet)
	set(&cfg.MinLength, jc.MinLength)
	set(&cfg.MaxLength, jc.MaxLength)
	set(&cfg.Workers, jc.Workers)
	set(&cfg.RateLimit, jc.RateLimit)
	set(&cfg.Progress, jc.Progress)
	set(&cfg.Verbose, jc.Verbose)
	set(&cfg.Quiet, jc.Quiet)
	set(&cfg.Algorithm, jc.Algorithm)
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
