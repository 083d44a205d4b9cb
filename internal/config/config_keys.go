// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI and MCP interfaces, where config is accessed
// by dotted keys (e.g., "parse.canonical_order").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to false". Defaults only apply when the
// user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"parse.canonical_order", "parse.strict_numerals",
		"limits.max_line_length",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "parse.canonical_order":
		return strconv.FormatBool(c.CanonicalOrder()), nil
	case "parse.strict_numerals":
		return strconv.FormatBool(c.StrictNumerals()), nil
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "parse.canonical_order":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Parse.CanonicalOrder = &b
	case "parse.strict_numerals":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Parse.StrictNumerals = &b
	case "limits.max_line_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxLineLength || n > MaxMaxLineLength {
			return fmt.Errorf("%w: limits.max_line_length must be an integer between %d and %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength)
		}
		c.Limits.MaxLineLength = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	v := strings.ToLower(value)
	if v != "true" && v != "false" {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	return v == "true", nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"parse.canonical_order":  strconv.FormatBool(c.CanonicalOrder()),
		"parse.strict_numerals":  strconv.FormatBool(c.StrictNumerals()),
		"limits.max_line_length": strconv.Itoa(c.MaxLineLength()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "parse.canonical_order":
		return c.Parse.CanonicalOrder != nil
	case "parse.strict_numerals":
		return c.Parse.StrictNumerals != nil
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	default:
		return false
	}
}
