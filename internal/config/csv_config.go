package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment variables consulted by MergeWithFlags.
const (
	EnvProfile    = "PATHSCOPE_PROFILE"
	EnvAWSProfile = "AWS_PROFILE"
)

// Config represents the pathscope configuration.
type Config struct {
	// Profile is the credentials profile used when none is given.
	Profile string

	// CredentialsFile and AWSConfigFile override the SDK's default
	// shared store locations. Empty means the SDK default.
	CredentialsFile string
	AWSConfigFile   string

	// ShowHidden controls whether `ls` prints dot-files by default.
	ShowHidden bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile:    "default",
		ShowHidden: true,
	}
}

// LoadConfigCSV loads configuration from a CSV file.
// CSV format: key,value pairs with an optional "key,value" header row.
// A missing file yields the defaults.
func LoadConfigCSV(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read config CSV: %w", err)
	}

	for i, record := range records {
		if i == 0 && len(record) >= 2 && strings.ToLower(record[0]) == "key" {
			continue
		}
		if len(record) < 2 {
			continue
		}

		key := strings.TrimSpace(strings.ToLower(record[0]))
		value := strings.TrimSpace(record[1])

		switch key {
		case "profile":
			if value != "" {
				cfg.Profile = value
			}
		case "credentials_file":
			cfg.CredentialsFile = expandHome(value)
		case "aws_config_file":
			cfg.AWSConfigFile = expandHome(value)
		case "show_hidden":
			if v, err := strconv.ParseBool(value); err == nil {
				cfg.ShowHidden = v
			}
		}
	}

	return cfg, nil
}

// SaveConfigCSV saves configuration to a CSV file, creating the parent
// directory if needed.
func SaveConfigCSV(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"key", "value"},
		{"profile", cfg.Profile},
		{"credentials_file", cfg.CredentialsFile},
		{"aws_config_file", cfg.AWSConfigFile},
		{"show_hidden", strconv.FormatBool(cfg.ShowHidden)},
	}
	for _, record := range records {
		// Only write non-empty values to keep file clean
		if record[1] == "" {
			continue
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush config file: %w", err)
	}
	return nil
}

// MergeWithFlags merges config with command-line flags and environment variables.
// Priority: flags > PATHSCOPE_PROFILE > AWS_PROFILE > config file > defaults.
func (c *Config) MergeWithFlags(profile, credentialsFile, awsConfigFile string) {
	if v := os.Getenv(EnvAWSProfile); v != "" {
		c.Profile = v
	}
	if v := os.Getenv(EnvProfile); v != "" {
		c.Profile = v
	}
	if profile != "" {
		c.Profile = profile
	}
	if credentialsFile != "" {
		c.CredentialsFile = expandHome(credentialsFile)
	}
	if awsConfigFile != "" {
		c.AWSConfigFile = expandHome(awsConfigFile)
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Profile) == "" {
		return fmt.Errorf("profile must not be empty")
	}
	if strings.ContainsAny(c.Profile, "[]") {
		return fmt.Errorf("profile %q must not contain brackets", c.Profile)
	}
	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
