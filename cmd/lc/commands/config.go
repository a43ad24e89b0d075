package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lendingclub/internal/auth"
	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// Configuration keys, shared by the config file, viper and LC_ environment variables.
const (
	keyAPIKey     = "api_key"
	keyInvestorID = "investor_id"
	keyEndpoint   = "endpoint"
	keyOutput     = "output"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey     string `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	InvestorID string `json:"investor_id,omitempty" yaml:"investor_id,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"    yaml:"endpoint,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
}

func (c *Config) field(key string) (*string, error) {
	switch key {
	case keyAPIKey:
		return &c.APIKey, nil
	case keyInvestorID:
		return &c.InvestorID, nil
	case keyEndpoint:
		return &c.Endpoint, nil
	case keyOutput:
		return &c.Output, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid keys: %s, %s, %s, %s)",
			constants.ErrUnknownConfigKey, key, keyAPIKey, keyInvestorID, keyEndpoint, keyOutput)
	}
}

func (c *Config) record() lendingclub.Record {
	apiKey := ""
	if c.APIKey != "" {
		apiKey = auth.Mask(c.APIKey)
	}

	return lendingclub.NewRecord(map[string]interface{}{
		keyAPIKey:     apiKey,
		keyInvestorID: c.InvestorID,
		keyEndpoint:   c.Endpoint,
		keyOutput:     c.Output,
	}, keyAPIKey, keyInvestorID, keyEndpoint, keyOutput)
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the lc CLI configuration stored in $HOME/.lc/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			return renderRecord(cmd.OutOrStdout(), config.record())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys are api_key, investor_id, endpoint and output.",
		Args:  cobra.ExactArgs(constants.ConfigSetArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if key == keyOutput {
				switch value {
				case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
				default:
					return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
				}
			}

			if key == keyInvestorID {
				err := lendingclub.ValidatePathComponent(value)
				if err != nil {
					return fmt.Errorf("invalid investor ID: %w", err)
				}
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			field, err := config.field(key)
			if err != nil {
				return err
			}

			*field = value

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			display := value
			if key == keyAPIKey {
				display = auth.Mask(value)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "set", key, display)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			field, err := config.field(args[0])
			if err != nil {
				return err
			}

			*field = ""

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "unset", args[0], "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}
}

// configFilePath returns the config file in use, or $HOME/.lc/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	if configFile := viper.GetString("config"); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".lc", "config.yml"), nil
}

// loadConfig reads the config file. A missing file is an empty config.
func loadConfig() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// #nosec G304 -- the path comes from --config or the user's home directory
	data, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func outputConfigUpdateResult(w io.Writer, action, key, value string) error {
	fields := map[string]interface{}{
		"action": action,
		"key":    key,
	}

	if value != "" {
		fields["value"] = value
	}

	return renderRecord(w, lendingclub.NewRecord(fields, "action", "key", "value"))
}
