package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/internal/constants"
	"gopkg.in/yaml.v3"
)

// Config is the persisted CLI configuration, stored as YAML in
// ~/.helix/config.yml. Keys mirror the viper flag names so the file,
// flags, and HELIX_* environment variables all address the same values.
type Config struct {
	ClientID    string `yaml:"client-id,omitempty" json:"client-id,omitempty"`
	AccessToken string `yaml:"token,omitempty"     json:"token,omitempty"`
	API         string `yaml:"api,omitempty"       json:"api,omitempty"`
	Output      string `yaml:"output,omitempty"    json:"output,omitempty"`
}

// loadConfig builds a Config from the effective viper state.
func loadConfig() *Config {
	return &Config{
		ClientID:    viper.GetString("client-id"),
		AccessToken: viper.GetString("token"),
		API:         viper.GetString("api"),
		Output:      viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".helix")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfigStruct writes config to the config file with restrictive
// permissions since it may carry an access token.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment, and the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.AccessToken != "" {
				masked.AccessToken = "***"
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(&masked)
			case OutputFormatYAML:
				return StandardYAMLRenderer(&masked)
			default:
				_, _ = fmt.Fprintf(os.Stdout, "client-id: %s\n", masked.ClientID)
				_, _ = fmt.Fprintf(os.Stdout, "token:     %s\n", masked.AccessToken)
				_, _ = fmt.Fprintf(os.Stdout, "api:       %s\n", masked.API)
				_, _ = fmt.Fprintf(os.Stdout, "output:    %s\n", masked.Output)

				return nil
			}
		},
	}
}

func configKeyValue(config *Config, key string) (string, error) {
	switch key {
	case "client-id":
		return config.ClientID, nil
	case "token":
		return config.AccessToken, nil
	case "api":
		return config.API, nil
	case "output":
		return config.Output, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print a single configuration value (keys: client-id, token, api, output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			value, err := configKeyValue(config, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, value)

			return nil
		},
	}
}

func applyConfigKey(config *Config, key, value string) error {
	switch key {
	case "client-id":
		config.ClientID = value
	case "token":
		config.AccessToken = value
	case "api":
		config.API = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	return nil
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it (keys: client-id, token, api, output)",
		Args:  cobra.ExactArgs(constants.TwoArgumentsMax),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigKey(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Clear a configuration value and persist the change (keys: client-id, token, api, output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigKey(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}
