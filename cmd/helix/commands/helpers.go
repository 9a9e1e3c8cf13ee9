package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/streamkit-io/helix/pkg/helixclient"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrClientIDRequired  = errors.New("client ID is required (use --client-id, HELIX_CLIENT_ID, or 'helix login')")
	ErrTokenRequired     = errors.New("access token is required (use --token, HELIX_TOKEN, or 'helix login')")
	ErrQueryRequired     = errors.New("search query is required")
	ErrNoLookupSpecified = errors.New("at least one lookup value is required")
	ErrUnknownConfigKey  = errors.New("unknown config key")
)

// CreateClient builds a Helix client from the effective viper configuration.
func CreateClient() (helix.Client, error) {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return nil, ErrClientIDRequired
	}

	config := &helix.Config{
		ClientID:    clientID,
		AccessToken: viper.GetString("token"),
		APIEndpoint: viper.GetString("api"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewCLILogger(true)
	}

	return helixclient.New(config)
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// fetchAllPages drives a cursor-paginated listing. fetch must thread the
// given paginator through each call; iteration stops when the cursor is
// exhausted or after the first page when allPages is false.
func fetchAllPages[T any](fetch func() (*helix.ListResponse[T], error), paginator *helix.Paginator, allPages bool) ([]T, error) {
	var results []T

	for {
		page, err := fetch()
		if err != nil {
			return nil, err
		}

		results = append(results, page.Data...)

		if !allPages || paginator.Cursor() == "" {
			return results, nil
		}
	}
}

// printPageHint tells the user more pages exist when only one was fetched.
func printPageHint(cursor string, allPages bool) {
	if !allPages && cursor != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore results available. Use --all to fetch all pages.\n")
	}
}

// zerologAdapter adapts a zerolog.Logger to the helix.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewCLILogger creates a console logger for the HTTP layer.
func NewCLILogger(verbose bool) helix.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zerologAdapter{logger: logger}
}

func (z *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}
