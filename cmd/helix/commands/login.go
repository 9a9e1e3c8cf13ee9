package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/streamkit-io/helix/pkg/helixclient"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		clientID string
		token    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Helix credentials",
		Long:  "Verify a client ID and user access token against the API and persist them",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get client ID
			if clientID == "" {
				clientID = viper.GetString("client-id")
			}

			if clientID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Client ID: ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientID == "" {
				return ErrClientIDRequired
			}

			// Get access token, hidden at the prompt
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Access token: ")
				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(string(byteToken))
				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			// Create client
			client, err := helixclient.New(&helix.Config{
				ClientID:    clientID,
				AccessToken: token,
				APIEndpoint: viper.GetString("api"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials by fetching the authenticated user
			ctx := context.Background()

			users, err := client.Users().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			// Persist configuration
			config := loadConfig()
			config.ClientID = clientID
			config.AccessToken = token

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			if len(users.Data) > 0 {
				fmt.Printf("Successfully logged in as %s\n", users.Data[0].Login)
			} else {
				fmt.Println("Successfully logged in")
			}

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVar(&clientID, "client-id", "", "application client ID")
	cmd.Flags().StringVarP(&token, "token", "t", "", "user access token")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		Long:  "Remove the persisted access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.AccessToken = ""

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
