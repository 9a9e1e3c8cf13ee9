package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/internal/constants"
	"github.com/streamkit-io/helix/pkg/helix"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Look up users",
		Long:    "Look up Twitch users and manage the authenticated user",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersFollowedCommand())
	cmd.AddCommand(newUsersUpdateDescriptionCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "get [LOGIN...]",
		Short: "Get users",
		Long:  "Look up users by login name or ID; with no arguments, the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersGetCommand(args, ids)
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "look up by user ID (repeatable)")

	return cmd
}

func runUsersGetCommand(logins, ids []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var params *helix.UsersListParams
	if len(logins) > 0 || len(ids) > 0 {
		params = &helix.UsersListParams{
			IDs:    ids,
			Logins: logins,
		}
	}

	users, err := client.Users().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to look up users: %w", err)
	}

	return outputUsers(users.Data)
}

func outputUsers(users []helix.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		return renderUserTable(users)
	}
}

func renderUserTable(users []helix.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Login", "Display Name", "ID", "Type", "Created")

	for _, user := range users {
		_ = table.Append(user.Login, user.DisplayName, user.ID,
			user.BroadcasterType,
			user.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	return nil
}

func newUsersFollowedCommand() *cobra.Command {
	var (
		allPages      bool
		first         int
		broadcasterID string
	)

	cmd := &cobra.Command{
		Use:   "followed USER_ID",
		Short: "List followed channels",
		Long:  "List the channels a user follows (requires a token with the user:read:follows scope)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersFollowedCommand(args[0], broadcasterID, first, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&broadcasterID, "broadcaster-id", "", "check a single broadcaster")

	return cmd
}

func runUsersFollowedCommand(userID, broadcasterID string, first int, allPages bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)

	params := &helix.FollowedChannelsParams{
		UserID:        userID,
		BroadcasterID: broadcasterID,
		First:         first,
		Paginator:     paginator,
	}

	followed, err := fetchAllPages(func() (*helix.ListResponse[helix.FollowedChannel], error) {
		return client.Users().ListFollowed(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to list followed channels: %w", err)
	}

	return outputFollowedChannels(followed, paginator.Cursor(), allPages)
}

func outputFollowedChannels(followed []helix.FollowedChannel, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(followed)
	case OutputFormatYAML:
		return StandardYAMLRenderer(followed)
	default:
		return renderFollowedChannelsTable(followed, cursor, allPages)
	}
}

func renderFollowedChannelsTable(followed []helix.FollowedChannel, cursor string, allPages bool) error {
	if len(followed) == 0 {
		_, _ = os.Stdout.WriteString("No followed channels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Broadcaster", "Login", "ID", "Followed")

	for _, channel := range followed {
		_ = table.Append(channel.BroadcasterName, channel.BroadcasterLogin,
			channel.BroadcasterID,
			channel.FollowedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}

func newUsersUpdateDescriptionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-description DESCRIPTION",
		Short: "Update the channel description",
		Long:  "Update the authenticated user's channel description (requires a token with the user:edit scope)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersUpdateDescriptionCommand(strings.Join(args, " "))
		},
	}
}

func runUsersUpdateDescriptionCommand(description string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	users, err := client.Users().UpdateDescription(ctx, description)
	if err != nil {
		return fmt.Errorf("failed to update description: %w", err)
	}

	if len(users.Data) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated description for '%s'\n", users.Data[0].Login)
	} else {
		_, _ = os.Stdout.WriteString("Successfully updated description\n")
	}

	return nil
}
