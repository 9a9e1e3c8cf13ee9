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

// NewChannelsCommand creates the channels command group.
func NewChannelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channels",
		Aliases: []string{"channel"},
		Short:   "Look up and search channels",
		Long:    "Look up channel broadcast settings and search channels by name",
	}

	cmd.AddCommand(newChannelsGetCommand())
	cmd.AddCommand(newChannelsSearchCommand())

	return cmd
}

func newChannelsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BROADCASTER_ID...",
		Short: "Get channel information",
		Long:  "Display broadcast settings for one or more channels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChannelsGetCommand(args)
		},
	}
}

func runChannelsGetCommand(broadcasterIDs []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	channels, err := client.Channels().List(ctx, &helix.ChannelsListParams{
		BroadcasterIDs: broadcasterIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to look up channels: %w", err)
	}

	return outputChannels(channels.Data)
}

func outputChannels(channels []helix.ChannelInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(channels)
	case OutputFormatYAML:
		return StandardYAMLRenderer(channels)
	default:
		return renderChannelTable(channels)
	}
}

func renderChannelTable(channels []helix.ChannelInfo) error {
	if len(channels) == 0 {
		_, _ = os.Stdout.WriteString("No channels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Broadcaster", "Game", "Language", "Title", "Tags")

	for _, channel := range channels {
		_ = table.Append(channel.BroadcasterLogin, channel.GameName,
			channel.BroadcasterLanguage, channel.Title,
			strings.Join(channel.Tags, ", "))
	}

	_ = table.Render()

	return nil
}

func newChannelsSearchCommand() *cobra.Command {
	var (
		allPages bool
		first    int
		liveOnly bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search channels",
		Long:  "Search channels whose name or description matches the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChannelsSearchCommand(strings.Join(args, " "), liveOnly, first, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(&liveOnly, "live-only", false, "only return live channels")

	return cmd
}

func runChannelsSearchCommand(query string, liveOnly bool, first int, allPages bool) error {
	if query == "" {
		return ErrQueryRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)

	params := &helix.ChannelSearchParams{
		Query:     query,
		LiveOnly:  liveOnly,
		First:     first,
		Paginator: paginator,
	}

	results, err := fetchAllPages(func() (*helix.ListResponse[helix.ChannelSearchResult], error) {
		return client.Channels().Search(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to search channels: %w", err)
	}

	return outputChannelSearchResults(results, paginator.Cursor(), allPages)
}

func outputChannelSearchResults(results []helix.ChannelSearchResult, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(results)
	case OutputFormatYAML:
		return StandardYAMLRenderer(results)
	default:
		return renderChannelSearchTable(results, cursor, allPages)
	}
}

func renderChannelSearchTable(results []helix.ChannelSearchResult, cursor string, allPages bool) error {
	if len(results) == 0 {
		_, _ = os.Stdout.WriteString("No channels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Channel", "Game", "Live", "Language", "Title")

	for _, result := range results {
		live := "no"
		if result.IsLive {
			live = "yes"
		}

		_ = table.Append(result.BroadcasterLogin, result.GameName, live,
			result.BroadcasterLanguage, result.Title)
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}
