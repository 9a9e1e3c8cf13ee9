package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/internal/constants"
	"github.com/streamkit-io/helix/pkg/helix"
)

// NewStreamsCommand creates the streams command group.
func NewStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streams",
		Aliases: []string{"stream"},
		Short:   "Browse live streams",
		Long:    "List live streams, optionally filtered by broadcaster, game, or language",
	}

	cmd.AddCommand(newStreamsListCommand())

	return cmd
}

func newStreamsListCommand() *cobra.Command {
	var (
		allPages   bool
		first      int
		userIDs    []string
		userLogins []string
		gameIDs    []string
		streamType string
		language   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List streams",
		Long:  "List live streams ordered by viewer count",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &helix.StreamsListParams{
				UserIDs:    userIDs,
				UserLogins: userLogins,
				GameIDs:    gameIDs,
				Type:       streamType,
				Language:   language,
				First:      first,
			}

			return runStreamsListCommand(params, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringSliceVar(&userIDs, "user-id", nil, "filter by broadcaster ID (repeatable)")
	cmd.Flags().StringSliceVar(&userLogins, "user-login", nil, "filter by broadcaster login (repeatable)")
	cmd.Flags().StringSliceVar(&gameIDs, "game-id", nil, "filter by game ID (repeatable)")
	cmd.Flags().StringVar(&streamType, "type", "", "filter by stream type (all, live)")
	cmd.Flags().StringVar(&language, "language", "", "filter by broadcast language")

	return cmd
}

func runStreamsListCommand(params *helix.StreamsListParams, allPages bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)
	params.Paginator = paginator

	streams, err := fetchAllPages(func() (*helix.ListResponse[helix.Stream], error) {
		return client.Streams().List(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to list streams: %w", err)
	}

	return outputStreams(streams, paginator.Cursor(), allPages)
}

func outputStreams(streams []helix.Stream, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(streams)
	case OutputFormatYAML:
		return StandardYAMLRenderer(streams)
	default:
		return renderStreamTable(streams, cursor, allPages)
	}
}

func renderStreamTable(streams []helix.Stream, cursor string, allPages bool) error {
	if len(streams) == 0 {
		_, _ = os.Stdout.WriteString("No streams found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Broadcaster", "Game", "Viewers", "Language", "Title")

	for _, stream := range streams {
		_ = table.Append(stream.UserLogin, stream.GameName,
			strconv.Itoa(stream.ViewerCount),
			stream.Language, stream.Title)
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}
