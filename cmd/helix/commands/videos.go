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

// NewVideosCommand creates the videos command group.
func NewVideosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "videos",
		Aliases: []string{"video", "vods"},
		Short:   "Browse videos",
		Long:    "List published videos by ID, broadcaster, or game",
	}

	cmd.AddCommand(newVideosListCommand())

	return cmd
}

func newVideosListCommand() *cobra.Command {
	var (
		allPages  bool
		first     int
		ids       []string
		userID    string
		gameID    string
		period    string
		sort      string
		videoType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List videos",
		Long:  "List videos filtered by ID, broadcaster, or game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ids) == 0 && userID == "" && gameID == "" {
				return ErrNoLookupSpecified
			}

			params := &helix.VideosListParams{
				IDs:    ids,
				UserID: userID,
				GameID: gameID,
				Period: period,
				Sort:   sort,
				Type:   videoType,
				First:  first,
			}

			return runVideosListCommand(params, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "look up by video ID (repeatable)")
	cmd.Flags().StringVar(&userID, "user-id", "", "filter by broadcaster ID")
	cmd.Flags().StringVar(&gameID, "game-id", "", "filter by game ID")
	cmd.Flags().StringVar(&period, "period", "", "filter by period (day, month, week, all)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order (time, trending, views)")
	cmd.Flags().StringVar(&videoType, "type", "", "filter by type (all, archive, highlight, upload)")

	return cmd
}

func runVideosListCommand(params *helix.VideosListParams, allPages bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)
	params.Paginator = paginator

	videos, err := fetchAllPages(func() (*helix.ListResponse[helix.Video], error) {
		return client.Videos().List(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to list videos: %w", err)
	}

	return outputVideos(videos, paginator.Cursor(), allPages)
}

func outputVideos(videos []helix.Video, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(videos)
	case OutputFormatYAML:
		return StandardYAMLRenderer(videos)
	default:
		return renderVideoTable(videos, cursor, allPages)
	}
}

func renderVideoTable(videos []helix.Video, cursor string, allPages bool) error {
	if len(videos) == 0 {
		_, _ = os.Stdout.WriteString("No videos found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Broadcaster", "Type", "Duration", "Views", "Published")

	for _, video := range videos {
		_ = table.Append(video.Title, video.UserLogin, video.Type,
			video.Duration,
			strconv.Itoa(video.ViewCount),
			video.PublishedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}
