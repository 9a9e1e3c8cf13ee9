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

// NewClipsCommand creates the clips command group.
func NewClipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clips",
		Aliases: []string{"clip"},
		Short:   "Browse and create clips",
		Long:    "List clips by broadcaster, game, or ID, and create new clips",
	}

	cmd.AddCommand(newClipsListCommand())
	cmd.AddCommand(newClipsCreateCommand())

	return cmd
}

func newClipsListCommand() *cobra.Command {
	var (
		allPages      bool
		first         int
		broadcasterID string
		gameID        string
		ids           []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clips",
		Long:  "List clips filtered by broadcaster, game, or clip ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if broadcasterID == "" && gameID == "" && len(ids) == 0 {
				return ErrNoLookupSpecified
			}

			params := &helix.ClipsListParams{
				BroadcasterID: broadcasterID,
				GameID:        gameID,
				IDs:           ids,
				First:         first,
			}

			return runClipsListCommand(params, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&broadcasterID, "broadcaster-id", "", "filter by broadcaster ID")
	cmd.Flags().StringVar(&gameID, "game-id", "", "filter by game ID")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "look up by clip ID (repeatable)")

	return cmd
}

func runClipsListCommand(params *helix.ClipsListParams, allPages bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)
	params.Paginator = paginator

	clips, err := fetchAllPages(func() (*helix.ListResponse[helix.Clip], error) {
		return client.Clips().List(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to list clips: %w", err)
	}

	return outputClips(clips, paginator.Cursor(), allPages)
}

func outputClips(clips []helix.Clip, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(clips)
	case OutputFormatYAML:
		return StandardYAMLRenderer(clips)
	default:
		return renderClipTable(clips, cursor, allPages)
	}
}

func renderClipTable(clips []helix.Clip, cursor string, allPages bool) error {
	if len(clips) == 0 {
		_, _ = os.Stdout.WriteString("No clips found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Broadcaster", "Creator", "Views", "Created")

	for _, clip := range clips {
		_ = table.Append(clip.Title, clip.BroadcasterName, clip.CreatorName,
			strconv.Itoa(clip.ViewCount),
			clip.CreatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}

func newClipsCreateCommand() *cobra.Command {
	var hasDelay bool

	cmd := &cobra.Command{
		Use:   "create BROADCASTER_ID",
		Short: "Create a clip",
		Long:  "Capture a clip from a live broadcast (requires a token with the clips:edit scope)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClipsCreateCommand(args[0], hasDelay)
		},
	}

	cmd.Flags().BoolVar(&hasDelay, "has-delay", false, "account for broadcast delay when capturing")

	return cmd
}

func runClipsCreateCommand(broadcasterID string, hasDelay bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	created, err := client.Clips().Create(ctx, &helix.ClipCreateParams{
		BroadcasterID: broadcasterID,
		HasDelay:      hasDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to create clip: %w", err)
	}

	for _, clip := range created.Data {
		_, _ = fmt.Fprintf(os.Stdout, "Created clip %s\nEdit it at %s\n", clip.ID, clip.EditURL)
	}

	return nil
}
