package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/internal/constants"
	"github.com/streamkit-io/helix/pkg/helix"
)

// NewGamesCommand creates the games command group.
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "games",
		Aliases: []string{"game", "categories"},
		Short:   "Look up games and categories",
		Long:    "Look up games and categories by name or ID, and list the most-watched",
	}

	cmd.AddCommand(newGamesGetCommand())
	cmd.AddCommand(newGamesTopCommand())

	return cmd
}

func newGamesGetCommand() *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "get [NAME...]",
		Short: "Get games",
		Long:  "Look up games by exact name or ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(ids) == 0 {
				return ErrNoLookupSpecified
			}

			return runGamesGetCommand(args, ids)
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "look up by game ID (repeatable)")

	return cmd
}

func runGamesGetCommand(names, ids []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	games, err := client.Games().List(ctx, &helix.GamesListParams{
		IDs:   ids,
		Names: names,
	})
	if err != nil {
		return fmt.Errorf("failed to look up games: %w", err)
	}

	return outputGames(games.Data, "", true)
}

func newGamesTopCommand() *cobra.Command {
	var (
		allPages bool
		first    int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List top games",
		Long:  "List games ordered by current viewer count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGamesTopCommand(first, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&first, "first", constants.DefaultPageSize, "results per page")

	return cmd
}

func runGamesTopCommand(first int, allPages bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()
	paginator := helix.NewPaginator(helix.DirectionAfter)

	params := &helix.TopGamesParams{
		First:     first,
		Paginator: paginator,
	}

	games, err := fetchAllPages(func() (*helix.ListResponse[helix.Game], error) {
		return client.Games().ListTop(ctx, params)
	}, paginator, allPages)
	if err != nil {
		return fmt.Errorf("failed to list top games: %w", err)
	}

	return outputGames(games, paginator.Cursor(), allPages)
}

func outputGames(games []helix.Game, cursor string, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(games)
	case OutputFormatYAML:
		return StandardYAMLRenderer(games)
	default:
		return renderGameTable(games, cursor, allPages)
	}
}

func renderGameTable(games []helix.Game, cursor string, allPages bool) error {
	if len(games) == 0 {
		_, _ = os.Stdout.WriteString("No games found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "ID", "IGDB ID")

	for _, game := range games {
		_ = table.Append(game.Name, game.ID, game.IGDBID)
	}

	_ = table.Render()

	printPageHint(cursor, allPages)

	return nil
}
