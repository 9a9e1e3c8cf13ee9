package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStreamsCommand(t *testing.T) {
	cmd := NewStreamsCommand()
	assert.Equal(t, "streams", cmd.Use)
	assert.Equal(t, []string{"stream"}, cmd.Aliases)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 1)
	assert.Equal(t, "list", subcommands[0].Name())

	listCmd := subcommands[0]
	assert.NotNil(t, listCmd.Flags().Lookup("user-login"))
	assert.NotNil(t, listCmd.Flags().Lookup("game-id"))
	assert.NotNil(t, listCmd.Flags().Lookup("all"))
}

func TestNewUsersCommand(t *testing.T) {
	cmd := NewUsersCommand()
	assert.Equal(t, "users", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "followed")
	assert.Contains(t, commandNames, "update-description")
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "unset")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abcdef", "2026-08-24")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestApplyConfigKey(t *testing.T) {
	config := &Config{}

	require.NoError(t, applyConfigKey(config, "client-id", "abc"))
	require.NoError(t, applyConfigKey(config, "token", "secret"))
	require.NoError(t, applyConfigKey(config, "output", "json"))
	assert.Equal(t, "abc", config.ClientID)
	assert.Equal(t, "secret", config.AccessToken)
	assert.Equal(t, "json", config.Output)

	err := applyConfigKey(config, "bogus", "x")
	assert.ErrorIs(t, err, ErrUnknownConfigKey)
}

func TestCreateClientRequiresClientID(t *testing.T) {
	viper.Reset()

	_, err := CreateClient()
	assert.ErrorIs(t, err, ErrClientIDRequired)

	viper.Set("client-id", "abc123")
	defer viper.Reset()

	client, err := CreateClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFetchAllPages(t *testing.T) {
	paginator := helix.NewPaginator(helix.DirectionAfter)

	pages := [][]string{{"a", "b"}, {"c"}}
	cursors := []string{"next", ""}
	call := 0

	fetch := func() (*helix.ListResponse[string], error) {
		page := &helix.ListResponse[string]{Data: pages[call]}
		body := []byte(`{"pagination":{"cursor":"` + cursors[call] + `"}}`)
		helix.NewSuccess(&helix.Response{StatusCode: 200, Body: body}, paginator)
		call++

		return page, nil
	}

	results, err := fetchAllPages(fetch, paginator, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, results)
	assert.Equal(t, 2, call)
}

func TestFetchAllPagesSinglePage(t *testing.T) {
	paginator := helix.NewPaginator(helix.DirectionAfter)

	fetch := func() (*helix.ListResponse[string], error) {
		body := []byte(`{"pagination":{"cursor":"more"}}`)
		helix.NewSuccess(&helix.Response{StatusCode: 200, Body: body}, paginator)

		return &helix.ListResponse[string]{Data: []string{"a"}}, nil
	}

	results, err := fetchAllPages(fetch, paginator, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, results)
	assert.Equal(t, "more", paginator.Cursor())
}

func TestCLILoggerImplementsInterface(t *testing.T) {
	var logger helix.Logger = NewCLILogger(true)

	// Must not panic on any level
	logger.Debug("debug", map[string]interface{}{"k": "v"})
	logger.Info("info", nil)
	logger.Warn("warn", nil)
	logger.Error("error", nil)
}
