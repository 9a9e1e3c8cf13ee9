package helix_test

import (
	"testing"

	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/stretchr/testify/assert"
)

func TestBuildQueryOptions(t *testing.T) {
	t.Parallel()

	t.Run("applies options in order", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionAfter)
		options := helix.BuildQueryOptions(
			helix.WithPaginator(paginator),
			helix.WithRequestToken("per-call"),
			helix.RequireToken(),
		)

		assert.Same(t, paginator, options.Paginator)
		assert.Equal(t, "per-call", options.Token)
		assert.True(t, options.RequireToken)
	})

	t.Run("no options", func(t *testing.T) {
		t.Parallel()

		options := helix.BuildQueryOptions()
		assert.Nil(t, options.Paginator)
		assert.Empty(t, options.Token)
		assert.False(t, options.RequireToken)
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		t.Parallel()

		options := helix.BuildQueryOptions(nil, helix.WithRequestToken("tok"), nil)
		assert.Equal(t, "tok", options.Token)
		assert.False(t, options.RequireToken)
	})
}
