package helix_test

import (
	"errors"
	"testing"

	"github.com/streamkit-io/helix/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnectionReset = errors.New("connection reset")

func TestResult_Success(t *testing.T) {
	t.Parallel()

	resp := &helix.Response{
		StatusCode: 200,
		Body:       []byte(`{"data":[{"id":"1"}],"pagination":{"cursor":"abc"}}`),
	}

	result := helix.NewSuccess(resp, nil)

	assert.True(t, result.Succeeded())
	assert.Same(t, resp, result.Response())
	assert.NoError(t, result.Err())
	assert.Nil(t, result.Paginator())

	var list helix.ListResponse[struct {
		ID string `json:"id"`
	}]

	require.NoError(t, result.Decode(&list))
	assert.Len(t, list.Data, 1)
	assert.Equal(t, "abc", list.Pagination.Cursor)
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()

	paginator := helix.NewPaginator(helix.DirectionAfter)
	result := helix.NewFailure(errConnectionReset, paginator)

	assert.False(t, result.Succeeded())
	assert.Nil(t, result.Response())
	assert.ErrorIs(t, result.Err(), errConnectionReset)
	assert.Same(t, paginator, result.Paginator())

	var v map[string]any

	err := result.Decode(&v)
	require.Error(t, err)
	assert.ErrorIs(t, err, errConnectionReset)
}

func TestResult_AdvancesPaginator(t *testing.T) {
	t.Parallel()

	t.Run("cursor from response body", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionAfter)
		resp := &helix.Response{
			StatusCode: 200,
			Body:       []byte(`{"data":[],"pagination":{"cursor":"next-page"}}`),
		}

		result := helix.NewSuccess(resp, paginator)

		assert.Same(t, paginator, result.Paginator())
		assert.Equal(t, "next-page", paginator.Cursor())
	})

	t.Run("empty cursor marks exhaustion", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionAfter)
		first := &helix.Response{
			StatusCode: 200,
			Body:       []byte(`{"data":[],"pagination":{"cursor":"p2"}}`),
		}
		last := &helix.Response{
			StatusCode: 200,
			Body:       []byte(`{"data":[]}`),
		}

		helix.NewSuccess(first, paginator)
		assert.Equal(t, "p2", paginator.Cursor())

		helix.NewSuccess(last, paginator)
		assert.Empty(t, paginator.Cursor())
	})

	t.Run("unparsable body clears the cursor", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionAfter)
		helix.NewSuccess(&helix.Response{Body: []byte(`{"pagination":{"cursor":"p1"}}`)}, paginator)
		require.Equal(t, "p1", paginator.Cursor())

		helix.NewSuccess(&helix.Response{StatusCode: 200, Body: []byte("not json")}, paginator)
		assert.Empty(t, paginator.Cursor())
	})

	t.Run("failure leaves cursor untouched", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionBefore)
		helix.NewSuccess(&helix.Response{Body: []byte(`{"pagination":{"cursor":"p1"}}`)}, paginator)

		helix.NewFailure(errConnectionReset, paginator)
		assert.Equal(t, "p1", paginator.Cursor())
	})
}

func TestPaginator(t *testing.T) {
	t.Parallel()

	t.Run("defaults to after", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator("")
		assert.Equal(t, helix.DirectionAfter, paginator.Direction())
		assert.Empty(t, paginator.Cursor())
	})

	t.Run("direction fixed at construction", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionBefore)
		assert.Equal(t, helix.DirectionBefore, paginator.Direction())
	})

	t.Run("reset clears the cursor", func(t *testing.T) {
		t.Parallel()

		paginator := helix.NewPaginator(helix.DirectionAfter)
		helix.NewSuccess(&helix.Response{Body: []byte(`{"pagination":{"cursor":"p3"}}`)}, paginator)
		require.Equal(t, "p3", paginator.Cursor())

		paginator.Reset()
		assert.Empty(t, paginator.Cursor())
	})
}
