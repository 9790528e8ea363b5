package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormattingAndUnwrap(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	err := New(base, http.StatusTeapot, "tea")
	assert.Equal(t, "tea: boom", err.Error())
	assert.ErrorIs(t, err, base)

	bare := New(nil, http.StatusBadRequest, "bad")
	assert.Equal(t, "bad", bare.Error())
}

func TestWrapRedis(t *testing.T) {
	t.Parallel()

	require.NoError(t, WrapRedis(nil))

	notFound := WrapRedis(redis.Nil)
	assert.Equal(t, http.StatusNotFound, StatusOf(notFound))
	assert.ErrorIs(t, notFound, redis.Nil)

	other := WrapRedis(errors.New("conn refused"))
	assert.Equal(t, http.StatusBadGateway, StatusOf(other))
	assert.Equal(t, RedisErrorMessage, MessageOf(other))
}

func TestStatusOfWrappedSentinel(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", ErrInvalidCaseStyle)
	assert.ErrorIs(t, wrapped, ErrInvalidCaseStyle)
	assert.Equal(t, http.StatusBadRequest, StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
	assert.Equal(t, SystemErrorMessage, MessageOf(errors.New("plain")))
	assert.Equal(t, http.StatusBadGateway, StatusOf(WrapLLM(errors.New("quota"))))
	assert.NoError(t, WrapLLM(nil))
}
