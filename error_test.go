package postcraft_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/postcraft"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := postcraft.Errorf(postcraft.EUNKNOWNPLATFORM, "unknown platform %q", "myspace")

	assert.Equal(t, postcraft.EUNKNOWNPLATFORM, postcraft.ErrorCode(err))
	assert.Equal(t, "unknown platform \"myspace\"", postcraft.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, postcraft.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, postcraft.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("building request: %w", postcraft.Errorf(postcraft.EINVALID, "bad"))

	assert.Equal(t, postcraft.EINVALID, postcraft.ErrorCode(err))
	assert.Equal(t, "bad", postcraft.ErrorMessage(err))
}

func TestErrorMessage_PassesThroughForeignErrors(t *testing.T) {
	t.Parallel()

	err := errors.New("HTTP 503 for https://example.com")

	assert.Empty(t, postcraft.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://example.com", postcraft.ErrorMessage(err))
}
