package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Clipboard is expected
	var _ postcraft.Clipboard = &mock.Clipboard{}
}

func TestClipboard_WriteAll(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteAllFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		c := &mock.Clipboard{
			WriteAllFn: func(text string) error {
				calledWith = text
				return nil
			},
		}

		err := c.WriteAll("Copied post")

		require.NoError(t, err)
		assert.Equal(t, "Copied post", calledWith)
	})

	t.Run("returns error from WriteAllFn", func(t *testing.T) {
		t.Parallel()

		c := &mock.Clipboard{
			WriteAllFn: func(string) error {
				return errors.New("no clipboard utility")
			},
		}

		err := c.WriteAll("text")

		require.EqualError(t, err, "no clipboard utility")
	})
}
