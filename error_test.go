package newsclip_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code of application error", func(t *testing.T) {
		t.Parallel()
		err := newsclip.Errorf(newsclip.ENORULE, "no rule matched %q", "Obscure Blog")
		assert.Equal(t, newsclip.ENORULE, newsclip.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("analyze: %w", newsclip.Errorf(newsclip.EUNAVAILABLE, "timeout"))
		assert.Equal(t, newsclip.EUNAVAILABLE, newsclip.ErrorCode(err))
	})

	t.Run("non-application errors are internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, newsclip.EINTERNAL, newsclip.ErrorCode(errors.New("boom")))
	})

	t.Run("nil is empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", newsclip.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message of application error", func(t *testing.T) {
		t.Parallel()
		err := newsclip.Errorf(newsclip.EINVALID, "news source required")
		assert.Equal(t, "news source required", newsclip.ErrorMessage(err))
	})

	t.Run("non-application errors are masked", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", newsclip.ErrorMessage(errors.New("boom")))
	})
}
