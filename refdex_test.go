package refdex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := refdex.Errorf(refdex.ENOTFOUND, "package %q not found", "alpha")

	assert.Equal(t, refdex.ENOTFOUND, refdex.ErrorCode(err))
	assert.Equal(t, "package \"alpha\" not found", refdex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refdex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, refdex.EINTERNAL, refdex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refdex.ErrorMessage(nil))
}
