package errs_test

import (
	"errors"
	"testing"

	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("owned by another user")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 123 (cause: owned by another user)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pickup time")

		assert.Equal(t, "pickup time", err.ParamName)
		assert.Equal(t, "value is invalid: pickup time", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("expected HH:MM")
		err := errs.NewValueIsInvalidErrorWithCause("pickup time", cause)

		assert.Equal(t, "value is invalid: pickup time (cause: expected HH:MM)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("hour", 25, 0, 23)

		assert.Equal(t, 25, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is out of range: 25 is hour, min value is 0, max value is 23", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parse failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("minute", 61, 0, 59, cause)

		assert.Equal(t,
			"value is out of range: 61 is minute, min value is 0, max value is 59 (cause: parse failed)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("vendor id")
	assert.Equal(t, "value is required: vendor id", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("vendor id", errors.New("empty"))
	assert.Equal(t, "value is required: vendor id (cause: empty)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)

	var notFound *errs.ObjectNotFoundError
	wrapped := errors.Join(errors.New("context"), errs.NewObjectNotFoundError("order", "1"))
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
}
