package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = stderrors.New("sentinel")

func TestDomainInvariantString(t *testing.T) {
	de := DomainInvariant("phone", "invalid_length")
	assert.Equal(t, "phone: invalid_length", de.Error())
	assert.Nil(t, de.Unwrap())

	assert.Equal(t, "empty", DomainInvariant("", "empty").Error())
}

func TestWrapInvariantUnwraps(t *testing.T) {
	err := fmt.Errorf("normalize: %w", WrapInvariant(errSentinel, "phone", "invalid_length"))

	assert.ErrorIs(t, err, errSentinel)
	assert.True(t, IsDomainError(err))

	reason, ok := ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_length", reason)
}

func TestReasonOfForeignError(t *testing.T) {
	_, ok := ReasonOf(stderrors.New("boom"))
	assert.False(t, ok)
	assert.False(t, IsDomainError(nil))
}

func TestDomainErrorsBatch(t *testing.T) {
	es := FromFields(map[string]string{
		"Log.Env":     "invalid_choice",
		"Log.MaxSize": "too_small",
	})
	require.Len(t, es, 2)
	assert.Equal(t, "Log.Env", es[0].Field)
	assert.Equal(t, "domain_errors: Log.Env: invalid_choice; Log.MaxSize: too_small", es.Error())
	assert.Equal(t, map[string]string{
		"Log.Env":     "invalid_choice",
		"Log.MaxSize": "too_small",
	}, es.Fields())
}

func TestDomainErrorsEmpty(t *testing.T) {
	assert.Nil(t, FromFields(nil))
	assert.Nil(t, DomainErrors{}.Fields())
	assert.Equal(t, "domain_errors: empty", DomainErrors{}.Error())
}
