package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("the name field is required")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("no sale found for id %d", 9)))
	assert.Equal(t, KindConflict, KindOf(Conflictf("record already exists")))
	assert.Equal(t, KindInternal, KindOf(errors.New("driver: bad connection")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("get sale: %w", NotFoundf("cannot cancel, order (%d) does not exist", 5))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "cannot cancel, order (5) does not exist", PublicMessage(err))
}

func TestPublicMessageHidesInternalCause(t *testing.T) {
	err := Internal(errors.New("pq: connection refused"))
	require.Error(t, err)
	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.NotContains(t, PublicMessage(err), "connection refused")

	assert.Equal(t, "internal server error", PublicMessage(errors.New("raw failure")))
}
