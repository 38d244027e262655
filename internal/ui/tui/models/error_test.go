package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/PizzaHomicide/anicompare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorModelRetry(t *testing.T) {
	m := NewErrorModel(errors.New("boom"), "alice", "bob")

	_, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, RefreshRequestedMsg{}, cmd())

	_, cmd = m.Update(runeKey("x"))
	assert.Nil(t, cmd)
}

func TestErrorModelMalformedInput(t *testing.T) {
	m := NewErrorModel(fmt.Errorf("%w: missing user", domain.ErrMalformedInput), "alice", "bob")
	m.Resize(120, 40)

	assert.Contains(t, m.View(), "could not be read")
}

func TestDescribeStatus(t *testing.T) {
	assert.Equal(t, "no response (network error)", describeStatus(0))
	assert.Equal(t, "rate limited by AniList (429)", describeStatus(429))
	assert.Equal(t, "Bad Gateway (502)", describeStatus(502))
}
