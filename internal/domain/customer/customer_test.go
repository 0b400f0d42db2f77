package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Alice", " Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name())
	assert.Equal(t, "alice@example.com", c.Email())

	_, err = NewCustomer("", "bob@example.com")
	assert.Error(t, err)
	_, err = NewCustomer("Bob", "")
	assert.Error(t, err)
}

func TestCustomer_SetID(t *testing.T) {
	c, err := NewCustomer("Alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, c.SetID(1))
	assert.Equal(t, uint(1), c.ID())
	assert.Error(t, c.SetID(2))
}
