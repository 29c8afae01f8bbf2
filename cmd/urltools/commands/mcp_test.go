package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMCP_Help(t *testing.T) {
	err := HandleMCP([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleMCP_RejectsArgs(t *testing.T) {
	err := HandleMCP([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}
