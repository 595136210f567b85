package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mcpadapter "github.com/observerdev/observer/internal/adapters/inbound/mcp"
)

func TestNewObserverMCPServer(t *testing.T) {
	s := mcpadapter.NewObserverMCPServer(".")
	require.NotNil(t, s)
}
