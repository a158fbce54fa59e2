// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFailureIsSticky(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)

	// The failed load must not be swallowed by sync.Once: a retry has
	// to surface the same error instead of a nil config.
	cfg2, err2 := Load("/nonexistent/config.yaml")
	require.Error(t, err2)
	require.Nil(t, cfg2)
	require.Equal(t, err.Error(), err2.Error())
}
