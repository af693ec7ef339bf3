//go:build unit

package bootstrap_test

import (
	"testing"

	"hotel-availability/cmd/bootstrap"
	"hotel-availability/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewDBUnreachable(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.DB.Host = "127.0.0.1"
	cfg.DB.Port = "1"

	lc := fxtest.NewLifecycle(t)
	pool, err := bootstrap.NewDB(lc, cfg)

	require.Error(t, err)
	assert.Nil(t, pool)
	lc.RequireStart().RequireStop()
}
