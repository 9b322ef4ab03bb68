package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func TestNewServices_WiresEveryService(t *testing.T) {
	svcs := NewServices(models.NewAppState(), logger.Nop())

	require.NotNil(t, svcs.Auth)
	require.NotNil(t, svcs.Configuration)
	require.NotNil(t, svcs.Fields)
	require.NotNil(t, svcs.Categories)
}
