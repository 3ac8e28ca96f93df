package handler

import (
	"testing"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h1, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
