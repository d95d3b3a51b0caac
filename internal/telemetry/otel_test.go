package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"promoted-ads/internal/config/configs"
)

func TestSetupNoopWhenDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.OTel{
		Enabled:  false,
		Endpoint: "http://localhost:4318",
	}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.OTel{Enabled: true}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupCreatesProvider(t *testing.T) {
	// Non-routable address; nothing is exported since no span is recorded.
	shutdown, err := Setup(context.Background(), configs.OTel{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "promoted-ads-test",
	}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
