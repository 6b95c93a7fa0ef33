package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

func TestTreeOptions(t *testing.T) {
	opts := newTreeOptions()
	require.NotNil(t, opts.logger)
	require.Equal(t, treeLoggerName, opts.logger.Name())
	require.Equal(t, otel.GetMeterProvider(), opts.meterProvider)
	require.False(t, opts.isStats)
	require.False(t, opts.isValidate)

	mp := sdkmetric.NewMeterProvider()
	opts = newTreeOptions(
		WithTreeLogger(nil),
		WithTreeMeterProvider(nil),
		WithTreeValidation(),
		WithTreeStats("orders"),
		WithTreeMeterProvider(mp),
	)
	require.NotNil(t, opts.logger)
	require.True(t, opts.isValidate)
	require.True(t, opts.isStats)
	require.Equal(t, "orders", opts.statsName)
	require.Equal(t, mp, opts.meterProvider)

	logger := zap.NewExample()
	opts = newTreeOptions(WithTreeLogger(logger))
	require.Equal(t, treeLoggerName, opts.logger.Name())
}
