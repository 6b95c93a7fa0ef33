package tree

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const treeLoggerName = "xtree"

type treeOptions struct {
	logger        *zap.Logger
	meterProvider metric.MeterProvider
	statsName     string
	isStats       bool
	isValidate    bool
}

type TreeOption func(opts *treeOptions)

// WithTreeLogger traces every repair step at debug level.
func WithTreeLogger(logger *zap.Logger) TreeOption {
	return func(opts *treeOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithTreeValidation checks all the tree invariants after each
// mutation and panics on the first broken one. Debug only, it
// makes every mutation O(n).
func WithTreeValidation() TreeOption {
	return func(opts *treeOptions) {
		opts.isValidate = true
	}
}

func WithTreeStats(name string) TreeOption {
	return func(opts *treeOptions) {
		opts.isStats = true
		opts.statsName = name
	}
}

// WithTreeMeterProvider replaces the otel global meter provider.
func WithTreeMeterProvider(mp metric.MeterProvider) TreeOption {
	return func(opts *treeOptions) {
		if mp != nil {
			opts.meterProvider = mp
		}
	}
}

func newTreeOptions(opts ...TreeOption) *treeOptions {
	o := &treeOptions{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	o.logger = o.logger.Named(treeLoggerName)
	return o
}
