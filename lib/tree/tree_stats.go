package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TreeStatsName = "xboot/xtree"
)

type treeStats struct {
	size          metric.Int64UpDownCounter
	insertCount   metric.Int64Counter
	deleteCount   metric.Int64Counter
	rotationCount metric.Int64Counter
	repairCount   metric.Int64Counter
}

func (stats *treeStats) RecordSize(delta int64) {
	if stats == nil {
		return
	}
	stats.size.Add(context.Background(), delta)
}

func (stats *treeStats) IncreaseInsertCount() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1)
}

func (stats *treeStats) IncreaseDeleteCount() {
	if stats == nil {
		return
	}
	stats.deleteCount.Add(context.Background(), 1)
}

func (stats *treeStats) IncreaseRotationCount(dir Direction) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("xtree.rotation.direction", lo.Ternary(dir == Left, "left", "right")),
	)
	stats.rotationCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func (stats *treeStats) IncreaseRepairCount(repairCase string) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("xtree.repair.case", repairCase),
	)
	stats.repairCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func newTreeStats(opts *treeOptions) *treeStats {
	if opts == nil || !opts.isStats {
		return nil
	}
	meter := opts.meterProvider.Meter(fmt.Sprintf("%s/%s", TreeStatsName, opts.statsName))
	return &treeStats{
		size: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xtree.size",
			metric.WithDescription("The number of keys in the tree."),
		)),
		insertCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.insert.count",
			metric.WithDescription("The number of inserted keys."),
		)),
		deleteCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.delete.count",
			metric.WithDescription("The number of deleted keys."),
		)),
		rotationCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.rotation.count",
			metric.WithDescription("The number of rotations done by the red-black repair."),
		)),
		repairCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.repair.count",
			metric.WithDescription("The number of red-black repair steps by case."),
		)),
	}
}
