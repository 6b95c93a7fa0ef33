package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func sumInt64(t *testing.T, rm metricdata.ResourceMetrics, name string, attrs ...attribute.KeyValue) int64 {
	total := int64(0)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				matched := true
				for _, kv := range attrs {
					v, ok := dp.Attributes.Value(kv.Key)
					if !ok || v.AsString() != kv.Value.AsString() {
						matched = false
						break
					}
				}
				if matched {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestTreeStats(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		require.NoError(t, mp.Shutdown(context.Background()))
	}()

	tree := NewRBTree[int](nil, WithTreeStats("test"), WithTreeMeterProvider(mp))
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30) // one left rotation
	require.NoError(t, tree.Delete(20))
	require.ErrorIs(t, tree.Delete(20), ErrKeyNotFound)

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))

	require.Equal(t, int64(3), sumInt64(t, rm, "xtree.insert.count"))
	require.Equal(t, int64(1), sumInt64(t, rm, "xtree.delete.count"))
	require.Equal(t, int64(2), sumInt64(t, rm, "xtree.size"))
	require.Equal(t, int64(1), sumInt64(t, rm, "xtree.rotation.count"))
	require.Equal(t, int64(1), sumInt64(t, rm, "xtree.rotation.count",
		attribute.String("xtree.rotation.direction", "left")))
	require.Equal(t, int64(0), sumInt64(t, rm, "xtree.rotation.count",
		attribute.String("xtree.rotation.direction", "right")))
	require.Equal(t, int64(1), sumInt64(t, rm, "xtree.repair.count",
		attribute.String("xtree.repair.case", "rotate")))
	require.Equal(t, int64(1), sumInt64(t, rm, "xtree.repair.count",
		attribute.String("xtree.repair.case", "red-detached")))

	plainTree := NewBST[int]([]int{1, 2, 3}, WithTreeStats("bst"), WithTreeMeterProvider(mp))
	plainTree.Insert(4)
	require.NoError(t, plainTree.Delete(1))
	plainTree.Release()

	rm = metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Equal(t, int64(4), sumInt64(t, rm, "xtree.insert.count"))
	require.Equal(t, int64(2), sumInt64(t, rm, "xtree.delete.count"))
	// rbtree 2 + bst (3 + 1 - 1 - 3)
	require.Equal(t, int64(2), sumInt64(t, rm, "xtree.size"))
}

func TestTreeStats_Disabled(t *testing.T) {
	opts := newTreeOptions()
	require.Nil(t, newTreeStats(opts))

	var stats *treeStats
	require.NotPanics(t, func() {
		stats.RecordSize(1)
		stats.IncreaseInsertCount()
		stats.IncreaseDeleteCount()
		stats.IncreaseRotationCount(Left)
		stats.IncreaseRepairCount("root")
	})
}
