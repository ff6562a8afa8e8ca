package filter

import (
	"context"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该餐厅就会被过滤掉。
// 过滤器出错时记日志并视为不过滤，不中断流程。
type FilterNode struct {
	Filters []Filter
	Logger  *zap.Logger
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Filters) == 0 || len(items) == 0 {
		return items, nil
	}
	logger := n.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		reason := ""
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, item)
			if err != nil {
				logger.Warn("filter failed",
					zap.String("filter", f.Name()),
					zap.String("item", item.ID),
					zap.Error(err))
				continue
			}
			if ok {
				reason = f.Name()
				break
			}
		}

		if reason != "" {
			item.PutLabel(utils.LabelFiltered, utils.Label{Value: "true", Source: reason})
			logger.Debug("item filtered", zap.String("item", item.ID), zap.String("filter", reason))
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

var _ pipeline.Node = (*FilterNode)(nil)
