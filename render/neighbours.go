package render

import (
	"context"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
)

// NeighboursNode 是后处理 Node：为每个 Item 填充关系图中的相邻用户，供渲染弹窗展示。
type NeighboursNode struct {
	Graph *graph.RelationGraph
}

func (n *NeighboursNode) Name() string        { return "postprocess.neighbours" }
func (n *NeighboursNode) Kind() pipeline.Kind { return pipeline.KindPostProcess }

func (n *NeighboursNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, it := range items {
		if it == nil {
			continue
		}
		ps, err := people(n.Graph, it.ID)
		if err != nil {
			return nil, err
		}
		it.Neighbours = ps
	}
	return items, nil
}

var _ pipeline.Node = (*NeighboursNode)(nil)
