package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
)

// Pipeline 把推荐逻辑拆成可组合的 Node 链，按顺序执行。
type Pipeline struct {
	Nodes  []Node
	Logger *zap.Logger
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if rctx == nil {
		rctx = &core.RecommendContext{}
	}

	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			logger.Error("pipeline node failed",
				zap.String("node", node.Name()),
				zap.String("kind", string(node.Kind())),
				zap.String("request_id", rctx.RequestID),
				zap.Error(err))
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		logger.Debug("pipeline node done",
			zap.String("node", node.Name()),
			zap.String("kind", string(node.Kind())),
			zap.Int("in", len(cur)),
			zap.Int("out", len(next)))
		cur = next
	}
	return cur, nil
}
