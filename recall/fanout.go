package recall

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/pipeline"
)

// Fanout 是一个 Recall Node：并发执行多个互不依赖的召回源，并按 Sources 顺序合并结果。
// 合并结果追加在输入 items 之后。
//
// 图与 Trie 各自由实例级锁保护，decision_tree 与 nearby 可以安全并发；
// friend 依赖前两者写入的用户顶点，应作为独立 Node 放在 Fanout 之后。
type Fanout struct {
	Sources []Source
	// Dedup 为 true 时按 Item.Key 去重并合并 labels
	Dedup bool
	// MaxConcurrent 最大并发数（<= 0 表示无限制）
	MaxConcurrent int
	// IgnoreErrors 为 true 时单个召回源出错只记日志、返回空结果；
	// 默认任何错误（例如 UNKNOWN_VERTEX）都会中断整个 Fanout。
	IgnoreErrors bool
	Logger       *zap.Logger
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return items, nil
	}

	results := make([][]*core.Item, len(n.Sources))
	eg, egCtx := errgroup.WithContext(ctx)
	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		i, src := i, src
		eg.Go(func() error {
			recalled, err := src.Recall(egCtx, rctx)
			if err != nil {
				if n.IgnoreErrors {
					logger(n.Logger).Warn("recall source failed",
						zap.String("source", src.Name()),
						zap.Error(err))
					return nil
				}
				return err
			}
			// 每个 goroutine 只写自己的槽位，无需加锁
			results[i] = recalled
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := items
	for _, recalled := range results {
		if n.Dedup {
			out = core.MergeItems(out, recalled)
		} else {
			out = append(out, recalled...)
		}
	}
	return out, nil
}

var _ pipeline.Node = (*Fanout)(nil)
