package recall

import (
	"context"

	"go.uber.org/zap"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
)

// Friend 是好友召回源：rctx.UserID 与 rctx.FriendID 结为好友后，返回好友关联的所有餐厅。
//
// 用户顶点不存在时会先以 user 身份创建（用户自己注册）；好友必须已在图中，
// 否则返回 UNKNOWN_VERTEX。依赖图中已有的用户，因此应放在 decision_tree / nearby 之后执行，
// 不要与它们并入同一个 Fanout。
type Friend struct {
	Graph   *graph.RelationGraph
	Records []*core.Restaurant
	Logger  *zap.Logger
}

func (r *Friend) Name() string        { return "recall.friend" }
func (r *Friend) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *Friend) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	return process(ctx, r, rctx, items)
}

func (r *Friend) Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Graph == nil || rctx == nil || rctx.FriendID == "" {
		return nil, nil
	}

	if rctx.UserID != "" && rctx.UserID != rctx.FriendID {
		r.Graph.AddVertex(rctx.UserID, graph.KindUser)
		if err := r.Graph.MakeFriend(rctx.UserID, rctx.FriendID); err != nil {
			return nil, err
		}
	}

	records, err := r.Graph.FriendsRestaurants(rctx.FriendID, r.Records)
	if err != nil {
		return nil, err
	}
	logger(r.Logger).Debug("friend recalled",
		zap.String("user", rctx.UserID),
		zap.String("friend", rctx.FriendID),
		zap.Int("records", len(records)))
	return toItems(records, core.CategoryFriend), nil
}

var (
	_ Source        = (*Friend)(nil)
	_ pipeline.Node = (*Friend)(nil)
)
