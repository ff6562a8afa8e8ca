// Package session 把属性 Trie、关系图与召回 Pipeline 组合成一次完整的餐厅推荐会话：
// 偏好匹配、附近餐厅、好友推荐，最后生成地图标记。
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rushteam/dinekit/config"
	_ "github.com/rushteam/dinekit/config/builders"
	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/dataset"
	"github.com/rushteam/dinekit/geo"
	"github.com/rushteam/dinekit/graph"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/recall"
	"github.com/rushteam/dinekit/render"
	"github.com/rushteam/dinekit/trie"
)

type options struct {
	maxMatches  int
	radiusKm    float64
	nearbyLimit int
	pipeline    *pipeline.Config
	store       core.Store
}

// Option 配置 Session。
type Option func(*options)

// WithMaxMatches 设置偏好匹配返回的候选上限。
func WithMaxMatches(n int) Option { return func(o *options) { o.maxMatches = n } }

// WithNearby 设置附近召回的半径（公里）与条数上限。
func WithNearby(radiusKm float64, limit int) Option {
	return func(o *options) {
		o.radiusKm = radiusKm
		o.nearbyLimit = limit
	}
}

// WithPipeline 使用配置驱动的 Pipeline 替换默认链路。
func WithPipeline(cfg *pipeline.Config) Option { return func(o *options) { o.pipeline = cfg } }

// WithStore 设置 filter 等 Node 使用的存储。
func WithStore(s core.Store) Option { return func(o *options) { o.store = s } }

// Session 持有一份餐厅数据构建出的 Trie 与关系图。
// 关系图会随请求增长（用户注册推荐、结交好友），同一 Session 的多次请求共享这些边。
type Session struct {
	Graph        *graph.RelationGraph
	Trie         *trie.AttributeTrie
	Records      []*core.Restaurant
	Interactions []core.Interaction

	logger   *zap.Logger
	opts     options
	pipeline *pipeline.Pipeline
}

// New 构建 Trie 与关系图，并准备推荐 Pipeline。
func New(
	records []*core.Restaurant,
	cuisines []string,
	interactions []core.Interaction,
	logger *zap.Logger,
	opts ...Option,
) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	t, inserted := dataset.BuildTrie(records, cuisines, trie.WithMaxMatches(o.maxMatches))
	g := graph.New()
	if err := g.BuildFromInteractionData(records, interactions); err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	logger.Info("session ready",
		zap.Int("records", len(records)),
		zap.Int("trie_rows", inserted),
		zap.Int("cuisines", len(cuisines)),
		zap.Int("interactions", len(interactions)),
		zap.Int("vertices", g.Len()))

	s := &Session{
		Graph:        g,
		Trie:         t,
		Records:      records,
		Interactions: interactions,
		logger:       logger,
		opts:         o,
	}

	p, err := s.buildPipeline()
	if err != nil {
		return nil, err
	}
	s.pipeline = p
	return s, nil
}

// Env 返回构建 Node 用的运行时依赖。
func (s *Session) Env() *config.Env {
	return &config.Env{
		Graph:        s.Graph,
		Trie:         s.Trie,
		Records:      s.Records,
		Interactions: s.Interactions,
		Store:        s.opts.store,
		Logger:       s.logger,
	}
}

func (s *Session) buildPipeline() (*pipeline.Pipeline, error) {
	if s.opts.pipeline != nil && len(s.opts.pipeline.Pipeline.Nodes) > 0 {
		p, err := config.BuildPipeline(s.Env(), s.opts.pipeline)
		if err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
		return p, nil
	}
	return s.DefaultPipeline(), nil
}

// DefaultPipeline 是内置链路：decision_tree 与 nearby 并发召回，随后 friend 召回，最后补充邻居。
func (s *Session) DefaultPipeline() *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Logger: s.logger,
		Nodes: []pipeline.Node{
			&recall.Fanout{
				Sources: []recall.Source{
					&recall.DecisionTree{Trie: s.Trie, Records: s.Records, Graph: s.Graph, Logger: s.logger},
					&recall.Nearby{
						Graph:        s.Graph,
						Records:      s.Records,
						Interactions: s.Interactions,
						RadiusKm:     s.opts.radiusKm,
						Limit:        s.opts.nearbyLimit,
						Logger:       s.logger,
					},
				},
				Dedup:  true,
				Logger: s.logger,
			},
			&recall.Friend{Graph: s.Graph, Records: s.Records, Logger: s.logger},
			&render.NeighboursNode{Graph: s.Graph},
		},
	}
}

// DecisionTree 返回与偏好严格匹配的餐厅记录（数据集顺序），不修改关系图。
func (s *Session) DecisionTree(pref core.Preference) []*core.Restaurant {
	return dataset.ByNames(s.Trie.MatchSequence(pref.Sequence()), s.Records)
}

// Nearby 返回 location 附近被其他用户关联过的餐厅。
func (s *Session) Nearby(location core.Location) ([]*core.Restaurant, error) {
	opts := make([]graph.NearbyOption, 0, 2)
	if s.opts.radiusKm > 0 {
		opts = append(opts, graph.WithRadiusKm(s.opts.radiusKm))
	}
	if s.opts.nearbyLimit > 0 {
		opts = append(opts, graph.WithLimit(s.opts.nearbyLimit))
	}
	return s.Graph.NearbyRestaurants(location, s.Records, s.Interactions, opts...)
}

// Join 把用户加入关系图，并与其获得的推荐餐厅连边。
func (s *Session) Join(user string, restaurants []*core.Restaurant) error {
	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		names = append(names, r.Name)
	}
	return s.Graph.LinkUserToRestaurants(user, names)
}

// Befriend 让 user 与 friend 成为好友，并返回 friend 关联的餐厅。
func (s *Session) Befriend(user, friend string) ([]*core.Restaurant, error) {
	if err := s.Graph.MakeFriend(user, friend); err != nil {
		return nil, err
	}
	return s.Graph.FriendsRestaurants(friend, s.Records)
}

// Query 是一次推荐请求。Location 为空时按 Area 查表。
type Query struct {
	User       string
	Friend     string
	Area       string
	Location   *core.Location
	Preference core.Preference
	Params     map[string]any
}

// Result 是一次推荐的输出。
type Result struct {
	RequestID string
	Items     []*core.Item
	Markers   []render.Marker
}

// Recommend 执行推荐 Pipeline，并把结果转换为地图标记。
func (s *Session) Recommend(ctx context.Context, q Query) (*Result, error) {
	loc := q.Location
	if loc == nil && q.Area != "" {
		l, err := geo.LookupArea(q.Area)
		if err != nil {
			return nil, err
		}
		loc = &l
	}

	rctx := &core.RecommendContext{
		UserID:      q.User,
		RequestID:   uuid.NewString(),
		FriendID:    q.Friend,
		Location:    loc,
		Preferences: q.Preference.Sequence(),
		Params:      q.Params,
	}
	if q.User != "" {
		s.Graph.AddVertex(q.User, graph.KindUser)
	}

	items, err := s.pipeline.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}
	s.logger.Info("recommended",
		zap.String("request_id", rctx.RequestID),
		zap.String("user", q.User),
		zap.String("friend", q.Friend),
		zap.Int("items", len(items)))

	return &Result{
		RequestID: rctx.RequestID,
		Items:     items,
		Markers:   render.MarkersFromItems(items),
	}, nil
}

// Render 把结果标记写入 sink。
func (s *Session) Render(ctx context.Context, res *Result, sink render.Sink) error {
	return sink.Write(ctx, res.Markers)
}
