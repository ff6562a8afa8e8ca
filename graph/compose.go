package graph

import (
	"fmt"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/geo"
)

const (
	DefaultRadiusKm    = 1.0
	DefaultNearbyLimit = 5
)

// LinkUserToRestaurants 确保 user 顶点与每个餐厅顶点存在，并逐一连边。
// 餐厅名与用户名相同会构成自环，此时在修改图之前返回 INVALID_INPUT。
func (g *RelationGraph) LinkUserToRestaurants(user string, restaurants []string) error {
	for _, r := range restaurants {
		if r == user {
			return core.NewDomainError(core.ModuleGraph, core.ErrorCodeInvalidInput,
				fmt.Sprintf("graph: user %q collides with restaurant name", user))
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertex(user, KindUser)
	for _, r := range restaurants {
		g.addVertex(r, KindRestaurant)
		if err := g.addEdge(user, r); err != nil {
			return err
		}
	}
	return nil
}

// BuildFromInteractionData 对每条餐厅记录，把交互数据中关联了该餐厅名的用户与之连边。
func (g *RelationGraph) BuildFromInteractionData(records []*core.Restaurant, interactions []core.Interaction) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buildFromInteractionData(records, interactions)
}

func (g *RelationGraph) buildFromInteractionData(records []*core.Restaurant, interactions []core.Interaction) error {
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, in := range interactions {
			if !in.Visited(r.Name) {
				continue
			}
			if err := g.link(in.User, r.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *RelationGraph) link(user, restaurant string) error {
	g.addVertex(user, KindUser)
	g.addVertex(restaurant, KindRestaurant)
	return g.addEdge(user, restaurant)
}

type nearbyOptions struct {
	radiusKm float64
	limit    int
}

// NearbyOption 配置 NearbyRestaurants。
type NearbyOption func(*nearbyOptions)

// WithRadiusKm 设置半径（公里，含边界），默认 1。
func WithRadiusKm(km float64) NearbyOption {
	return func(o *nearbyOptions) { o.radiusKm = km }
}

// WithLimit 设置返回条数上限，默认 5；<= 0 表示不截断。
func WithLimit(n int) NearbyOption {
	return func(o *nearbyOptions) { o.limit = n }
}

// NearbyRestaurants 返回 location 附近、且被交互数据中某个用户关联过的餐厅。
//
// 副作用：先执行与 BuildFromInteractionData 相同的连边。
// 遍历顺序为餐厅记录在外、交互数据在内，每个命中的（餐厅, 用户）对收集一次，
// 同一餐厅被 n 个用户关联过就出现 n 次并占用 n 个 limit 名额；结果不按距离排序。
// 需要去重时由调用方处理（recall.Fanout 的 Dedup 按 Item.Key 合并）。
func (g *RelationGraph) NearbyRestaurants(
	location core.Location,
	records []*core.Restaurant,
	interactions []core.Interaction,
	opts ...NearbyOption,
) ([]*core.Restaurant, error) {
	o := nearbyOptions{radiusKm: DefaultRadiusKm, limit: DefaultNearbyLimit}
	for _, opt := range opts {
		opt(&o)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.buildFromInteractionData(records, interactions); err != nil {
		return nil, err
	}

	out := make([]*core.Restaurant, 0)
	full := func() bool { return o.limit > 0 && len(out) >= o.limit }
	for _, r := range records {
		if full() {
			break
		}
		if r == nil || !geo.Within(location, r.Location(), o.radiusKm) {
			continue
		}
		for _, in := range interactions {
			if full() {
				break
			}
			if !in.Visited(r.Name) {
				continue
			}
			if err := g.link(in.User, r.Name); err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// MakeFriend 在两个已存在的用户之间连边，任一不存在返回 UNKNOWN_VERTEX。
func (g *RelationGraph) MakeFriend(user, friend string) error {
	return g.AddEdge(user, friend)
}

// FriendsRestaurants 返回 friend 相邻的所有餐厅的完整记录（按 records 顺序）。
func (g *RelationGraph) FriendsRestaurants(friend string, records []*core.Restaurant) ([]*core.Restaurant, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names, err := g.neighboursOf(friend, KindRestaurant)
	if err != nil {
		return nil, err
	}
	linked := make(map[string]struct{}, len(names))
	for _, n := range names {
		linked[n] = struct{}{}
	}

	out := make([]*core.Restaurant, 0, len(names))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := linked[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
