// Package render 把推荐结果转换为地图标记，并输出到 Sink（GeoJSON 等）。
// HTML 地图本身不在这里生成，任何能读取 GeoJSON 的前端都可以直接使用输出。
package render

import (
	"cmp"
	"slices"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/graph"
)

// 标记颜色，与分类一一对应。
const (
	ColorFriend       = "red"
	ColorDecisionTree = "orange"
	ColorNearby       = "blue"
	ColorDefault      = "gray"
)

// Color 返回分类对应的标记颜色。
func Color(c core.Category) string {
	switch c {
	case core.CategoryFriend:
		return ColorFriend
	case core.CategoryDecisionTree:
		return ColorDecisionTree
	case core.CategoryNearby:
		return ColorNearby
	default:
		return ColorDefault
	}
}

// Marker 是地图上的一个餐厅标记，People 是关系图中与该餐厅相连的用户。
type Marker struct {
	Category   core.Category
	Color      string
	Restaurant *core.Restaurant
	People     []string
}

// Markers 为同一分类的一组餐厅生成标记。
// 不在图中的餐厅仍会生成标记，People 为空；图的其他错误直接返回。
func Markers(g *graph.RelationGraph, records []*core.Restaurant, category core.Category) ([]Marker, error) {
	out := make([]Marker, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		ps, err := people(g, r.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, Marker{
			Category:   category,
			Color:      Color(category),
			Restaurant: r,
			People:     ps,
		})
	}
	return out, nil
}

// MarkersFromItems 根据 Pipeline 输出生成标记：分类取 Item.Category()，People 取 Item.Neighbours。
// 结果按分类优先级升序稳定排序，friend 标记排在最后，叠放时位于最上层。
func MarkersFromItems(items []*core.Item) []Marker {
	out := make([]Marker, 0, len(items))
	for _, it := range items {
		if it == nil || it.Restaurant == nil {
			continue
		}
		c, _ := it.Category()
		out = append(out, Marker{
			Category:   c,
			Color:      Color(c),
			Restaurant: it.Restaurant,
			People:     it.Neighbours,
		})
	}
	slices.SortStableFunc(out, func(a, b Marker) int {
		return cmp.Compare(a.Category.Priority(), b.Category.Priority())
	})
	return out
}

// people 返回与 name 相连的用户；name 不是图中顶点时返回空。
func people(g *graph.RelationGraph, name string) ([]string, error) {
	if g == nil {
		return nil, nil
	}
	ns, err := g.NeighboursOf(name)
	if core.IsUnknownVertex(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ns, nil
}
