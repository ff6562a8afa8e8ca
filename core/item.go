package core

import (
	"fmt"
	"strings"

	"github.com/rushteam/dinekit/pkg/utils"
)

// Item 是推荐链路中的统一承载结构：餐厅记录、关联用户、元信息、标签。
// ID 即餐厅名；Labels 用于解释与渲染分类（recall_source 等）。
type Item struct {
	ID         string
	Score      float64
	Restaurant *Restaurant
	// Neighbours 是关系图中与该餐厅相邻的顶点（用户），供渲染使用
	Neighbours []string
	Meta       map[string]any
	Labels     map[string]utils.Label
}

func NewItem(id string) *Item {
	return &Item{
		ID:     id,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// NewRestaurantItem 用餐厅记录构造 Item。
func NewRestaurantItem(r *Restaurant) *Item {
	it := NewItem(r.Name)
	it.Restaurant = r
	return it
}

// Key 是去重键：同名连锁店按坐标区分，没有餐厅记录时退化为 ID。
func (it *Item) Key() string {
	if it.Restaurant == nil {
		return it.ID
	}
	return fmt.Sprintf("%s@%.6f,%.6f", it.Restaurant.Name, it.Restaurant.Latitude, it.Restaurant.Longitude)
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}

// ItemsFromRestaurants 按顺序把餐厅记录包装为 Item。
func ItemsFromRestaurants(records []*Restaurant) []*Item {
	items := make([]*Item, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		items = append(items, NewRestaurantItem(r))
	}
	return items
}

// Restaurants 取出 Item 中的餐厅记录（跳过没有记录的 Item）。
func Restaurants(items []*Item) []*Restaurant {
	out := make([]*Restaurant, 0, len(items))
	for _, it := range items {
		if it != nil && it.Restaurant != nil {
			out = append(out, it.Restaurant)
		}
	}
	return out
}

// Category 根据 recall_source 标签返回展示分类；命中多个来源时取 Priority 最高者。
func (it *Item) Category() (Category, bool) {
	lbl, ok := it.Labels[utils.LabelRecallSource]
	if !ok || lbl.Value == "" {
		return "", false
	}
	var best Category
	for _, v := range strings.Split(lbl.Value, "|") {
		if c := Category(v); c.Priority() > best.Priority() {
			best = c
		}
	}
	return best, best.Priority() > 0
}

// MergeItems 把 incoming 追加到 items 之后，按 Key 去重；重复项的 Labels 合并到先出现的 Item 上。
func MergeItems(items []*Item, incoming []*Item) []*Item {
	seen := make(map[string]*Item, len(items)+len(incoming))
	out := make([]*Item, 0, len(items)+len(incoming))
	for _, batch := range [][]*Item{items, incoming} {
		for _, it := range batch {
			if it == nil {
				continue
			}
			if old, ok := seen[it.Key()]; ok {
				for k, v := range it.Labels {
					old.PutLabel(k, v)
				}
				continue
			}
			seen[it.Key()] = it
			out = append(out, it)
		}
	}
	return out
}
