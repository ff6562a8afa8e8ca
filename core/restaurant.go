package core

import "strings"

// Restaurant 是数据集中的一条餐厅记录。
// Name 是在 Trie 与 Graph 之间对齐的唯一键。
// Attributes 保留数据集的原始取值（如 "True"、"u'none'"、"'no'"），由 dataset 包负责解释。
type Restaurant struct {
	Name       string            `json:"name"`
	City       string            `json:"city"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Stars      float64           `json:"stars"`
	Categories string            `json:"categories"`
	Attributes map[string]string `json:"attributes"`
}

// Location 返回餐厅坐标。
func (r *Restaurant) Location() Location {
	return Location{Lat: r.Latitude, Lon: r.Longitude}
}

// HasCategory 判断 Categories 文本中是否包含 token（子串匹配）。
func (r *Restaurant) HasCategory(token string) bool {
	return strings.Contains(r.Categories, token)
}

// Location 是一个经纬度坐标（度）。
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Interaction 把一个用户与其关联的餐厅名（有序）配对。
type Interaction struct {
	User        string   `json:"user"`
	Restaurants []string `json:"restaurants"`
}

// Visited 判断用户是否关联了该餐厅。
func (in Interaction) Visited(name string) bool {
	for _, r := range in.Restaurants {
		if r == name {
			return true
		}
	}
	return false
}
