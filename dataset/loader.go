// Package dataset 把 Yelp 商户数据集（JSON Lines）转换为餐厅记录、菜系词表与 Trie 的属性序列。
package dataset

import (
	"archive/zip"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rushteam/dinekit/core"
)

// business 是数据集中的一行；attributes 的取值可能是字符串、布尔或 null。
type business struct {
	Name       string         `json:"name"`
	City       string         `json:"city"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Stars      float64        `json:"stars"`
	Categories *string        `json:"categories"`
	Attributes map[string]any `json:"attributes"`
}

func (b *business) toRestaurant() *core.Restaurant {
	r := &core.Restaurant{
		Name:      b.Name,
		City:      b.City,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Stars:     b.Stars,
	}
	if b.Categories != nil {
		r.Categories = *b.Categories
	}
	if b.Attributes != nil {
		r.Attributes = make(map[string]string, len(b.Attributes))
		for k, v := range b.Attributes {
			switch val := v.(type) {
			case nil:
				continue
			case string:
				r.Attributes[k] = val
			case bool:
				if val {
					r.Attributes[k] = "True"
				} else {
					r.Attributes[k] = "False"
				}
			default:
				r.Attributes[k] = fmt.Sprint(val)
			}
		}
	}
	return r
}

// LoadBusinesses 逐行解码 JSON Lines 格式的商户数据。
func LoadBusinesses(r io.Reader) ([]*core.Restaurant, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	var out []*core.Restaurant
	for line := 1; ; line++ {
		var b business
		if err := dec.Decode(&b); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("decode business #%d: %w", line, err)
		}
		out = append(out, b.toRestaurant())
	}
}

// LoadArchive 从 zip 包中读取指定成员文件并解码，不解压到磁盘。
func LoadArchive(zipPath, member string) ([]*core.Restaurant, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", member, err)
		}
		defer rc.Close()
		return LoadBusinesses(rc)
	}
	return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeNotFound,
		fmt.Sprintf("dataset: %s not found in %s", member, zipPath))
}

// FilterCity 只保留 city 下 categories 含 "Food" 或 "Restaurant" 的商户。
func FilterCity(records []*core.Restaurant, city string) []*core.Restaurant {
	out := make([]*core.Restaurant, 0, len(records))
	for _, r := range records {
		if r == nil || r.City != city || r.Categories == "" {
			continue
		}
		if r.HasCategory("Food") || r.HasCategory("Restaurant") {
			out = append(out, r)
		}
	}
	return out
}

// ByNames 返回名字在 names 中的记录，保持数据集顺序（同名连锁店会全部返回）。
func ByNames(names []string, records []*core.Restaurant) []*core.Restaurant {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make([]*core.Restaurant, 0, len(names))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := want[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// LoadCandidates 读取候选菜系清单，每行一个，忽略空行。
func LoadCandidates(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return out, nil
}
