// Package interaction 生成与存取演示用的用户交互数据（用户 → 关联餐厅名列表）。
package interaction

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/rushteam/dinekit/core"
)

// DefaultCuisinePool 是生成演示用户时随机挑选的菜系。
var DefaultCuisinePool = []string{
	"Mexican", "Southern", "American", "Italian", "Seafood",
	"Mediterranean", "Asian", "Japanese", "Tex-Mex", "Fusion",
	"Vegetarian", "Vegan", "Ethnic", "Greek", "Thai", "Gluten-Free",
	"Caribbean", "French", "Indian", "Chinese", "Vietnamese",
}

// LoadNames 读取 CSV 的第一列作为用户名，忽略空值。
func LoadNames(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var names []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read names: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
}

// Generate 生成 users 个演示用户：随机名字、随机菜系，
// 关联 records 中 categories 含该菜系的前 maxPerUser 家餐厅。
// 名字可能重复，重复的用户在图中会合并为同一个顶点。
func Generate(rng *rand.Rand, names []string, records []*core.Restaurant, cuisines []string, users, maxPerUser int) []core.Interaction {
	if len(names) == 0 || len(cuisines) == 0 || users <= 0 {
		return nil
	}
	out := make([]core.Interaction, 0, users)
	for i := 0; i < users; i++ {
		name := names[rng.IntN(len(names))]
		cuisine := cuisines[rng.IntN(len(cuisines))]
		out = append(out, core.Interaction{
			User:        name,
			Restaurants: servingCuisine(records, cuisine, maxPerUser),
		})
	}
	return out
}

func servingCuisine(records []*core.Restaurant, cuisine string, limit int) []string {
	out := make([]string, 0, limit)
	for _, r := range records {
		if limit > 0 && len(out) >= limit {
			break
		}
		if r != nil && r.HasCategory(cuisine) {
			out = append(out, r.Name)
		}
	}
	return out
}
