package dataset

import (
	"strings"
	"unicode"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/trie"
)

// 数据集中的属性字段名
const (
	AttrTakeOut     = "RestaurantsTakeOut"
	AttrAlcohol     = "Alcohol"
	AttrWiFi        = "WiFi"
	AttrCreditCards = "BusinessAcceptsCreditCards"
	AttrGroups      = "RestaurantsGoodForGroups"
	AttrPriceRange  = "RestaurantsPriceRange2"
)

// DefaultMinCuisineCount：菜系在数据集中出现次数需大于该值才进入词表。
const DefaultMinCuisineCount = 12

// CuisineVocabulary 返回候选菜系中在 records 里出现次数大于 minCount 的部分（保持候选顺序）。
// 出现次数按 categories 拆分后的 token 精确计数。
func CuisineVocabulary(records []*core.Restaurant, candidates []string, minCount int) []string {
	counts := make(map[string]int)
	for _, r := range records {
		if r == nil {
			continue
		}
		for _, tok := range splitCategories(r.Categories) {
			counts[tok]++
		}
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if counts[c] > minCount {
			out = append(out, c)
		}
	}
	return out
}

// splitCategories 按逗号与空白拆分，"Italian," 计为 "Italian"。
func splitCategories(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// AttributeSequence 抽取一条记录的 Trie 路径：
// [cuisine, takeout, star, alcohol, wifi, credit card, groups, price, name]。
// 找不到菜系、缺少任一属性或取值无法识别时返回 false，该记录不进入 Trie。
func AttributeSequence(r *core.Restaurant, cuisines []string) ([]string, bool) {
	if r == nil || r.Name == "" || r.Attributes == nil {
		return nil, false
	}

	cuisine, ok := firstCuisine(r, cuisines)
	if !ok {
		return nil, false
	}
	seq := make([]string, 0, 9)
	seq = append(seq, cuisine)

	switch r.Attributes[AttrTakeOut] {
	case "True":
		seq = append(seq, core.TokenTakeout)
	case "False":
		seq = append(seq, core.TokenNoTakeout)
	default:
		return nil, false
	}

	if r.Stars >= core.HighStarThreshold {
		seq = append(seq, core.TokenHighStar)
	} else {
		seq = append(seq, core.TokenLowStar)
	}

	alcohol, ok := r.Attributes[AttrAlcohol]
	if !ok {
		return nil, false
	}
	seq = append(seq, pick(isNone(alcohol), core.TokenNoAlcohol, core.TokenAlcohol))

	wifi, ok := r.Attributes[AttrWiFi]
	if !ok {
		return nil, false
	}
	seq = append(seq, pick(isNo(wifi), core.TokenNoWiFi, core.TokenWiFi))

	cards, ok := r.Attributes[AttrCreditCards]
	if !ok {
		return nil, false
	}
	seq = append(seq, pick(cards == "True", core.TokenCreditCard, core.TokenNoCreditCard))

	groups, ok := r.Attributes[AttrGroups]
	if !ok {
		return nil, false
	}
	seq = append(seq, pick(groups == "True", core.TokenGroups, core.TokenNoGroups))

	price, ok := priceToken(r.Attributes[AttrPriceRange])
	if !ok {
		return nil, false
	}
	seq = append(seq, price, r.Name)
	return seq, true
}

// BuildTrie 为每条可抽取属性序列的记录插入一条路径，返回 Trie 与插入的记录数。
func BuildTrie(records []*core.Restaurant, cuisines []string, opts ...trie.Option) (*trie.AttributeTrie, int) {
	t := trie.New(opts...)
	inserted := 0
	for _, r := range records {
		seq, ok := AttributeSequence(r, cuisines)
		if !ok {
			continue
		}
		if err := t.InsertSequence(seq); err != nil {
			continue
		}
		inserted++
	}
	return t, inserted
}

func firstCuisine(r *core.Restaurant, cuisines []string) (string, bool) {
	for _, c := range cuisines {
		if r.HasCategory(c) {
			return c, true
		}
	}
	return "", false
}

// isNone 识别数据集中 "none" 的几种写法：u'none'、'none'、None。
func isNone(v string) bool {
	switch v {
	case "u'none'", "'none'", "None":
		return true
	}
	return false
}

func isNo(v string) bool {
	return v == "'no'" || v == "u'no'"
}

func priceToken(v string) (string, bool) {
	switch v {
	case "1":
		return core.PriceToken(1)
	case "2":
		return core.PriceToken(2)
	case "3":
		return core.PriceToken(3)
	case "4":
		return core.PriceToken(4)
	}
	return "", false
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
