package interaction

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/rushteam/dinekit/core"
)

// DefaultKey 是交互数据在 Store 中的默认 key。
const DefaultKey = "dinekit:interactions"

// Repository 把交互数据以 JSON 数组形式存放在 core.Store 的单个 key 下，
// 让多次演示（或多个进程）共享同一批演示用户。
type Repository struct {
	store core.Store
	key   string
}

// NewRepository 创建仓库；key 为空时使用 DefaultKey。
func NewRepository(s core.Store, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{store: s, key: key}
}

// Save 覆盖写入交互数据。
func (r *Repository) Save(ctx context.Context, interactions []core.Interaction) error {
	data, err := json.Marshal(interactions)
	if err != nil {
		return fmt.Errorf("encode interactions: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("%s set %s: %w", r.store.Name(), r.key, err)
	}
	return nil
}

// Load 读取交互数据；key 不存在时返回 core.ErrStoreNotFound。
func (r *Repository) Load(ctx context.Context) ([]core.Interaction, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	var out []core.Interaction
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode interactions: %w", err)
	}
	return out, nil
}

// LoadOrGenerate 优先读取已保存的交互数据；不存在时调用 gen 生成并保存。
func (r *Repository) LoadOrGenerate(ctx context.Context, gen func() []core.Interaction) ([]core.Interaction, bool, error) {
	existing, err := r.Load(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !core.IsStoreNotFound(err) {
		return nil, false, err
	}
	fresh := gen()
	if err := r.Save(ctx, fresh); err != nil {
		return nil, false, err
	}
	return fresh, true, nil
}
