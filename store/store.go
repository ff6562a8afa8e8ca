package store

// 注意：此包只包含实现，接口定义在 core 包。
//
// 示例：
//   var s core.Store = store.NewMemoryStore()
//   s, err := store.NewRedisStore(ctx, "127.0.0.1:6379", 0)
