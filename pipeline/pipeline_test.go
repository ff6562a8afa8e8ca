package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/dinekit/core"
)

type appendNode struct {
	id  string
	err error
}

func (n *appendNode) Name() string { return "test.append." + n.id }
func (n *appendNode) Kind() Kind   { return KindRecall }

func (n *appendNode) Process(_ context.Context, _ *core.RecommendContext, items []*core.Item) ([]*core.Item, error) {
	if n.err != nil {
		return nil, n.err
	}
	return append(items, core.NewItem(n.id)), nil
}

func TestPipeline_Run(t *testing.T) {
	t.Run("nodes run in order", func(t *testing.T) {
		p := &Pipeline{Nodes: []Node{&appendNode{id: "a"}, &appendNode{id: "b"}}}

		items, err := p.Run(context.Background(), nil, nil)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
	})

	t.Run("node error stops the chain", func(t *testing.T) {
		boom := errors.New("boom")
		p := &Pipeline{Nodes: []Node{&appendNode{id: "a", err: boom}, &appendNode{id: "b"}}}

		_, err := p.Run(context.Background(), &core.RecommendContext{}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestConfig_BuildPipeline(t *testing.T) {
	data := []byte(`
pipeline:
  name: demo
  nodes:
    - type: test.append
      config:
        id: first
    - type: test.append
      config:
        id: second
`)
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Pipeline.Name)
	require.Len(t, cfg.Pipeline.Nodes, 2)

	f := NewNodeFactory()
	f.Register("test.append", func(c map[string]any) (Node, error) {
		id, _ := c["id"].(string)
		return &appendNode{id: id}, nil
	})

	p, err := cfg.BuildPipeline(f)
	require.NoError(t, err)
	items, err := p.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[1].ID)

	_, err = f.Build("unknown", nil)
	assert.Error(t, err)

	_, err = ParseYAML([]byte("pipeline: ["))
	assert.Error(t, err)
}
