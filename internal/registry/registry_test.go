package registry

import (
	"testing"

	"github.com/nfrund/gogoz/internal/config"
	"github.com/nfrund/gogoz/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	cfg := &config.Config{AppAddr: ":1"}
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())

	_, ok := Get(reg, AssetsKey)
	assert.False(t, ok)

	Set(reg, AssetsKey, content.NewAssets("/static/img/"))
	assets, ok := Get(reg, AssetsKey)
	assert.True(t, ok)
	assert.Equal(t, "/static/img", assets.Prefix)
	assert.Equal(t, assets, MustGet(reg, AssetsKey))
}

func TestKeysWithSameNameButOtherTypeMiss(t *testing.T) {
	reg := New(nil)
	Set(reg, Key[int]("shared"), 42)

	_, ok := Get(reg, Key[string]("shared"))
	assert.False(t, ok)
	assert.Panics(t, func() { MustGet(reg, Key[string]("shared")) })
}
