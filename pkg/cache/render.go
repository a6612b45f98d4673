package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/observability"
	"github.com/matzehuels/texttree/pkg/render"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Render returns the text diagram of root, consulting c first.
//
// Cache read and write failures are not fatal: the diagram is rendered and
// returned anyway. Formatting errors are returned before the cache is
// consulted.
func Render[T fmt.Stringer](ctx context.Context, c Cache, k Keyer, root *tree.Node[T], f format.Formatting, ttl time.Duration) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	key := k.RenderKey(HashTree(root), f)
	hooks := observability.Cache()

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, "render")
		return string(data), nil
	}
	hooks.OnCacheMiss(ctx, "render")

	out, err := render.Render(root, f)
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, key, []byte(out), ttl); err == nil {
		hooks.OnCacheSet(ctx, "render", len(out))
	}
	return out, nil
}

// Artifact returns the cached bytes for key, or computes, stores and
// returns them.
func Artifact(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	hooks := observability.Cache()
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, "artifact")
		return data, nil
	}
	hooks.OnCacheMiss(ctx, "artifact")

	data, err := compute()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return data, nil
}
