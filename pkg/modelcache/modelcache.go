/*
modelcache caches the unified model list so that workflow helpers can
resolve model names repeatedly without hitting the endpoint for every
call. Entries expire after a TTL; the typed model methods on the client
never consult the cache.
*/
package modelcache

import (
	"context"
	"sort"
	"sync"
	"time"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type modelts struct {
	ts    time.Time
	model schema.UnifiedModel
}

// ModelCache is a TTL cache of unified models keyed by model id. It is
// safe for concurrent use.
type ModelCache struct {
	ttl   time.Duration
	mu    sync.Mutex
	model map[string]modelts
}

// ListModelsFunc fetches the unified model list from the endpoint.
type ListModelsFunc func(context.Context) ([]schema.UnifiedModel, error)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewModelCache(ttl time.Duration, cap int) *ModelCache {
	self := new(ModelCache)

	// Set the TTL for each model
	if ttl > 0 {
		self.ttl = ttl
	}

	// Set model cache capacity
	self.model = make(map[string]modelts, cap)

	// Return the model cache
	return self
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetModel returns the model with the given id, or failing that the
// model whose name matches. The list is fetched through fn when the
// entry is missing or expired.
func (mc *ModelCache) GetModel(ctx context.Context, name string, fn ListModelsFunc) (*schema.UnifiedModel, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	// Cached model
	if entry, ok := mc.model[name]; ok {
		if time.Since(entry.ts) < mc.ttl {
			return types.Ptr(entry.model), nil
		}
		// Expired entry: prune before fetching
		delete(mc.model, name)
	}

	// Fetch and cache the model list
	if _, err := mc.listModels(ctx, fn); err != nil {
		return nil, err
	}

	// Return the model by id, or scan for a name match
	if entry, ok := mc.model[name]; ok {
		return types.Ptr(entry.model), nil
	}
	for _, entry := range mc.model {
		if entry.model.Name == name {
			return types.Ptr(entry.model), nil
		}
	}
	return nil, client.ErrNotFound.Withf("model %q", name)
}

// ListModels returns all cached models, refreshing the cache through
// fn when it is empty or expired. Models are sorted by id.
func (mc *ModelCache) ListModels(ctx context.Context, fn ListModelsFunc) ([]schema.UnifiedModel, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	// If we have a TTL and cached entries, return all non-expired models
	if mc.ttl > 0 && len(mc.model) > 0 {
		now := time.Now()
		cached := make([]schema.UnifiedModel, 0, len(mc.model))
		for id, entry := range mc.model {
			if now.Sub(entry.ts) < mc.ttl {
				cached = append(cached, entry.model)
			} else {
				// Prune expired entries
				delete(mc.model, id)
			}
		}
		if len(cached) > 0 {
			sort.Slice(cached, func(i, j int) bool { return cached[i].ID < cached[j].ID })
			return cached, nil
		}
	}

	// Fetch models
	models, err := mc.listModels(ctx, fn)
	if err != nil {
		return nil, err
	}

	// Sort models by id
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })

	// Return sorted list of models
	return models, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// listModels fetches the model list and replaces the cache contents.
// The caller must hold the lock.
func (mc *ModelCache) listModels(ctx context.Context, fn ListModelsFunc) ([]schema.UnifiedModel, error) {
	models, err := fn(ctx)
	if err != nil {
		return nil, err
	}

	// Cache models
	now := time.Now()
	clear(mc.model)
	for _, model := range models {
		mc.model[model.ID] = modelts{ts: now, model: model}
	}

	return models, nil
}
