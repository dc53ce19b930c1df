package models

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/casualjim/brainstorm/pkg/stdx"
	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

//go:embed models.json
var modelsJSON []byte

// ModelInfo is the static descriptor for one model.
type ModelInfo struct {
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	MaxTokens    int64    `json:"max_tokens,omitempty"`
	Experimental bool     `json:"is_experimental,omitempty"`
	_            struct{} // require keyed usage
}

func (m ModelInfo) String() string {
	return fmt.Sprintf("%s (%s)", m.Name, m.Provider)
}

// Registry is the two-level mapping provider name -> model id -> ModelInfo.
// It is read-only after construction and safe for concurrent readers.
type Registry struct {
	providers *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, ModelInfo]]
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, loading the embedded definition
// document exactly once. The embedded document is validated at build time by
// the package tests, so a parse failure here is a programmer error.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = stdx.Must1(Load())
	})
	return defaultRegistry
}

// Load parses the embedded definition document into a fresh Registry.
// Callers that want isolation from the process-wide default can use this
// directly; they must not rely on any caching behavior.
func Load() (*Registry, error) {
	return Parse(modelsJSON)
}

// Parse builds a Registry from a definition document. The document is two
// levels deep: provider name -> model id -> descriptor. Declaration order is
// preserved and becomes the documented lookup order.
func Parse(data []byte) (*Registry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("model definitions are not valid json")
	}

	reg := &Registry{
		providers: orderedmap.New[string, *orderedmap.OrderedMap[string, ModelInfo]](),
	}

	var parseErr error
	gjson.ParseBytes(data).ForEach(func(providerKey, providerModels gjson.Result) bool {
		if !providerModels.IsObject() {
			parseErr = fmt.Errorf("provider %q: expected an object of models", providerKey.String())
			return false
		}

		pm := orderedmap.New[string, ModelInfo]()
		providerModels.ForEach(func(modelKey, descriptor gjson.Result) bool {
			category, err := ParseCategory(descriptor.Get("category").String())
			if err != nil {
				parseErr = fmt.Errorf("model %s/%s: %w", providerKey.String(), modelKey.String(), err)
				return false
			}

			pm.Set(modelKey.String(), ModelInfo{
				Name:         modelKey.String(),
				Provider:     providerKey.String(),
				Category:     category,
				Description:  descriptor.Get("description").String(),
				MaxTokens:    descriptor.Get("max_tokens").Int(),
				Experimental: descriptor.Get("is_experimental").Bool(),
			})
			return true
		})
		if parseErr != nil {
			return false
		}

		reg.providers.Set(providerKey.String(), pm)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return reg, nil
}

// Lookup finds a model by identifier. When a provider hint is given and that
// provider exists, its models are searched first; otherwise all providers are
// scanned in declaration order of the definition document. Returns the first
// match.
func (r *Registry) Lookup(modelID string, providerHint ...string) (ModelInfo, bool) {
	if len(providerHint) > 0 && providerHint[0] != "" {
		if pm, ok := r.providers.Get(providerHint[0]); ok {
			if info, ok := pm.Get(modelID); ok {
				return info, true
			}
		}
	}
	for pair := r.providers.Oldest(); pair != nil; pair = pair.Next() {
		if info, ok := pair.Value.Get(modelID); ok {
			return info, true
		}
	}
	return ModelInfo{}, false
}

// Providers returns the provider names in declaration order.
func (r *Registry) Providers() []string {
	names := make([]string, 0, r.providers.Len())
	for pair := r.providers.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Provider returns all models for one provider, in declaration order.
func (r *Registry) Provider(name string) []ModelInfo {
	pm, ok := r.providers.Get(name)
	if !ok {
		return nil
	}
	infos := make([]ModelInfo, 0, pm.Len())
	for pair := pm.Oldest(); pair != nil; pair = pair.Next() {
		infos = append(infos, pair.Value)
	}
	return infos
}

// ByCategory returns every model in the given category, scanning providers
// and models in declaration order.
func (r *Registry) ByCategory(category Category) []ModelInfo {
	var infos []ModelInfo
	for pair := r.providers.Oldest(); pair != nil; pair = pair.Next() {
		for mp := pair.Value.Oldest(); mp != nil; mp = mp.Next() {
			if mp.Value.Category == category {
				infos = append(infos, mp.Value)
			}
		}
	}
	return infos
}

// Len returns the total number of models across all providers.
func (r *Registry) Len() int {
	var n int
	for pair := r.providers.Oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Len()
	}
	return n
}
