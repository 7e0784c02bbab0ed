package words

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory creates a Source for a registered scheme.
type Factory func() Source

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	Register(BuiltinID, func() Source { return Embedded{} })
	Register("file", func() Source { return File{} })
}

// Register adds a source factory under scheme.
// Panics if the scheme is already registered.
func Register(scheme string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[scheme]; exists {
		panic(fmt.Sprintf("words: source %q already registered", scheme))
	}
	factories[scheme] = f
}

// Schemes returns every registered scheme, sorted.
func Schemes() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for scheme := range factories {
		result = append(result, scheme)
	}
	sort.Strings(result)
	return result
}

// Exists checks whether a scheme is registered.
func Exists(scheme string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[scheme]
	return ok
}

// Open resolves a source ID of the form "scheme" or "scheme:location".
// It returns the source and the location to pass to LoadWords.
func Open(sourceID string) (Source, string, error) {
	scheme, location, _ := strings.Cut(sourceID, ":")
	if scheme == "" {
		scheme = BuiltinID
	}

	mu.RLock()
	f, ok := factories[scheme]
	mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("words: unknown source %q", scheme)
	}
	return f(), location, nil
}

// Registry dispatches LoadWords to the source registered for the ID's scheme.
type Registry struct{}

// LoadWords resolves sourceID via Open and loads from the matching source.
func (Registry) LoadWords(ctx context.Context, sourceID string) ([]string, error) {
	src, location, err := Open(sourceID)
	if err != nil {
		return nil, err
	}
	return src.LoadWords(ctx, location)
}

var _ Source = Registry{}
