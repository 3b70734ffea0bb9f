package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
)

// CollisionPolicy decides what happens when a destination already exists.
type CollisionPolicy string

const (
	// CollisionOverwrite replaces the existing file.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSuffix appends " - dupN" before the extension.
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy maps a config value to a policy. Empty means overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(s)) {
	case "", CollisionOverwrite:
		return CollisionOverwrite, nil
	case CollisionSuffix:
		return CollisionSuffix, nil
	default:
		return "", eris.Errorf("organize: unknown collision policy %q", s)
	}
}

// CollisionResolver tracks destinations claimed during a run. Under the
// suffix policy a destination that is already claimed, or already on disk,
// gets a " - dupN" variant. All methods are goroutine-safe.
type CollisionResolver struct {
	policy CollisionPolicy

	mu       sync.Mutex
	owners   map[string]string // output path → source path that owns it
	counters map[string]int    // requested path → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver(policy CollisionPolicy) *CollisionResolver {
	return &CollisionResolver{
		policy:   policy,
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final destination for source.
func (cr *CollisionResolver) Resolve(source, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.policy != CollisionSuffix || cr.free(source, requested) {
		cr.owners[requested] = source
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, counter, ext))
		if cr.free(source, candidate) {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = source
			return candidate
		}
		counter++
	}
}

func (cr *CollisionResolver) free(source, path string) bool {
	if owner, ok := cr.owners[path]; ok {
		return owner == source
	}
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
