package algorithm

import (
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/maxslion/algod/pkg/log"
)

// registry is the process-wide code → algorithm mapping. Plugins register
// themselves from init(), so access is guarded for the rare concurrent case.
var (
	registryMu sync.RWMutex
	registry   = map[string]Algorithm{}
	metaByCode = map[string]Meta{}
	restricted map[string]bool
)

// Register binds an algorithm under its meta code. Registration is
// last-write-wins: a duplicate code replaces the previous binding with a
// warning, matching the behavior plugin authors already rely on.
func Register(algo Algorithm) {
	meta := algo.Meta()
	if err := meta.Validate(); err != nil {
		log.Logger.Error().Err(err).Msg("Rejecting algorithm registration")
		return
	}
	if meta.ClassName == "" {
		meta.ClassName = structName(algo)
	}
	if meta.Model == "" {
		meta.Model = deriveModel(callerFile())
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[meta.Code]; exists {
		log.Logger.Warn().Str("code", meta.Code).Msg("Duplicate algorithm code, replacing previous registration")
	}
	registry[meta.Code] = algo
	metaByCode[meta.Code] = meta
	log.Logger.Info().Str("code", meta.Code).Str("name", meta.Name).Msg("Algorithm registered")
}

// Get retrieves an algorithm by code, or nil when unknown or disabled
func Get(code string) Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if restricted != nil && !restricted[code] {
		return nil
	}
	return registry[code]
}

// Schemes returns metadata for every enabled algorithm, ordered by code
func Schemes() []Meta {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Meta, 0, len(metaByCode))
	for code, meta := range metaByCode {
		if restricted != nil && !restricted[code] {
			continue
		}
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Restrict limits the enabled scheme set to the given codes. A nil or empty
// list removes the restriction.
func Restrict(codes []string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if len(codes) == 0 {
		restricted = nil
		return
	}
	restricted = make(map[string]bool, len(codes))
	for _, code := range codes {
		restricted[code] = true
	}
}

// reset clears the registry. Test helper.
func reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = map[string]Algorithm{}
	metaByCode = map[string]Meta{}
	restricted = nil
}

func structName(algo Algorithm) string {
	t := reflect.TypeOf(algo)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// callerFile returns the source file of the Register caller (two frames up:
// Register → the plugin's init).
func callerFile() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file
}

// deriveModel derives the model attribute from the plugin source path: the
// path below the plugins root with separators replaced by dashes, e.g.
// pkg/plugins/scm/wf02.go → "scm-wf02".
func deriveModel(file string) string {
	if file == "" {
		return ""
	}
	marker := string(filepath.Separator) + "plugins" + string(filepath.Separator)
	idx := strings.LastIndex(file, marker)
	if idx < 0 {
		return ""
	}
	rel := strings.TrimSuffix(file[idx+len(marker):], ".go")
	return strings.ReplaceAll(rel, string(filepath.Separator), "-")
}
