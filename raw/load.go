package raw

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sync"

	"github.com/ebitengine/purego"
)

// EnvLibrary overrides the library search path when set. Its value is
// passed to dlopen as-is, so both bare sonames and absolute paths work.
const EnvLibrary = "OPENCL_LIBRARY"

var (
	loadOnce sync.Once
	loaded   *Lib
	loadErr  error

	// openLibraryFn is swapped out in tests to avoid touching a real driver.
	openLibraryFn = openLibrary
)

// Load opens the OpenCL shared library, resolves its entry points and
// derives the supported API tier. The result is cached for the life of the
// process; every call after the first returns the same *Lib (or the same
// error) without reopening anything. Load is safe to call from any
// goroutine.
//
// The library is looked up from $OPENCL_LIBRARY when set, otherwise from
// the platform default names. The handle is intentionally never closed.
func Load() (*Lib, error) {
	loadOnce.Do(func() {
		loaded, loadErr = open()
	})
	return loaded, loadErr
}

func open() (*Lib, error) {
	candidates := defaultLibraryNames()
	if env := os.Getenv(EnvLibrary); env != "" {
		candidates = []string{env}
	}

	var handle uintptr
	var path string
	var firstErr error
	for _, cand := range candidates {
		h, err := openLibraryFn(cand)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		handle, path = h, cand
		break
	}
	if handle == 0 {
		return nil, &LoadError{Path: candidates[0], Err: firstErr}
	}

	lib := NewLib(VersionUnknown)
	lib.handle = handle
	lib.path = path
	if err := resolve(lib, func(name string) (uintptr, error) {
		return lookupSymbol(handle, name)
	}, purego.RegisterFunc); err != nil {
		return nil, err
	}

	slog.Debug("OpenCL library loaded",
		slog.String("path", path),
		slog.String("version", lib.version.String()))
	return lib, nil
}

// resolve walks the symbol table, binds every present entry point through
// register and installs a panicking stub for every absent one, then derives
// the supported tier. A library missing any OpenCL 1.0 entry point is
// rejected outright.
func resolve(lib *Lib, lookup func(string) (uintptr, error), register func(any, uintptr)) error {
	syms := lib.symbols()
	for _, s := range syms {
		addr, err := lookup(s.name)
		if err != nil || addr == 0 {
			lib.missing[s.name] = true
			installStub(lib, s)
			continue
		}
		register(s.fn, addr)
	}

	version, baseMissing := deriveVersion(syms, lib.missing)
	if version == VersionUnknown {
		return &LoadError{Path: lib.path, Missing: baseMissing}
	}
	lib.version = version
	return nil
}

// deriveVersion returns the highest tier whose entry points are all
// present. Tiers are walked in order and the walk stops at the first gap:
// a library exporting some 2.0 symbols on top of a complete 1.1 set is
// still a 1.1 library. When even the 1.0 tier is incomplete the missing
// names are returned alongside VersionUnknown.
func deriveVersion(syms []symbol, missing map[string]bool) (Version, []string) {
	version := VersionUnknown
	for _, tier := range tiers {
		var gaps []string
		for _, s := range syms {
			if s.since == tier && missing[s.name] {
				gaps = append(gaps, s.name)
			}
		}
		if len(gaps) > 0 {
			if tier == CL10 {
				return VersionUnknown, gaps
			}
			return version, nil
		}
		version = tier
	}
	return version, nil
}

// installStub fills an unresolved slot with a function of the right
// signature that panics with the entry point name and the tier gap. The
// loaded version is read at call time, after resolve has derived it.
func installStub(lib *Lib, s symbol) {
	slot := reflect.ValueOf(s.fn).Elem()
	stub := reflect.MakeFunc(slot.Type(), func([]reflect.Value) []reflect.Value {
		panic(fmt.Sprintf("dynocl: %s is not available: requires %s, loaded library supports %s (use Require for a recoverable check)",
			s.name, s.since, lib.version))
	})
	slot.Set(stub)
}
