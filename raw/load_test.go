package raw

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// lookupFrom builds a lookup function that resolves exactly the symbols
// whose tier is at or below max, plus any extras. Addresses are fake but
// nonzero; the tests register with a no-op.
func lookupFrom(max Version, extras ...string) func(string) (uintptr, error) {
	extra := map[string]bool{}
	for _, name := range extras {
		extra[name] = true
	}
	table := NewLib(VersionUnknown).symbols()
	present := map[string]bool{}
	for _, s := range table {
		if s.since <= max || extra[s.name] {
			present[s.name] = true
		}
	}
	return func(name string) (uintptr, error) {
		if present[name] {
			return 0xc1, nil
		}
		return 0, errors.New("undefined symbol: " + name)
	}
}

func noopRegister(any, uintptr) {}

func TestResolveDerivesVersion(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) (uintptr, error)
		want   Version
	}{
		{"complete 1.0", lookupFrom(CL10), CL10},
		{"complete 1.2", lookupFrom(CL12), CL12},
		{"complete 2.2", lookupFrom(CL22), CL22},
		{"partial 1.2 caps at 1.1", lookupFrom(CL11, "clGetKernelArgInfo", "clEnqueueFillBuffer"), CL11},
		{"2.0 symbols do not skip a 1.2 gap", lookupFrom(CL11, "clSVMAlloc", "clSVMFree", "clCreatePipe"), CL11},
		{"partial 2.1 caps at 2.0", lookupFrom(CL20, "clCloneKernel"), CL20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lib := NewLib(VersionUnknown)
			if err := resolve(lib, tc.lookup, noopRegister); err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if lib.Version() != tc.want {
				t.Errorf("derived version = %v, want %v", lib.Version(), tc.want)
			}
		})
	}
}

func TestResolveRejectsIncompleteBase(t *testing.T) {
	lookup := func(name string) (uintptr, error) {
		if name == "clGetPlatformIDs" || name == "clFinish" {
			return 0, errors.New("undefined symbol")
		}
		return 0xc1, nil
	}
	lib := NewLib(VersionUnknown)
	err := resolve(lib, lookup, noopRegister)
	if err == nil {
		t.Fatal("expected error for incomplete 1.0 tier")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error type = %T, want *LoadError", err)
	}
	for _, name := range []string{"clGetPlatformIDs", "clFinish"} {
		found := false
		for _, m := range le.Missing {
			if m == name {
				found = true
			}
		}
		if !found {
			t.Errorf("LoadError.Missing lacks %s: %v", name, le.Missing)
		}
	}
}

func TestMissingSymbolStubPanics(t *testing.T) {
	lib := NewLib(VersionUnknown)
	if err := resolve(lib, lookupFrom(CL11), noopRegister); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !lib.Missing("clEnqueueFillBuffer") {
		t.Fatal("clEnqueueFillBuffer should be recorded as missing")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("calling a missing entry point should panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value type = %T, want string", r)
		}
		for _, want := range []string{"clEnqueueFillBuffer", "OpenCL 1.2", "OpenCL 1.1"} {
			if !strings.Contains(msg, want) {
				t.Errorf("panic message %q lacks %q", msg, want)
			}
		}
	}()
	lib.EnqueueFillBuffer(0, 0, nil, 0, 0, 0, 0, nil, nil)
}

func TestRequire(t *testing.T) {
	lib := NewLib(CL11)
	if err := lib.Require(CL10, "clCreateBuffer"); err != nil {
		t.Errorf("Require(CL10) on a 1.1 lib = %v, want nil", err)
	}
	if err := lib.Require(CL11, "clCreateSubBuffer"); err != nil {
		t.Errorf("Require(CL11) on a 1.1 lib = %v, want nil", err)
	}

	err := lib.Require(CL12, "clGetKernelArgInfo")
	var ve *VersionError
	if !errors.As(err, &ve) {
		t.Fatalf("Require(CL12) error type = %T, want *VersionError", err)
	}
	if ve.Required != CL12 || ve.Loaded != CL11 || ve.Call != "clGetKernelArgInfo" {
		t.Errorf("unexpected VersionError fields: %+v", ve)
	}
	if !strings.Contains(ve.Error(), "OpenCL 1.2") {
		t.Errorf("VersionError message %q lacks required tier", ve.Error())
	}
}

func TestLoadCachesResult(t *testing.T) {
	// The process-wide cache can only be exercised once per test binary, so
	// this test owns the global Load path. The opener is replaced with one
	// that counts invocations and always fails; every caller must then see
	// the same cached error without the opener running again.
	opened := 0
	var mu sync.Mutex
	openLibraryFn = func(name string) (uintptr, error) {
		mu.Lock()
		opened++
		mu.Unlock()
		return 0, errors.New("no driver in test environment")
	}
	t.Setenv(EnvLibrary, "libdynocl-test.so")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Load()
		}(i)
	}
	wg.Wait()

	if opened != 1 {
		t.Errorf("opener ran %d times, want 1", opened)
	}
	for i, err := range errs {
		if err == nil {
			t.Fatalf("call %d unexpectedly succeeded", i)
		}
		if err != errs[0] {
			t.Errorf("call %d returned a different error instance", i)
		}
	}

	// A later call must hit the cache too.
	if _, err := Load(); err != errs[0] {
		t.Error("subsequent Load did not return the cached error")
	}
	if opened != 1 {
		t.Errorf("opener ran %d times after extra Load, want 1", opened)
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{CL10, "OpenCL 1.0"},
		{CL12, "OpenCL 1.2"},
		{CL22, "OpenCL 2.2"},
		{VersionUnknown, "unknown"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("Version(%d).String() = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestVersionAtLeast(t *testing.T) {
	if !CL20.AtLeast(CL12) {
		t.Error("2.0 should satisfy a 1.2 minimum")
	}
	if CL11.AtLeast(CL12) {
		t.Error("1.1 should not satisfy a 1.2 minimum")
	}
	if !CL12.AtLeast(CL12) {
		t.Error("a tier should satisfy itself")
	}
}
