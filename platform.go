package dynocl

import (
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// Platform wraps a cl_platform_id. Platform identifiers are not reference
// counted; the zero value is invalid.
type Platform struct {
	lib *raw.Lib
	id  raw.PlatformID
}

// Platforms enumerates the platforms the loaded library exposes.
func Platforms(lib *raw.Lib) ([]Platform, error) {
	var count uint32
	if st := lib.GetPlatformIDs(0, nil, unsafe.Pointer(&count)); st != raw.Success {
		return nil, statusError("clGetPlatformIDs", st)
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]raw.PlatformID, count)
	if st := lib.GetPlatformIDs(count, unsafe.Pointer(&ids[0]), nil); st != raw.Success {
		return nil, statusError("clGetPlatformIDs", st)
	}
	platforms := make([]Platform, count)
	for i, id := range ids {
		platforms[i] = Platform{lib: lib, id: id}
	}
	return platforms, nil
}

// Lib returns the library this platform belongs to.
func (p Platform) Lib() *raw.Lib { return p.lib }

// Raw returns the underlying cl_platform_id.
func (p Platform) Raw() raw.PlatformID { return p.id }

func (p Platform) info() (string, infoFunc) {
	return "clGetPlatformInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return p.lib.GetPlatformInfo(p.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (p Platform) Name() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.PlatformName)
}

func (p Platform) Vendor() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.PlatformVendor)
}

// Version returns the version string the platform reports. This is
// advisory; the tier the bindings actually expose is Lib().Version().
func (p Platform) Version() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.PlatformVersion)
}

func (p Platform) Profile() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.PlatformProfile)
}

func (p Platform) Extensions() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.PlatformExtensions)
}

// HostTimerResolution returns the host timer resolution in nanoseconds.
func (p Platform) HostTimerResolution() (uint64, error) {
	if err := p.lib.Require(raw.CL21, "CL_PLATFORM_HOST_TIMER_RESOLUTION"); err != nil {
		return 0, err
	}
	call, f := p.info()
	return getInfoUint64(call, f, raw.PlatformHostTimerResolution)
}

// UnloadCompiler asks the platform to release compiler resources.
func (p Platform) UnloadCompiler() error {
	if err := p.lib.Require(raw.CL12, "clUnloadPlatformCompiler"); err != nil {
		return err
	}
	return statusError("clUnloadPlatformCompiler", p.lib.UnloadPlatformCompiler(p.id))
}

// Devices enumerates the platform's devices matching the given type mask.
// ErrNoDevices is returned when none match; other failures surface as
// *APIError.
func (p Platform) Devices(mask DeviceType) ([]Device, error) {
	var count uint32
	st := p.lib.GetDeviceIDs(p.id, raw.DeviceTypeFlags(mask), 0, nil, unsafe.Pointer(&count))
	if st == raw.ErrDeviceNotFound || (st == raw.Success && count == 0) {
		return nil, ErrNoDevices
	}
	if st != raw.Success {
		return nil, statusError("clGetDeviceIDs", st)
	}
	ids := make([]raw.DeviceID, count)
	if st := p.lib.GetDeviceIDs(p.id, raw.DeviceTypeFlags(mask), count, unsafe.Pointer(&ids[0]), nil); st != raw.Success {
		return nil, statusError("clGetDeviceIDs", st)
	}
	devices := make([]Device, count)
	for i, id := range ids {
		devices[i] = Device{lib: p.lib, id: id}
	}
	return devices, nil
}
