package dynocl

import (
	"strings"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// DeviceType is the cl_device_type bitfield used to filter device
// discovery and reported by Device.Type.
type DeviceType uint64

const (
	DeviceDefault     DeviceType = DeviceType(raw.DeviceTypeDefault)
	DeviceCPU         DeviceType = DeviceType(raw.DeviceTypeCPU)
	DeviceGPU         DeviceType = DeviceType(raw.DeviceTypeGPU)
	DeviceAccelerator DeviceType = DeviceType(raw.DeviceTypeAccelerator)
	DeviceCustom      DeviceType = DeviceType(raw.DeviceTypeCustom)
	DeviceAll         DeviceType = DeviceType(raw.DeviceTypeAll)
)

func (t DeviceType) String() string {
	if t == DeviceAll {
		return "all"
	}
	var parts []string
	if t&DeviceCPU != 0 {
		parts = append(parts, "cpu")
	}
	if t&DeviceGPU != 0 {
		parts = append(parts, "gpu")
	}
	if t&DeviceAccelerator != 0 {
		parts = append(parts, "accelerator")
	}
	if t&DeviceCustom != 0 {
		parts = append(parts, "custom")
	}
	if t&DeviceDefault != 0 {
		parts = append(parts, "default")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Device wraps a cl_device_id.
type Device struct {
	lib *raw.Lib
	id  raw.DeviceID
}

// Lib returns the library this device belongs to.
func (d Device) Lib() *raw.Lib { return d.lib }

// Raw returns the underlying cl_device_id.
func (d Device) Raw() raw.DeviceID { return d.id }

func (d Device) info() (string, infoFunc) {
	return "clGetDeviceInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return d.lib.GetDeviceInfo(d.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (d Device) Name() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceName)
}

func (d Device) Vendor() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceVendor)
}

func (d Device) Version() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceVersion)
}

func (d Device) DriverVersion() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceDriverVersion)
}

func (d Device) Profile() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceProfile)
}

func (d Device) OpenCLCVersion() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceOpenCLCVersion)
}

func (d Device) Extensions() (string, error) {
	call, f := d.info()
	return getInfoString(call, f, raw.DeviceExtensions)
}

func (d Device) Type() (DeviceType, error) {
	call, f := d.info()
	v, err := getInfoUint64(call, f, raw.DeviceTypeInfo)
	return DeviceType(v), err
}

func (d Device) VendorID() (uint32, error) {
	call, f := d.info()
	return getInfoUint32(call, f, raw.DeviceVendorID)
}

func (d Device) MaxComputeUnits() (uint32, error) {
	call, f := d.info()
	return getInfoUint32(call, f, raw.DeviceMaxComputeUnits)
}

func (d Device) MaxClockFrequency() (uint32, error) {
	call, f := d.info()
	return getInfoUint32(call, f, raw.DeviceMaxClockFrequency)
}

func (d Device) AddressBits() (uint32, error) {
	call, f := d.info()
	return getInfoUint32(call, f, raw.DeviceAddressBits)
}

func (d Device) MaxWorkGroupSize() (uintptr, error) {
	call, f := d.info()
	return getInfoSize(call, f, raw.DeviceMaxWorkGroupSize)
}

func (d Device) MaxWorkItemDimensions() (uint32, error) {
	call, f := d.info()
	return getInfoUint32(call, f, raw.DeviceMaxWorkItemDimensions)
}

func (d Device) MaxWorkItemSizes() ([]uintptr, error) {
	call, f := d.info()
	return getInfoSizes(call, f, raw.DeviceMaxWorkItemSizes)
}

func (d Device) GlobalMemSize() (uint64, error) {
	call, f := d.info()
	return getInfoUint64(call, f, raw.DeviceGlobalMemSize)
}

func (d Device) LocalMemSize() (uint64, error) {
	call, f := d.info()
	return getInfoUint64(call, f, raw.DeviceLocalMemSize)
}

func (d Device) MaxMemAllocSize() (uint64, error) {
	call, f := d.info()
	return getInfoUint64(call, f, raw.DeviceMaxMemAllocSize)
}

func (d Device) MaxConstantBufferSize() (uint64, error) {
	call, f := d.info()
	return getInfoUint64(call, f, raw.DeviceMaxConstantBufferSize)
}

func (d Device) Available() (bool, error) {
	call, f := d.info()
	return getInfoBool(call, f, raw.DeviceAvailable)
}

func (d Device) CompilerAvailable() (bool, error) {
	call, f := d.info()
	return getInfoBool(call, f, raw.DeviceCompilerAvailable)
}

// Platform returns the platform this device belongs to.
func (d Device) Platform() (Platform, error) {
	call, f := d.info()
	id, err := getInfoSize(call, f, raw.DevicePlatform)
	if err != nil {
		return Platform{}, err
	}
	return Platform{lib: d.lib, id: raw.PlatformID(id)}, nil
}

// HostTimer samples the device's view of the host timer in nanoseconds.
func (d Device) HostTimer() (uint64, error) {
	if err := d.lib.Require(raw.CL21, "clGetHostTimer"); err != nil {
		return 0, err
	}
	var ts uint64
	st := d.lib.GetHostTimer(d.id, unsafe.Pointer(&ts))
	return ts, statusError("clGetHostTimer", st)
}

// DeviceAndHostTimer samples the device and host timers at the same instant.
func (d Device) DeviceAndHostTimer() (device, host uint64, err error) {
	if err := d.lib.Require(raw.CL21, "clGetDeviceAndHostTimer"); err != nil {
		return 0, 0, err
	}
	st := d.lib.GetDeviceAndHostTimer(d.id, unsafe.Pointer(&device), unsafe.Pointer(&host))
	return device, host, statusError("clGetDeviceAndHostTimer", st)
}
