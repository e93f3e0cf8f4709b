// Package raw binds OpenCL entry points from a shared library resolved at
// runtime. Nothing here links against OpenCL at build time; Load opens the
// driver with dlopen (LoadLibrary on Windows), resolves every known entry
// point by name and derives the supported API tier from what it found.
//
// The types in this package mirror the C API one to one. Handles are opaque
// uintptrs, pointer parameters are unsafe.Pointers and status codes are the
// raw cl_int values. Higher-level, typed wrappers live in the parent
// package.
package raw

import "unsafe"

// Opaque OpenCL object handles.
type (
	PlatformID   uintptr
	DeviceID     uintptr
	Context      uintptr
	CommandQueue uintptr
	Mem          uintptr
	Program      uintptr
	Kernel       uintptr
	Event        uintptr
)

// MemFlags is the cl_mem_flags bitfield.
type MemFlags uint64

const (
	MemReadWrite     MemFlags = 1 << 0
	MemWriteOnly     MemFlags = 1 << 1
	MemReadOnly      MemFlags = 1 << 2
	MemUseHostPtr    MemFlags = 1 << 3
	MemAllocHostPtr  MemFlags = 1 << 4
	MemCopyHostPtr   MemFlags = 1 << 5
	MemHostWriteOnly MemFlags = 1 << 7
	MemHostReadOnly  MemFlags = 1 << 8
	MemHostNoAccess  MemFlags = 1 << 9
)

// DeviceTypeFlags is the cl_device_type bitfield.
type DeviceTypeFlags uint64

const (
	DeviceTypeDefault     DeviceTypeFlags = 1 << 0
	DeviceTypeCPU         DeviceTypeFlags = 1 << 1
	DeviceTypeGPU         DeviceTypeFlags = 1 << 2
	DeviceTypeAccelerator DeviceTypeFlags = 1 << 3
	DeviceTypeCustom      DeviceTypeFlags = 1 << 4
	DeviceTypeAll         DeviceTypeFlags = 0xFFFFFFFF
)

// QueueProps is the cl_command_queue_properties bitfield.
type QueueProps uint64

const (
	QueueOutOfOrderExec QueueProps = 1 << 0
	QueueProfiling      QueueProps = 1 << 1
	QueueOnDevice       QueueProps = 1 << 2
	QueueOnDeviceDefault QueueProps = 1 << 3
)

// cl_bool values for blocking flags.
const (
	False uint32 = 0
	True  uint32 = 1
)

// cl_platform_info
const (
	PlatformProfile             uint32 = 0x0900
	PlatformVersion             uint32 = 0x0901
	PlatformName                uint32 = 0x0902
	PlatformVendor              uint32 = 0x0903
	PlatformExtensions          uint32 = 0x0904
	PlatformHostTimerResolution uint32 = 0x0905
)

// cl_device_info
const (
	DeviceTypeInfo              uint32 = 0x1000
	DeviceVendorID              uint32 = 0x1001
	DeviceMaxComputeUnits       uint32 = 0x1002
	DeviceMaxWorkItemDimensions uint32 = 0x1003
	DeviceMaxWorkGroupSize      uint32 = 0x1004
	DeviceMaxWorkItemSizes      uint32 = 0x1005
	DeviceMaxClockFrequency     uint32 = 0x100C
	DeviceAddressBits           uint32 = 0x100D
	DeviceMaxMemAllocSize       uint32 = 0x1010
	DeviceGlobalMemSize         uint32 = 0x101F
	DeviceMaxConstantBufferSize uint32 = 0x1020
	DeviceLocalMemSize          uint32 = 0x1023
	DeviceAvailable             uint32 = 0x1027
	DeviceCompilerAvailable     uint32 = 0x1028
	DeviceName                  uint32 = 0x102B
	DeviceVendor                uint32 = 0x102C
	DeviceDriverVersion         uint32 = 0x102D
	DeviceProfile               uint32 = 0x102E
	DeviceVersion               uint32 = 0x102F
	DeviceExtensions            uint32 = 0x1030
	DevicePlatform              uint32 = 0x1031
	DeviceOpenCLCVersion        uint32 = 0x103D
)

// cl_context_info and context properties
const (
	ContextReferenceCount uint32 = 0x1080
	ContextDevices        uint32 = 0x1081
	ContextProperties     uint32 = 0x1082
	ContextNumDevices     uint32 = 0x1083

	ContextPlatformProp uintptr = 0x1084
)

// cl_command_queue_info; QueuePropertiesParam and QueueSizeParam double as
// keys in the property list passed to clCreateCommandQueueWithProperties.
const (
	QueueContext         uint32 = 0x1090
	QueueDevice          uint32 = 0x1091
	QueueReferenceCount  uint32 = 0x1092
	QueuePropertiesParam uint32 = 0x1093
	QueueSizeParam       uint32 = 0x1094
	QueueDeviceDefault   uint32 = 0x1095
)

// cl_mem_info
const (
	MemTypeInfo       uint32 = 0x1100
	MemFlagsInfo      uint32 = 0x1101
	MemSizeInfo       uint32 = 0x1102
	MemHostPtrInfo    uint32 = 0x1103
	MemMapCount       uint32 = 0x1104
	MemReferenceCount uint32 = 0x1105
	MemContextInfo    uint32 = 0x1106
	MemAssociatedMem  uint32 = 0x1107
	MemOffsetInfo     uint32 = 0x1108
)

// cl_program_info
const (
	ProgramReferenceCount uint32 = 0x1160
	ProgramContextInfo    uint32 = 0x1161
	ProgramNumDevices     uint32 = 0x1162
	ProgramDevices        uint32 = 0x1163
	ProgramSource         uint32 = 0x1164
	ProgramBinarySizes    uint32 = 0x1165
	ProgramBinaries       uint32 = 0x1166
	ProgramNumKernels     uint32 = 0x1167
	ProgramKernelNames    uint32 = 0x1168
	ProgramIL             uint32 = 0x1169
)

// cl_program_build_info
const (
	ProgramBuildStatus  uint32 = 0x1181
	ProgramBuildOptions uint32 = 0x1182
	ProgramBuildLog     uint32 = 0x1183
	ProgramBinaryType   uint32 = 0x1184
)

// cl_build_status
const (
	BuildSuccess    int32 = 0
	BuildNone       int32 = -1
	BuildError      int32 = -2
	BuildInProgress int32 = -3
)

// cl_kernel_info
const (
	KernelFunctionName   uint32 = 0x1190
	KernelNumArgs        uint32 = 0x1191
	KernelReferenceCount uint32 = 0x1192
	KernelContextInfo    uint32 = 0x1193
	KernelProgramInfo    uint32 = 0x1194
	KernelAttributes     uint32 = 0x1195
)

// cl_kernel_arg_info
const (
	KernelArgAddressQualifier uint32 = 0x1196
	KernelArgAccessQualifier  uint32 = 0x1197
	KernelArgTypeName         uint32 = 0x1198
	KernelArgTypeQualifier    uint32 = 0x1199
	KernelArgName             uint32 = 0x119A
)

// cl_kernel_work_group_info
const (
	KernelWorkGroupSize          uint32 = 0x11B0
	KernelCompileWorkGroupSize   uint32 = 0x11B1
	KernelLocalMemSize           uint32 = 0x11B2
	KernelPreferredWGSizeMultiple uint32 = 0x11B3
	KernelPrivateMemSize         uint32 = 0x11B4
)

// cl_pipe_info
const (
	PipePacketSize uint32 = 0x1120
	PipeMaxPackets uint32 = 0x1121
)

// cl_buffer_create_type
const BufferCreateTypeRegion uint32 = 0x1220

// Lib holds the resolved entry points of one OpenCL shared library together
// with the API tier derived from them. Slots whose tier exceeds the derived
// version hold stubs that panic with a diagnostic when called; use Require
// before touching a versioned slot when a recoverable error is preferred.
//
// A Lib is safe for concurrent use. The underlying library handle is never
// closed; drivers register process-global state that does not survive a
// dlclose.
type Lib struct {
	handle  uintptr
	path    string
	version Version
	missing map[string]bool

	// OpenCL 1.0
	GetPlatformIDs            func(numEntries uint32, platforms unsafe.Pointer, numPlatforms unsafe.Pointer) int32
	GetPlatformInfo           func(platform PlatformID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	GetDeviceIDs              func(platform PlatformID, deviceType DeviceTypeFlags, numEntries uint32, devices unsafe.Pointer, numDevices unsafe.Pointer) int32
	GetDeviceInfo             func(device DeviceID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	CreateContext             func(properties unsafe.Pointer, numDevices uint32, devices unsafe.Pointer, notify uintptr, userData unsafe.Pointer, errcode unsafe.Pointer) Context
	RetainContext             func(context Context) int32
	ReleaseContext            func(context Context) int32
	GetContextInfo            func(context Context, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	CreateCommandQueue        func(context Context, device DeviceID, properties QueueProps, errcode unsafe.Pointer) CommandQueue
	RetainCommandQueue        func(queue CommandQueue) int32
	ReleaseCommandQueue       func(queue CommandQueue) int32
	GetCommandQueueInfo       func(queue CommandQueue, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	CreateBuffer              func(context Context, flags MemFlags, size uintptr, hostPtr unsafe.Pointer, errcode unsafe.Pointer) Mem
	RetainMemObject           func(mem Mem) int32
	ReleaseMemObject          func(mem Mem) int32
	GetMemObjectInfo          func(mem Mem, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	EnqueueReadBuffer         func(queue CommandQueue, buffer Mem, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	EnqueueWriteBuffer        func(queue CommandQueue, buffer Mem, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	EnqueueCopyBuffer         func(queue CommandQueue, src Mem, dst Mem, srcOffset uintptr, dstOffset uintptr, size uintptr, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	CreateProgramWithSource   func(context Context, count uint32, strings unsafe.Pointer, lengths unsafe.Pointer, errcode unsafe.Pointer) Program
	RetainProgram             func(program Program) int32
	ReleaseProgram            func(program Program) int32
	BuildProgram              func(program Program, numDevices uint32, devices unsafe.Pointer, options unsafe.Pointer, notify uintptr, userData unsafe.Pointer) int32
	GetProgramInfo            func(program Program, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	GetProgramBuildInfo       func(program Program, device DeviceID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	CreateKernel              func(program Program, name unsafe.Pointer, errcode unsafe.Pointer) Kernel
	RetainKernel              func(kernel Kernel) int32
	ReleaseKernel             func(kernel Kernel) int32
	SetKernelArg              func(kernel Kernel, index uint32, size uintptr, value unsafe.Pointer) int32
	GetKernelInfo             func(kernel Kernel, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	GetKernelWorkGroupInfo    func(kernel Kernel, device DeviceID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	EnqueueNDRangeKernel      func(queue CommandQueue, kernel Kernel, workDim uint32, globalOffset unsafe.Pointer, globalSize unsafe.Pointer, localSize unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	WaitForEvents             func(numEvents uint32, events unsafe.Pointer) int32
	RetainEvent               func(event Event) int32
	ReleaseEvent              func(event Event) int32
	Finish                    func(queue CommandQueue) int32
	Flush                     func(queue CommandQueue) int32

	// OpenCL 1.1
	CreateSubBuffer        func(buffer Mem, flags MemFlags, createType uint32, createInfo unsafe.Pointer, errcode unsafe.Pointer) Mem
	CreateUserEvent        func(context Context, errcode unsafe.Pointer) Event
	SetUserEventStatus     func(event Event, status int32) int32
	SetEventCallback       func(event Event, callbackType int32, notify uintptr, userData unsafe.Pointer) int32
	EnqueueReadBufferRect  func(queue CommandQueue, buffer Mem, blocking uint32, bufferOrigin unsafe.Pointer, hostOrigin unsafe.Pointer, region unsafe.Pointer, bufferRowPitch uintptr, bufferSlicePitch uintptr, hostRowPitch uintptr, hostSlicePitch uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	EnqueueWriteBufferRect func(queue CommandQueue, buffer Mem, blocking uint32, bufferOrigin unsafe.Pointer, hostOrigin unsafe.Pointer, region unsafe.Pointer, bufferRowPitch uintptr, bufferSlicePitch uintptr, hostRowPitch uintptr, hostSlicePitch uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32

	// OpenCL 1.2
	GetKernelArgInfo           func(kernel Kernel, index uint32, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	EnqueueFillBuffer          func(queue CommandQueue, buffer Mem, pattern unsafe.Pointer, patternSize uintptr, offset uintptr, size uintptr, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	CreateSubDevices           func(device DeviceID, properties unsafe.Pointer, numEntries uint32, devices unsafe.Pointer, numDevices unsafe.Pointer) int32
	RetainDevice               func(device DeviceID) int32
	ReleaseDevice              func(device DeviceID) int32
	UnloadPlatformCompiler     func(platform PlatformID) int32
	CompileProgram             func(program Program, numDevices uint32, devices unsafe.Pointer, options unsafe.Pointer, numHeaders uint32, headers unsafe.Pointer, headerNames unsafe.Pointer, notify uintptr, userData unsafe.Pointer) int32
	LinkProgram                func(context Context, numDevices uint32, devices unsafe.Pointer, options unsafe.Pointer, numPrograms uint32, programs unsafe.Pointer, notify uintptr, userData unsafe.Pointer, errcode unsafe.Pointer) Program
	EnqueueMarkerWithWaitList  func(queue CommandQueue, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32
	EnqueueBarrierWithWaitList func(queue CommandQueue, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32

	// OpenCL 2.0
	CreateCommandQueueWithProperties func(context Context, device DeviceID, properties unsafe.Pointer, errcode unsafe.Pointer) CommandQueue
	SVMAlloc                         func(context Context, flags MemFlags, size uintptr, alignment uint32) unsafe.Pointer
	SVMFree                          func(context Context, ptr unsafe.Pointer)
	SetKernelArgSVMPointer           func(kernel Kernel, index uint32, ptr unsafe.Pointer) int32
	CreatePipe                       func(context Context, flags MemFlags, packetSize uint32, maxPackets uint32, properties unsafe.Pointer, errcode unsafe.Pointer) Mem
	GetPipeInfo                      func(pipe Mem, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32

	// OpenCL 2.1
	CreateProgramWithIL          func(context Context, il unsafe.Pointer, length uintptr, errcode unsafe.Pointer) Program
	CloneKernel                  func(kernel Kernel, errcode unsafe.Pointer) Kernel
	GetHostTimer                 func(device DeviceID, hostTimestamp unsafe.Pointer) int32
	GetDeviceAndHostTimer        func(device DeviceID, deviceTimestamp unsafe.Pointer, hostTimestamp unsafe.Pointer) int32
	GetKernelSubGroupInfo        func(kernel Kernel, device DeviceID, param uint32, inputSize uintptr, input unsafe.Pointer, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32
	SetDefaultDeviceCommandQueue func(context Context, device DeviceID, queue CommandQueue) int32

	// OpenCL 2.2
	SetProgramReleaseCallback          func(program Program, notify uintptr, userData unsafe.Pointer) int32
	SetProgramSpecializationConstant   func(program Program, specID uint32, size uintptr, value unsafe.Pointer) int32
}

// NewLib assembles a Lib at the given tier with no bound entry points.
// Callers populate the slots themselves; the loader uses this internally and
// tests use it to stand in a deterministic fake driver.
func NewLib(v Version) *Lib {
	return &Lib{version: v, missing: map[string]bool{}}
}

// Version returns the API tier derived at load time: the highest tier whose
// entry points were all present in the library.
func (l *Lib) Version() Version {
	return l.version
}

// Path returns the file name or path the library was opened from. Empty for
// libs assembled with NewLib.
func (l *Lib) Path() string {
	return l.path
}

// Missing reports whether the named entry point was absent at load time.
func (l *Lib) Missing(name string) bool {
	return l.missing[name]
}

// Require returns a *VersionError when the loaded tier is below min. call
// names the entry point or operation the caller is about to use and is
// carried into the error for context.
func (l *Lib) Require(min Version, call string) error {
	if l.version.AtLeast(min) {
		return nil
	}
	return &VersionError{Required: min, Loaded: l.version, Call: call}
}
