package dynocl

import (
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// The tests below run against an in-memory driver: a raw.Lib whose entry
// point slots are closures over a fakeDevice. This keeps the full
// discover/build/bind/dispatch/transfer path testable without any native
// OpenCL installation and makes every driver response deterministic.

const (
	fakePlatformID = raw.PlatformID(0xa1)
	fakeDeviceID   = raw.DeviceID(0xd1)
	fakeContextID  = raw.Context(0xc1)
	fakeQueueID    = raw.CommandQueue(0x91)
	fakeProgramID  = raw.Program(0xb1)
	fakeEventID    = raw.Event(0xe1)
)

type fakeKernelSpec struct {
	argTypes []string // declared types, e.g. "int*", "float"
}

type setCall struct {
	kernel raw.Kernel
	index  uint32
	size   uintptr
}

type fakeKernel struct {
	name string
	spec fakeKernelSpec
	args map[uint32][]byte
}

type fakeDevice struct {
	buffers     map[raw.Mem][]byte
	nextMem     raw.Mem
	kernelSpecs map[string]fakeKernelSpec
	kernels     map[raw.Kernel]*fakeKernel
	nextKernel  raw.Kernel

	createFlags  []raw.MemFlags
	setCalls     []setCall
	queueCreates []string
	dispatches   int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers:     map[raw.Mem][]byte{},
		nextMem:     0x3000,
		kernelSpecs: map[string]fakeKernelSpec{},
		kernels:     map[raw.Kernel]*fakeKernel{},
		nextKernel:  0x4000,
	}
}

// writeInfo implements the driver side of the info query convention.
func writeInfo(data []byte, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
	if value != nil {
		if size < uintptr(len(data)) {
			return raw.ErrInvalidValue
		}
		copy(unsafe.Slice((*byte)(value), len(data)), data)
	}
	if sizeRet != nil {
		*(*uintptr)(sizeRet) = uintptr(len(data))
	}
	return raw.Success
}

func u32bytes(v uint32) []byte {
	b := make([]byte, 4)
	*(*uint32)(unsafe.Pointer(&b[0])) = v
	return b
}

func u64bytes(v uint64) []byte {
	b := make([]byte, 8)
	*(*uint64)(unsafe.Pointer(&b[0])) = v
	return b
}

func wordBytes(v uintptr) []byte {
	b := make([]byte, unsafe.Sizeof(v))
	*(*uintptr)(unsafe.Pointer(&b[0])) = v
	return b
}

func cstrBytes(s string) []byte {
	return append([]byte(s), 0)
}

// newFakeLib wires a raw.Lib at the given tier to an in-memory device.
func newFakeLib(v raw.Version, dev *fakeDevice) *raw.Lib {
	lib := raw.NewLib(v)

	lib.GetPlatformIDs = func(numEntries uint32, platforms unsafe.Pointer, numPlatforms unsafe.Pointer) int32 {
		if numPlatforms != nil {
			*(*uint32)(numPlatforms) = 1
		}
		if platforms != nil && numEntries >= 1 {
			*(*raw.PlatformID)(platforms) = fakePlatformID
		}
		return raw.Success
	}
	lib.GetPlatformInfo = func(platform raw.PlatformID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
		switch param {
		case raw.PlatformName:
			return writeInfo(cstrBytes("FakeCL"), size, value, sizeRet)
		case raw.PlatformVendor:
			return writeInfo(cstrBytes("dynocl test rig"), size, value, sizeRet)
		case raw.PlatformVersion:
			return writeInfo(cstrBytes("OpenCL 9.9 fake"), size, value, sizeRet)
		case raw.PlatformProfile:
			return writeInfo(cstrBytes("FULL_PROFILE"), size, value, sizeRet)
		case raw.PlatformExtensions:
			return writeInfo(cstrBytes(""), size, value, sizeRet)
		}
		return raw.ErrInvalidValue
	}
	lib.GetDeviceIDs = func(platform raw.PlatformID, deviceType raw.DeviceTypeFlags, numEntries uint32, devices unsafe.Pointer, numDevices unsafe.Pointer) int32 {
		// The fake exposes a single GPU.
		if deviceType != raw.DeviceTypeAll && deviceType&raw.DeviceTypeGPU == 0 {
			return raw.ErrDeviceNotFound
		}
		if numDevices != nil {
			*(*uint32)(numDevices) = 1
		}
		if devices != nil && numEntries >= 1 {
			*(*raw.DeviceID)(devices) = fakeDeviceID
		}
		return raw.Success
	}
	lib.GetDeviceInfo = func(device raw.DeviceID, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
		switch param {
		case raw.DeviceName:
			return writeInfo(cstrBytes("fake-gpu"), size, value, sizeRet)
		case raw.DeviceVendor:
			return writeInfo(cstrBytes("dynocl test rig"), size, value, sizeRet)
		case raw.DeviceTypeInfo:
			return writeInfo(u64bytes(uint64(raw.DeviceTypeGPU)), size, value, sizeRet)
		case raw.DevicePlatform:
			return writeInfo(wordBytes(uintptr(fakePlatformID)), size, value, sizeRet)
		case raw.DeviceMaxComputeUnits:
			return writeInfo(u32bytes(4), size, value, sizeRet)
		case raw.DeviceMaxWorkGroupSize:
			return writeInfo(wordBytes(256), size, value, sizeRet)
		case raw.DeviceMaxWorkItemSizes:
			data := append(wordBytes(256), wordBytes(16)...)
			data = append(data, wordBytes(4)...)
			return writeInfo(data, size, value, sizeRet)
		case raw.DeviceAvailable:
			return writeInfo(u32bytes(1), size, value, sizeRet)
		}
		return raw.ErrInvalidValue
	}

	lib.CreateContext = func(properties unsafe.Pointer, numDevices uint32, devices unsafe.Pointer, notify uintptr, userData unsafe.Pointer, errcode unsafe.Pointer) raw.Context {
		*(*int32)(errcode) = raw.Success
		return fakeContextID
	}
	lib.ReleaseContext = func(context raw.Context) int32 { return raw.Success }
	lib.RetainContext = func(context raw.Context) int32 { return raw.Success }

	lib.CreateCommandQueue = func(context raw.Context, device raw.DeviceID, properties raw.QueueProps, errcode unsafe.Pointer) raw.CommandQueue {
		dev.queueCreates = append(dev.queueCreates, "clCreateCommandQueue")
		*(*int32)(errcode) = raw.Success
		return fakeQueueID
	}
	lib.CreateCommandQueueWithProperties = func(context raw.Context, device raw.DeviceID, properties unsafe.Pointer, errcode unsafe.Pointer) raw.CommandQueue {
		dev.queueCreates = append(dev.queueCreates, "clCreateCommandQueueWithProperties")
		*(*int32)(errcode) = raw.Success
		return fakeQueueID
	}
	lib.ReleaseCommandQueue = func(queue raw.CommandQueue) int32 { return raw.Success }
	lib.Finish = func(queue raw.CommandQueue) int32 { return raw.Success }
	lib.Flush = func(queue raw.CommandQueue) int32 { return raw.Success }

	lib.CreateBuffer = func(context raw.Context, flags raw.MemFlags, size uintptr, hostPtr unsafe.Pointer, errcode unsafe.Pointer) raw.Mem {
		dev.createFlags = append(dev.createFlags, flags)
		store := make([]byte, size)
		if hostPtr != nil && flags&(raw.MemCopyHostPtr|raw.MemUseHostPtr) != 0 {
			copy(store, unsafe.Slice((*byte)(hostPtr), size))
		}
		handle := dev.nextMem
		dev.nextMem++
		dev.buffers[handle] = store
		*(*int32)(errcode) = raw.Success
		return handle
	}
	lib.ReleaseMemObject = func(mem raw.Mem) int32 { return raw.Success }
	lib.GetMemObjectInfo = func(mem raw.Mem, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
		store, ok := dev.buffers[mem]
		if !ok {
			return raw.ErrInvalidMemObject
		}
		switch param {
		case raw.MemSizeInfo:
			return writeInfo(wordBytes(uintptr(len(store))), size, value, sizeRet)
		case raw.MemReferenceCount:
			return writeInfo(u32bytes(1), size, value, sizeRet)
		}
		return raw.ErrInvalidValue
	}

	lib.EnqueueWriteBuffer = func(queue raw.CommandQueue, buffer raw.Mem, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32 {
		store, ok := dev.buffers[buffer]
		if !ok || offset+size > uintptr(len(store)) {
			return raw.ErrInvalidValue
		}
		copy(store[offset:offset+size], unsafe.Slice((*byte)(ptr), size))
		return raw.Success
	}
	lib.EnqueueReadBuffer = func(queue raw.CommandQueue, buffer raw.Mem, blocking uint32, offset uintptr, size uintptr, ptr unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32 {
		store, ok := dev.buffers[buffer]
		if !ok || offset+size > uintptr(len(store)) {
			return raw.ErrInvalidValue
		}
		copy(unsafe.Slice((*byte)(ptr), size), store[offset:offset+size])
		return raw.Success
	}
	lib.EnqueueCopyBuffer = func(queue raw.CommandQueue, src raw.Mem, dst raw.Mem, srcOffset uintptr, dstOffset uintptr, size uintptr, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32 {
		from, ok1 := dev.buffers[src]
		to, ok2 := dev.buffers[dst]
		if !ok1 || !ok2 {
			return raw.ErrInvalidMemObject
		}
		copy(to[dstOffset:dstOffset+size], from[srcOffset:srcOffset+size])
		if event != nil {
			*(*raw.Event)(event) = fakeEventID
		}
		return raw.Success
	}
	lib.EnqueueFillBuffer = func(queue raw.CommandQueue, buffer raw.Mem, pattern unsafe.Pointer, patternSize uintptr, offset uintptr, size uintptr, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32 {
		store, ok := dev.buffers[buffer]
		if !ok {
			return raw.ErrInvalidMemObject
		}
		pat := unsafe.Slice((*byte)(pattern), patternSize)
		for i := offset; i+patternSize <= offset+size; i += patternSize {
			copy(store[i:i+patternSize], pat)
		}
		if event != nil {
			*(*raw.Event)(event) = fakeEventID
		}
		return raw.Success
	}

	lib.CreateProgramWithSource = func(context raw.Context, count uint32, strings unsafe.Pointer, lengths unsafe.Pointer, errcode unsafe.Pointer) raw.Program {
		*(*int32)(errcode) = raw.Success
		return fakeProgramID
	}
	lib.BuildProgram = func(program raw.Program, numDevices uint32, devices unsafe.Pointer, options unsafe.Pointer, notify uintptr, userData unsafe.Pointer) int32 {
		return raw.Success
	}
	lib.ReleaseProgram = func(program raw.Program) int32 { return raw.Success }

	lib.CreateKernel = func(program raw.Program, name unsafe.Pointer, errcode unsafe.Pointer) raw.Kernel {
		n := goString(name)
		spec, ok := dev.kernelSpecs[n]
		if !ok {
			*(*int32)(errcode) = raw.ErrInvalidKernelName
			return 0
		}
		handle := dev.nextKernel
		dev.nextKernel++
		dev.kernels[handle] = &fakeKernel{name: n, spec: spec, args: map[uint32][]byte{}}
		*(*int32)(errcode) = raw.Success
		return handle
	}
	lib.ReleaseKernel = func(kernel raw.Kernel) int32 { return raw.Success }
	lib.GetKernelInfo = func(kernel raw.Kernel, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
		k, ok := dev.kernels[kernel]
		if !ok {
			return raw.ErrInvalidKernel
		}
		switch param {
		case raw.KernelFunctionName:
			return writeInfo(cstrBytes(k.name), size, value, sizeRet)
		case raw.KernelNumArgs:
			return writeInfo(u32bytes(uint32(len(k.spec.argTypes))), size, value, sizeRet)
		}
		return raw.ErrInvalidValue
	}
	lib.GetKernelArgInfo = func(kernel raw.Kernel, index uint32, param uint32, size uintptr, value unsafe.Pointer, sizeRet unsafe.Pointer) int32 {
		k, ok := dev.kernels[kernel]
		if !ok {
			return raw.ErrInvalidKernel
		}
		if param != raw.KernelArgTypeName || int(index) >= len(k.spec.argTypes) {
			return raw.ErrInvalidValue
		}
		return writeInfo(cstrBytes(k.spec.argTypes[index]), size, value, sizeRet)
	}
	lib.SetKernelArg = func(kernel raw.Kernel, index uint32, size uintptr, value unsafe.Pointer) int32 {
		k, ok := dev.kernels[kernel]
		if !ok {
			return raw.ErrInvalidKernel
		}
		dev.setCalls = append(dev.setCalls, setCall{kernel: kernel, index: index, size: size})
		if value != nil {
			stored := make([]byte, size)
			copy(stored, unsafe.Slice((*byte)(value), size))
			k.args[index] = stored
		}
		return raw.Success
	}

	lib.EnqueueNDRangeKernel = func(queue raw.CommandQueue, kernel raw.Kernel, workDim uint32, globalOffset unsafe.Pointer, globalSize unsafe.Pointer, localSize unsafe.Pointer, numEvents uint32, waitList unsafe.Pointer, event unsafe.Pointer) int32 {
		k, ok := dev.kernels[kernel]
		if !ok {
			return raw.ErrInvalidKernel
		}
		dev.dispatches++
		if event != nil {
			*(*raw.Event)(event) = fakeEventID
		}
		if k.name != "sum" {
			return raw.Success
		}
		// Element-wise int32 add: c[i] = a[i] + b[i] over the first
		// global dimension, mirroring the vector-add demo kernel.
		n := *(*uintptr)(globalSize)
		a := dev.buffers[argMem(k, 0)]
		b := dev.buffers[argMem(k, 1)]
		c := dev.buffers[argMem(k, 2)]
		for i := uintptr(0); i < n; i++ {
			av := *(*int32)(unsafe.Pointer(&a[i*4]))
			bv := *(*int32)(unsafe.Pointer(&b[i*4]))
			*(*int32)(unsafe.Pointer(&c[i*4])) = av + bv
		}
		return raw.Success
	}
	lib.WaitForEvents = func(numEvents uint32, events unsafe.Pointer) int32 { return raw.Success }
	lib.ReleaseEvent = func(event raw.Event) int32 { return raw.Success }

	return lib
}

func argMem(k *fakeKernel, index uint32) raw.Mem {
	b := k.args[index]
	return *(*raw.Mem)(unsafe.Pointer(&b[0]))
}

// goString reads a NUL-terminated C string.
func goString(p unsafe.Pointer) string {
	var out []byte
	for i := 0; ; i++ {
		c := *(*byte)(unsafe.Pointer(uintptr(p) + uintptr(i)))
		if c == 0 {
			return string(out)
		}
		out = append(out, c)
	}
}

// fixture builds the usual platform/device/context/queue chain against a
// fresh fake device.
func fixture(v raw.Version, dev *fakeDevice) (*raw.Lib, Device, *Context, *Queue, error) {
	lib := newFakeLib(v, dev)
	platforms, err := Platforms(lib)
	if err != nil {
		return nil, Device{}, nil, nil, err
	}
	devices, err := platforms[0].Devices(DeviceGPU)
	if err != nil {
		return nil, Device{}, nil, nil, err
	}
	ctx, err := devices[0].CreateContext()
	if err != nil {
		return nil, Device{}, nil, nil, err
	}
	queue, err := ctx.NewQueue(devices[0]).Build()
	if err != nil {
		return nil, Device{}, nil, nil, err
	}
	return lib, devices[0], ctx, queue, nil
}
