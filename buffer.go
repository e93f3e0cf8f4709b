package dynocl

import (
	"log/slog"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// Host access capabilities. The capability a buffer was created with
// becomes part of its type, so transfers the device would reject are
// rejected by the compiler instead: ReadBuffer only accepts buffers whose
// host capability satisfies HostReadable, WriteBuffer requires
// HostWritable. HostNoAccess satisfies neither.
//
// The interfaces are sealed; the four marker types below are the only
// implementations.
type (
	// HostAccess is implemented by every host capability marker.
	HostAccess interface {
		hostFlags() raw.MemFlags
	}
	// HostReadable marks capabilities that permit host reads.
	HostReadable interface {
		HostAccess
		hostReadable()
	}
	// HostWritable marks capabilities that permit host writes.
	HostWritable interface {
		HostAccess
		hostWritable()
	}
)

type (
	// HostNoAccess: the host neither reads nor writes the buffer.
	HostNoAccess struct{}
	// HostReadOnly: the host only reads the buffer.
	HostReadOnly struct{}
	// HostWriteOnly: the host only writes the buffer.
	HostWriteOnly struct{}
	// HostReadWrite: the host both reads and writes the buffer.
	HostReadWrite struct{}
)

func (HostNoAccess) hostFlags() raw.MemFlags  { return raw.MemHostNoAccess }
func (HostReadOnly) hostFlags() raw.MemFlags  { return raw.MemHostReadOnly }
func (HostWriteOnly) hostFlags() raw.MemFlags { return raw.MemHostWriteOnly }
func (HostReadWrite) hostFlags() raw.MemFlags { return 0 }

func (HostReadOnly) hostReadable()  {}
func (HostReadWrite) hostReadable() {}

func (HostWriteOnly) hostWritable() {}
func (HostReadWrite) hostWritable() {}

// DeviceAccess is implemented by the device capability markers. Device
// access only affects creation flags, not the transfer API, so it is a
// builder parameter rather than part of the buffer type.
type DeviceAccess interface {
	deviceFlags() raw.MemFlags
}

type (
	// DeviceReadOnly: kernels only read the buffer.
	DeviceReadOnly struct{}
	// DeviceWriteOnly: kernels only write the buffer.
	DeviceWriteOnly struct{}
	// DeviceReadWrite: kernels both read and write the buffer.
	DeviceReadWrite struct{}
)

func (DeviceReadOnly) deviceFlags() raw.MemFlags  { return raw.MemReadOnly }
func (DeviceWriteOnly) deviceFlags() raw.MemFlags { return raw.MemWriteOnly }
func (DeviceReadWrite) deviceFlags() raw.MemFlags { return raw.MemReadWrite }

// Elem constrains buffer element types to plain data with a fixed wire
// layout matching an OpenCL C scalar type.
type Elem interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// elemSize returns the byte size of one element.
func elemSize[T Elem]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Buffer wraps a cl_mem holding a slice of T. The host capability H is
// fixed at creation and gates ReadBuffer and WriteBuffer at compile time.
type Buffer[H HostAccess, T Elem] struct {
	lib    *raw.Lib
	handle raw.Mem
	length int
}

// BufferBuilder accumulates creation flags for a buffer of element type T
// with host capability H and device capability D.
type BufferBuilder[H HostAccess, D DeviceAccess, T Elem] struct {
	ctx          *Context
	allocHostPtr bool
}

// NewBufferBuilder starts building a buffer in the given context. The
// three type parameters pick host access, device access and element type:
//
//	NewBufferBuilder[HostNoAccess, DeviceReadOnly, int32](ctx).CopyFrom(data)
func NewBufferBuilder[H HostAccess, D DeviceAccess, T Elem](ctx *Context) *BufferBuilder[H, D, T] {
	return &BufferBuilder[H, D, T]{ctx: ctx}
}

// AllocHostPtr asks the driver to allocate the backing store in
// host-accessible memory (CL_MEM_ALLOC_HOST_PTR).
func (b *BufferBuilder[H, D, T]) AllocHostPtr() *BufferBuilder[H, D, T] {
	b.allocHostPtr = true
	return b
}

// WithCapacity creates an uninitialized buffer of n elements.
func (b *BufferBuilder[H, D, T]) WithCapacity(n int) (*Buffer[H, T], error) {
	return b.create(n, nil, 0)
}

// CopyFrom creates a buffer of len(data) elements initialized from data.
// The slice is copied at creation (CL_MEM_COPY_HOST_PTR); the buffer holds
// no reference to it afterwards.
func (b *BufferBuilder[H, D, T]) CopyFrom(data []T) (*Buffer[H, T], error) {
	var host unsafe.Pointer
	if len(data) > 0 {
		host = unsafe.Pointer(&data[0])
	}
	return b.create(len(data), host, raw.MemCopyHostPtr)
}

// UseHostSlice creates a buffer backed by the slice's own memory
// (CL_MEM_USE_HOST_PTR). The caller keeps the slice alive and unmoved for
// the buffer's lifetime. Incompatible with AllocHostPtr.
func (b *BufferBuilder[H, D, T]) UseHostSlice(data []T) (*Buffer[H, T], error) {
	if b.allocHostPtr {
		return nil, &FlagError{
			Context: "UseHostSlice cannot be combined with AllocHostPtr",
			Value:   uint64(raw.MemUseHostPtr | raw.MemAllocHostPtr),
		}
	}
	if len(data) == 0 {
		return nil, &FlagError{Context: "UseHostSlice requires a non-empty slice", Value: uint64(raw.MemUseHostPtr)}
	}
	return b.create(len(data), unsafe.Pointer(&data[0]), raw.MemUseHostPtr)
}

func (b *BufferBuilder[H, D, T]) create(n int, hostPtr unsafe.Pointer, extra raw.MemFlags) (*Buffer[H, T], error) {
	var h H
	var d D
	flags := h.hostFlags() | d.deviceFlags() | extra
	if b.allocHostPtr {
		flags |= raw.MemAllocHostPtr
	}
	lib := b.ctx.lib
	var status int32
	handle := lib.CreateBuffer(b.ctx.id, flags, uintptr(n)*elemSize[T](), hostPtr, unsafe.Pointer(&status))
	if status != raw.Success {
		return nil, statusError("clCreateBuffer", status)
	}
	return &Buffer[H, T]{lib: lib, handle: handle, length: n}, nil
}

// Lib returns the library this buffer belongs to.
func (b *Buffer[H, T]) Lib() *raw.Lib { return b.lib }

// Raw returns the underlying cl_mem.
func (b *Buffer[H, T]) Raw() raw.Mem { return b.handle }

// Len returns the element count.
func (b *Buffer[H, T]) Len() int { return b.length }

// ByteSize returns the buffer size in bytes.
func (b *Buffer[H, T]) ByteSize() uintptr { return uintptr(b.length) * elemSize[T]() }

// Release drops this wrapper's reference. Failures are logged, not returned.
func (b *Buffer[H, T]) Release() {
	if b == nil || b.handle == 0 {
		return
	}
	if st := b.lib.ReleaseMemObject(b.handle); st != raw.Success {
		slog.Error("clReleaseMemObject failed", slog.Int("code", int(st)))
	}
	b.handle = 0
}

func (b *Buffer[H, T]) info() (string, infoFunc) {
	return "clGetMemObjectInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return b.lib.GetMemObjectInfo(b.handle, param, size, value, unsafe.Pointer(sizeRet))
	}
}

// Flags returns the cl_mem_flags the buffer was created with.
func (b *Buffer[H, T]) Flags() (raw.MemFlags, error) {
	call, f := b.info()
	v, err := getInfoUint64(call, f, raw.MemFlagsInfo)
	return raw.MemFlags(v), err
}

// Size returns the byte size the driver reports for the buffer.
func (b *Buffer[H, T]) Size() (uintptr, error) {
	call, f := b.info()
	return getInfoSize(call, f, raw.MemSizeInfo)
}

func (b *Buffer[H, T]) ReferenceCount() (uint32, error) {
	call, f := b.info()
	return getInfoUint32(call, f, raw.MemReferenceCount)
}

func (b *Buffer[H, T]) MapCount() (uint32, error) {
	call, f := b.info()
	return getInfoUint32(call, f, raw.MemMapCount)
}

// HostPtr returns the host pointer the buffer was created over, zero unless
// CL_MEM_USE_HOST_PTR was used.
func (b *Buffer[H, T]) HostPtr() (uintptr, error) {
	call, f := b.info()
	return getInfoSize(call, f, raw.MemHostPtrInfo)
}

// Offset returns the byte offset of a sub-buffer within its parent, zero
// for top-level buffers.
func (b *Buffer[H, T]) Offset() (uintptr, error) {
	call, f := b.info()
	return getInfoSize(call, f, raw.MemOffsetInfo)
}

// SubBuffer carves a sub-range [offset, offset+n) out of the buffer. The
// sub-buffer shares storage with its parent and inherits the host
// capability type. Needs a 1.1 library.
func (b *Buffer[H, T]) SubBuffer(offset, n int) (*Buffer[H, T], error) {
	if err := b.lib.Require(raw.CL11, "clCreateSubBuffer"); err != nil {
		return nil, err
	}
	if offset < 0 || n < 0 || offset+n > b.length {
		return nil, &FlagError{Context: "sub-buffer range out of bounds", Value: uint64(offset)}
	}
	region := [2]uintptr{uintptr(offset) * elemSize[T](), uintptr(n) * elemSize[T]()}
	var status int32
	handle := b.lib.CreateSubBuffer(b.handle, 0, raw.BufferCreateTypeRegion, unsafe.Pointer(&region[0]), unsafe.Pointer(&status))
	if status != raw.Success {
		return nil, statusError("clCreateSubBuffer", status)
	}
	return &Buffer[H, T]{lib: b.lib, handle: handle, length: n}, nil
}
