package dynocl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// ReadBuffer copies buffer elements [offset, offset+len(dst)) into dst,
// blocking until the transfer completes. It only accepts buffers created
// with a host-readable capability; for HostNoAccess and HostWriteOnly
// buffers the call does not compile.
func ReadBuffer[H HostReadable, T Elem](q *Queue, b *Buffer[H, T], offset int, dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	if offset < 0 || offset+len(dst) > b.Len() {
		return &FlagError{Context: "read range out of buffer bounds", Value: uint64(offset)}
	}
	st := q.lib.EnqueueReadBuffer(q.id, b.Raw(), raw.True,
		uintptr(offset)*elemSize[T](), uintptr(len(dst))*elemSize[T](),
		unsafe.Pointer(&dst[0]), 0, nil, nil)
	return statusError("clEnqueueReadBuffer", st)
}

// WriteBuffer copies src into buffer elements [offset, offset+len(src)),
// blocking until the transfer completes. It only accepts buffers created
// with a host-writable capability.
func WriteBuffer[H HostWritable, T Elem](q *Queue, b *Buffer[H, T], offset int, src []T) error {
	if len(src) == 0 {
		return nil
	}
	if offset < 0 || offset+len(src) > b.Len() {
		return &FlagError{Context: "write range out of buffer bounds", Value: uint64(offset)}
	}
	st := q.lib.EnqueueWriteBuffer(q.id, b.Raw(), raw.True,
		uintptr(offset)*elemSize[T](), uintptr(len(src))*elemSize[T](),
		unsafe.Pointer(&src[0]), 0, nil, nil)
	return statusError("clEnqueueWriteBuffer", st)
}

// FillBuffer sets every element of the buffer to pattern and waits for the
// fill to complete. Filling happens on the device, so no host capability is
// required, but the entry point needs a 1.2 library.
func FillBuffer[H HostAccess, T Elem](q *Queue, b *Buffer[H, T], pattern T) error {
	if err := q.lib.Require(raw.CL12, "clEnqueueFillBuffer"); err != nil {
		return err
	}
	if b.Len() == 0 {
		return nil
	}
	var event raw.Event
	st := q.lib.EnqueueFillBuffer(q.id, b.Raw(),
		unsafe.Pointer(&pattern), elemSize[T](), 0, b.ByteSize(),
		0, nil, unsafe.Pointer(&event))
	if st != raw.Success {
		return statusError("clEnqueueFillBuffer", st)
	}
	return waitAndRelease(q.lib, event)
}

// CopyBuffer copies n elements from src[srcOffset:] to dst[dstOffset:] on
// the device and waits for the copy to complete. Neither buffer needs a
// host capability.
func CopyBuffer[HS, HD HostAccess, T Elem](q *Queue, src *Buffer[HS, T], dst *Buffer[HD, T], srcOffset, dstOffset, n int) error {
	if n == 0 {
		return nil
	}
	if srcOffset < 0 || srcOffset+n > src.Len() || dstOffset < 0 || dstOffset+n > dst.Len() {
		return &FlagError{Context: "copy range out of buffer bounds", Value: uint64(n)}
	}
	var event raw.Event
	st := q.lib.EnqueueCopyBuffer(q.id, src.Raw(), dst.Raw(),
		uintptr(srcOffset)*elemSize[T](), uintptr(dstOffset)*elemSize[T](), uintptr(n)*elemSize[T](),
		0, nil, unsafe.Pointer(&event))
	if st != raw.Success {
		return statusError("clEnqueueCopyBuffer", st)
	}
	return waitAndRelease(q.lib, event)
}

func waitAndRelease(lib *raw.Lib, event raw.Event) error {
	events := [1]raw.Event{event}
	st := lib.WaitForEvents(1, unsafe.Pointer(&events[0]))
	if rst := lib.ReleaseEvent(event); rst != raw.Success {
		slog.Warn("clReleaseEvent failed", slog.Int("code", int(rst)))
	}
	return statusError("clWaitForEvents", st)
}

// KernelCmd accumulates an NDRange dispatch for a bound kernel.
type KernelCmd struct {
	q      *Queue
	k      *Kernel
	offset []uintptr
	local  []uintptr
}

// Cmd starts building a dispatch of the kernel on this queue.
func (q *Queue) Cmd(k *Kernel) *KernelCmd {
	return &KernelCmd{q: q, k: k}
}

// GlobalOffset sets the global work offset. Dimensionality must match the
// global size passed to Exec.
func (c *KernelCmd) GlobalOffset(dims ...uintptr) *KernelCmd {
	c.offset = dims
	return c
}

// LocalSize sets the work-group size. Dimensionality must match the global
// size passed to Exec; without it the driver picks.
func (c *KernelCmd) LocalSize(dims ...uintptr) *KernelCmd {
	c.local = dims
	return c
}

// Exec enqueues the kernel over the given 1-, 2- or 3-dimensional global
// size and waits for completion.
func (c *KernelCmd) Exec(global ...uintptr) error {
	dims := len(global)
	if dims < 1 || dims > 3 {
		return fmt.Errorf("kernel dispatch needs 1 to 3 dimensions, got %d", dims)
	}
	if c.offset != nil && len(c.offset) != dims {
		return fmt.Errorf("global offset has %d dimensions, global size has %d", len(c.offset), dims)
	}
	if c.local != nil && len(c.local) != dims {
		return fmt.Errorf("local size has %d dimensions, global size has %d", len(c.local), dims)
	}

	var offsetPtr, localPtr unsafe.Pointer
	if c.offset != nil {
		offsetPtr = unsafe.Pointer(&c.offset[0])
	}
	if c.local != nil {
		localPtr = unsafe.Pointer(&c.local[0])
	}

	var event raw.Event
	st := c.q.lib.EnqueueNDRangeKernel(c.q.id, c.k.id, uint32(dims),
		offsetPtr, unsafe.Pointer(&global[0]), localPtr,
		0, nil, unsafe.Pointer(&event))
	if st != raw.Success {
		return statusError("clEnqueueNDRangeKernel", st)
	}
	return waitAndRelease(c.q.lib, event)
}
