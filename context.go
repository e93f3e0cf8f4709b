package dynocl

import (
	"log/slog"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// Context wraps a cl_context with one reference owned by this value.
type Context struct {
	lib *raw.Lib
	id  raw.Context
}

// CreateContext creates a context holding just this device, pinned to the
// device's platform.
func (d Device) CreateContext() (*Context, error) {
	platform, err := d.Platform()
	if err != nil {
		return nil, err
	}
	props := [3]uintptr{raw.ContextPlatformProp, uintptr(platform.id), 0}
	devices := [1]raw.DeviceID{d.id}
	var status int32
	ctx := d.lib.CreateContext(unsafe.Pointer(&props[0]), 1, unsafe.Pointer(&devices[0]), 0, nil, unsafe.Pointer(&status))
	if status != raw.Success {
		return nil, statusError("clCreateContext", status)
	}
	return &Context{lib: d.lib, id: ctx}, nil
}

// Lib returns the library this context belongs to.
func (c *Context) Lib() *raw.Lib { return c.lib }

// Raw returns the underlying cl_context.
func (c *Context) Raw() raw.Context { return c.id }

// Retain bumps the reference count and returns a second owning wrapper.
func (c *Context) Retain() (*Context, error) {
	if st := c.lib.RetainContext(c.id); st != raw.Success {
		return nil, statusError("clRetainContext", st)
	}
	return &Context{lib: c.lib, id: c.id}, nil
}

// Release drops this wrapper's reference. Failures are logged, not
// returned; release runs in cleanup paths where there is nothing useful a
// caller could do with the error.
func (c *Context) Release() {
	if c == nil || c.id == 0 {
		return
	}
	if st := c.lib.ReleaseContext(c.id); st != raw.Success {
		slog.Error("clReleaseContext failed", slog.Int("code", int(st)))
	}
	c.id = 0
}

func (c *Context) info() (string, infoFunc) {
	return "clGetContextInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return c.lib.GetContextInfo(c.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (c *Context) ReferenceCount() (uint32, error) {
	call, f := c.info()
	return getInfoUint32(call, f, raw.ContextReferenceCount)
}

func (c *Context) NumDevices() (uint32, error) {
	call, f := c.info()
	return getInfoUint32(call, f, raw.ContextNumDevices)
}

// Devices lists the devices the context was created with.
func (c *Context) Devices() ([]Device, error) {
	call, f := c.info()
	buf, err := getInfoBytes(call, f, raw.ContextDevices)
	if err != nil || buf == nil {
		return nil, err
	}
	word := int(unsafe.Sizeof(raw.DeviceID(0)))
	if len(buf)%word != 0 {
		return nil, &DataLengthError{Call: call, Expected: len(buf) / word * word, Actual: len(buf)}
	}
	n := len(buf) / word
	devices := make([]Device, n)
	for i := 0; i < n; i++ {
		id := *(*raw.DeviceID)(unsafe.Pointer(&buf[i*word]))
		devices[i] = Device{lib: c.lib, id: id}
	}
	return devices, nil
}

// SVMAlloc allocates shared virtual memory usable by both host and device.
// The returned pointer must be released with SVMFree.
func (c *Context) SVMAlloc(size uintptr, alignment uint32) (unsafe.Pointer, error) {
	if err := c.lib.Require(raw.CL20, "clSVMAlloc"); err != nil {
		return nil, err
	}
	ptr := c.lib.SVMAlloc(c.id, raw.MemReadWrite, size, alignment)
	if ptr == nil {
		return nil, &APIError{Call: "clSVMAlloc", Code: raw.ErrMemObjectAllocationFailure}
	}
	return ptr, nil
}

// SVMFree releases memory obtained from SVMAlloc.
func (c *Context) SVMFree(ptr unsafe.Pointer) error {
	if err := c.lib.Require(raw.CL20, "clSVMFree"); err != nil {
		return err
	}
	c.lib.SVMFree(c.id, ptr)
	return nil
}
