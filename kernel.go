package dynocl

import (
	"log/slog"
	"reflect"
	"strings"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// UnboundKernel wraps a cl_kernel that has no arguments bound yet.
type UnboundKernel struct {
	lib *raw.Lib
	id  raw.Kernel
}

// Lib returns the library this kernel belongs to.
func (k *UnboundKernel) Lib() *raw.Lib { return k.lib }

// Raw returns the underlying cl_kernel.
func (k *UnboundKernel) Raw() raw.Kernel { return k.id }

// Release drops this wrapper's reference. Failures are logged, not returned.
func (k *UnboundKernel) Release() {
	if k == nil || k.id == 0 {
		return
	}
	if st := k.lib.ReleaseKernel(k.id); st != raw.Success {
		slog.Error("clReleaseKernel failed", slog.Int("code", int(st)))
	}
	k.id = 0
}

func (k *UnboundKernel) info() (string, infoFunc) {
	return "clGetKernelInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return k.lib.GetKernelInfo(k.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

// FunctionName returns the kernel's name as declared in the program source.
func (k *UnboundKernel) FunctionName() (string, error) {
	call, f := k.info()
	return getInfoString(call, f, raw.KernelFunctionName)
}

// NumArgs returns the number of arguments the kernel declares.
func (k *UnboundKernel) NumArgs() (int, error) {
	call, f := k.info()
	n, err := getInfoUint32(call, f, raw.KernelNumArgs)
	return int(n), err
}

func (k *UnboundKernel) ReferenceCount() (uint32, error) {
	call, f := k.info()
	return getInfoUint32(call, f, raw.KernelReferenceCount)
}

// Attributes returns the kernel's __attribute__ qualifiers. Needs a 1.2
// library.
func (k *UnboundKernel) Attributes() (string, error) {
	if err := k.lib.Require(raw.CL12, "CL_KERNEL_ATTRIBUTES"); err != nil {
		return "", err
	}
	call, f := k.info()
	return getInfoString(call, f, raw.KernelAttributes)
}

// WorkGroupSize returns the maximum work-group size usable for this kernel
// on the given device.
func (k *UnboundKernel) WorkGroupSize(d Device) (uintptr, error) {
	call := "clGetKernelWorkGroupInfo"
	f := func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return k.lib.GetKernelWorkGroupInfo(k.id, d.id, param, size, value, unsafe.Pointer(sizeRet))
	}
	return getInfoSize(call, f, raw.KernelWorkGroupSize)
}

// ArgTypeName returns the declared type of argument i as written in the
// kernel source, e.g. "int" or "float*". Needs a 1.2 library and a program
// built with argument info retained.
func (k *UnboundKernel) ArgTypeName(i int) (string, error) {
	if err := k.lib.Require(raw.CL12, "clGetKernelArgInfo"); err != nil {
		return "", err
	}
	call := "clGetKernelArgInfo"
	f := func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return k.lib.GetKernelArgInfo(k.id, uint32(i), param, size, value, unsafe.Pointer(sizeRet))
	}
	return getInfoString(call, f, raw.KernelArgTypeName)
}

// Clone duplicates the kernel including any argument state. Needs a 2.1
// library.
func (k *UnboundKernel) Clone() (*UnboundKernel, error) {
	if err := k.lib.Require(raw.CL21, "clCloneKernel"); err != nil {
		return nil, err
	}
	var status int32
	id := k.lib.CloneKernel(k.id, unsafe.Pointer(&status))
	if status != raw.Success {
		return nil, statusError("clCloneKernel", status)
	}
	return &UnboundKernel{lib: k.lib, id: id}, nil
}

// Arg is one kernel argument value. Build them with ScalarArg, BufferArg or
// LocalArg; the three constructors are the only implementations.
type Arg interface {
	setOn(lib *raw.Lib, k raw.Kernel, index uint32) error
	compatible(declared string) bool
	typeName() string
}

// ScalarArg passes v by value.
func ScalarArg[T Elem](v T) Arg {
	return scalarArg[T]{v: v}
}

type scalarArg[T Elem] struct {
	v T
}

func (a scalarArg[T]) setOn(lib *raw.Lib, k raw.Kernel, index uint32) error {
	v := a.v
	st := lib.SetKernelArg(k, index, unsafe.Sizeof(v), unsafe.Pointer(&v))
	return statusError("clSetKernelArg", st)
}

func (a scalarArg[T]) compatible(declared string) bool {
	return clTypeName[T]() == declared
}

func (a scalarArg[T]) typeName() string {
	return clTypeName[T]()
}

// BufferArg passes the buffer's mem handle. Any host capability is
// accepted; host access rights are enforced on transfers, not on kernel
// use.
func BufferArg[H HostAccess, T Elem](b *Buffer[H, T]) Arg {
	return bufferArg{handle: b.Raw(), elem: clTypeName[T]()}
}

type bufferArg struct {
	handle raw.Mem
	elem   string
}

func (a bufferArg) setOn(lib *raw.Lib, k raw.Kernel, index uint32) error {
	h := a.handle
	st := lib.SetKernelArg(k, index, unsafe.Sizeof(h), unsafe.Pointer(&h))
	return statusError("clSetKernelArg", st)
}

// compatible strips exactly one pointer marker from the declared type
// before comparing element types: a buffer of int32 matches "int*" but not
// "int" or "int**".
func (a bufferArg) compatible(declared string) bool {
	elem, ok := stripPointer(declared)
	return ok && elem == a.elem
}

func (a bufferArg) typeName() string {
	return a.elem + "*"
}

// LocalArg reserves size bytes of __local memory for the argument.
func LocalArg(size uintptr) Arg {
	return localArg{size: size}
}

type localArg struct {
	size uintptr
}

func (a localArg) setOn(lib *raw.Lib, k raw.Kernel, index uint32) error {
	st := lib.SetKernelArg(k, index, a.size, nil)
	return statusError("clSetKernelArg", st)
}

// Local memory arguments have no host-side element type to check.
func (a localArg) compatible(declared string) bool {
	_, ok := stripPointer(declared)
	return ok
}

func (a localArg) typeName() string {
	return "__local void*"
}

// clTypeName maps a Go element type to the OpenCL C scalar type name used
// in kernel argument declarations.
func clTypeName[T Elem]() string {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		return "char"
	case reflect.Uint8:
		return "uchar"
	case reflect.Int16:
		return "short"
	case reflect.Uint16:
		return "ushort"
	case reflect.Int32:
		return "int"
	case reflect.Uint32:
		return "uint"
	case reflect.Int64:
		return "long"
	case reflect.Uint64:
		return "ulong"
	case reflect.Float32:
		return "float"
	case reflect.Float64:
		return "double"
	default:
		return ""
	}
}

// stripPointer removes exactly one trailing pointer marker from a declared
// type name, tolerating space before the star.
func stripPointer(declared string) (string, bool) {
	s := strings.TrimSpace(declared)
	if !strings.HasSuffix(s, "*") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimSuffix(s, "*")), true
}

// BindArgs binds the arguments and returns a dispatchable kernel. The
// argument count is checked against the kernel's declared arity before
// anything is bound, and on 1.2+ libraries every argument's type is checked
// against the declaration in the kernel source. On libraries below 1.2 the
// type check is unavailable and BindArgs returns a *VersionError; use
// BindArgsUnchecked there.
//
// The UnboundKernel is absorbed into the result; release the returned
// Kernel instead.
func (k *UnboundKernel) BindArgs(args ...Arg) (*Kernel, error) {
	return k.bind(args, true)
}

// BindArgsUnchecked binds the arguments with the arity check but without
// the declared-type check.
func (k *UnboundKernel) BindArgsUnchecked(args ...Arg) (*Kernel, error) {
	return k.bind(args, false)
}

func (k *UnboundKernel) bind(args []Arg, typeCheck bool) (*Kernel, error) {
	name, err := k.FunctionName()
	if err != nil {
		return nil, err
	}
	want, err := k.NumArgs()
	if err != nil {
		return nil, err
	}
	if want != len(args) {
		return nil, &ArityError{Kernel: name, Want: want, Got: len(args)}
	}

	if typeCheck {
		if err := k.lib.Require(raw.CL12, "clGetKernelArgInfo"); err != nil {
			return nil, err
		}
		for i, a := range args {
			declared, err := k.ArgTypeName(i)
			if err != nil {
				return nil, err
			}
			if !a.compatible(declared) {
				return nil, &ArgTypeError{Kernel: name, Index: i, Declared: declared, Supplied: a.typeName()}
			}
		}
	}

	slots := make([]BoundArg, len(args))
	for i, a := range args {
		if err := a.setOn(k.lib, k.id, uint32(i)); err != nil {
			return nil, err
		}
		slots[i] = BoundArg{lib: k.lib, kernel: k.id, index: uint32(i), value: a}
	}
	return &Kernel{UnboundKernel: *k, slots: slots}, nil
}

// Kernel is a kernel with all arguments bound, ready for dispatch. Bound
// argument slots stay addressable through Arg for in-place updates between
// dispatches.
type Kernel struct {
	UnboundKernel
	slots []BoundArg
}

// Arity returns the number of bound arguments.
func (k *Kernel) Arity() int { return len(k.slots) }

// Arg returns the bound argument slot at index i. The pointer stays valid
// for the kernel's lifetime.
func (k *Kernel) Arg(i int) *BoundArg { return &k.slots[i] }

// BoundArg is one argument slot of a bound kernel. Updating it re-binds the
// value on the underlying kernel immediately.
type BoundArg struct {
	lib    *raw.Lib
	kernel raw.Kernel
	index  uint32
	value  Arg
}

// Index returns the argument's position.
func (b *BoundArg) Index() int { return int(b.index) }

// Value returns the currently bound argument.
func (b *BoundArg) Value() Arg { return b.value }

// Set re-binds the slot to v. No declared-type check is repeated here;
// rebinding an incompatible value surfaces as a driver error.
func (b *BoundArg) Set(v Arg) error {
	if err := v.setOn(b.lib, b.kernel, b.index); err != nil {
		return err
	}
	b.value = v
	return nil
}

// Replace re-binds the slot to v and returns the previously bound value.
func (b *BoundArg) Replace(v Arg) (Arg, error) {
	old := b.value
	if err := b.Set(v); err != nil {
		return nil, err
	}
	return old, nil
}
