package dynocl

import (
	"log/slog"
	"strings"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// ProgramBuilder accumulates source and compiler options for a program
// build.
type ProgramBuilder struct {
	ctx    *Context
	source string
	il     []byte
	opts   []string
}

// NewProgram starts building a program from OpenCL C source.
func (c *Context) NewProgram(source string) *ProgramBuilder {
	return &ProgramBuilder{ctx: c, source: source}
}

// NewProgramWithIL starts building a program from an intermediate language
// binary (SPIR-V). Needs a 2.1 library.
func (c *Context) NewProgramWithIL(il []byte) *ProgramBuilder {
	return &ProgramBuilder{ctx: c, il: il}
}

// Options appends compiler options, e.g. "-cl-fast-relaxed-math".
func (b *ProgramBuilder) Options(opts ...string) *ProgramBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build creates the program object and compiles it for every device in the
// context. On a compile failure the per-device build logs are emitted
// through slog before the error is returned.
func (b *ProgramBuilder) Build() (*Program, error) {
	lib := b.ctx.lib

	var status int32
	var prog raw.Program
	switch {
	case b.il != nil:
		if err := lib.Require(raw.CL21, "clCreateProgramWithIL"); err != nil {
			return nil, err
		}
		prog = lib.CreateProgramWithIL(b.ctx.id, unsafe.Pointer(&b.il[0]), uintptr(len(b.il)), unsafe.Pointer(&status))
		if status != raw.Success {
			return nil, statusError("clCreateProgramWithIL", status)
		}
	default:
		src := []byte(b.source)
		if len(src) == 0 {
			src = []byte{0}
		}
		srcs := [1]unsafe.Pointer{unsafe.Pointer(&src[0])}
		lengths := [1]uintptr{uintptr(len(b.source))}
		prog = lib.CreateProgramWithSource(b.ctx.id, 1, unsafe.Pointer(&srcs[0]), unsafe.Pointer(&lengths[0]), unsafe.Pointer(&status))
		if status != raw.Success {
			return nil, statusError("clCreateProgramWithSource", status)
		}
	}
	p := &Program{lib: lib, id: prog}

	var optsPtr unsafe.Pointer
	if len(b.opts) > 0 {
		cOpts := append([]byte(strings.Join(b.opts, " ")), 0)
		optsPtr = unsafe.Pointer(&cOpts[0])
	}
	if st := lib.BuildProgram(prog, 0, nil, optsPtr, 0, nil); st != raw.Success {
		p.dumpBuildLogs()
		p.Release()
		return nil, statusError("clBuildProgram", st)
	}
	return p, nil
}

// Program wraps a built cl_program with one reference owned by this value.
type Program struct {
	lib *raw.Lib
	id  raw.Program
}

// Lib returns the library this program belongs to.
func (p *Program) Lib() *raw.Lib { return p.lib }

// Raw returns the underlying cl_program.
func (p *Program) Raw() raw.Program { return p.id }

// Retain bumps the reference count and returns a second owning wrapper.
func (p *Program) Retain() (*Program, error) {
	if st := p.lib.RetainProgram(p.id); st != raw.Success {
		return nil, statusError("clRetainProgram", st)
	}
	return &Program{lib: p.lib, id: p.id}, nil
}

// Release drops this wrapper's reference. Failures are logged, not returned.
func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	if st := p.lib.ReleaseProgram(p.id); st != raw.Success {
		slog.Error("clReleaseProgram failed", slog.Int("code", int(st)))
	}
	p.id = 0
}

func (p *Program) info() (string, infoFunc) {
	return "clGetProgramInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return p.lib.GetProgramInfo(p.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (p *Program) buildInfo(d Device) (string, infoFunc) {
	return "clGetProgramBuildInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return p.lib.GetProgramBuildInfo(p.id, d.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (p *Program) ReferenceCount() (uint32, error) {
	call, f := p.info()
	return getInfoUint32(call, f, raw.ProgramReferenceCount)
}

func (p *Program) Source() (string, error) {
	call, f := p.info()
	return getInfoString(call, f, raw.ProgramSource)
}

// KernelNames lists the kernels in the program. Needs a 1.2 library.
func (p *Program) KernelNames() ([]string, error) {
	if err := p.lib.Require(raw.CL12, "CL_PROGRAM_KERNEL_NAMES"); err != nil {
		return nil, err
	}
	call, f := p.info()
	names, err := getInfoString(call, f, raw.ProgramKernelNames)
	if err != nil || names == "" {
		return nil, err
	}
	return strings.Split(names, ";"), nil
}

// BuildLog returns the compiler log for the given device.
func (p *Program) BuildLog(d Device) (string, error) {
	call, f := p.buildInfo(d)
	return getInfoString(call, f, raw.ProgramBuildLog)
}

// BuildStatus returns the cl_build_status for the given device.
func (p *Program) BuildStatus(d Device) (int32, error) {
	call, f := p.buildInfo(d)
	return getInfoInt32(call, f, raw.ProgramBuildStatus)
}

// BuildOptions returns the options the program was last built with.
func (p *Program) BuildOptions(d Device) (string, error) {
	call, f := p.buildInfo(d)
	return getInfoString(call, f, raw.ProgramBuildOptions)
}

// SetSpecializationConstant overrides a SPIR-V specialization constant
// before the program is built. Needs a 2.2 library.
func (p *Program) SetSpecializationConstant(specID uint32, value []byte) error {
	if err := p.lib.Require(raw.CL22, "clSetProgramSpecializationConstant"); err != nil {
		return err
	}
	st := p.lib.SetProgramSpecializationConstant(p.id, specID, uintptr(len(value)), unsafe.Pointer(&value[0]))
	return statusError("clSetProgramSpecializationConstant", st)
}

// CreateKernel instantiates a kernel by name. The result carries no
// arguments; bind them with BindArgs before dispatch.
func (p *Program) CreateKernel(name string) (*UnboundKernel, error) {
	cName := append([]byte(name), 0)
	var status int32
	k := p.lib.CreateKernel(p.id, unsafe.Pointer(&cName[0]), unsafe.Pointer(&status))
	if status != raw.Success {
		return nil, statusError("clCreateKernel", status)
	}
	return &UnboundKernel{lib: p.lib, id: k}, nil
}

// dumpBuildLogs emits the compiler log of every context device after a
// failed build.
func (p *Program) dumpBuildLogs() {
	call, f := p.info()
	buf, err := getInfoBytes(call, f, raw.ProgramDevices)
	if err != nil || buf == nil {
		return
	}
	word := int(unsafe.Sizeof(raw.DeviceID(0)))
	for i := 0; i+word <= len(buf); i += word {
		d := Device{lib: p.lib, id: *(*raw.DeviceID)(unsafe.Pointer(&buf[i]))}
		log, err := p.BuildLog(d)
		if err != nil {
			continue
		}
		name, _ := d.Name()
		slog.Error("OpenCL program build failed",
			slog.String("device", name),
			slog.String("log", strings.TrimSpace(log)))
	}
}
