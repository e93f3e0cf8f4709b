package dynocl

import (
	"log/slog"
	"unsafe"

	"github.com/cwbudde/dynocl/raw"
)

// QueueProperties selects command queue behavior at creation time.
type QueueProperties uint64

const (
	QueueOutOfOrderExec  QueueProperties = QueueProperties(raw.QueueOutOfOrderExec)
	QueueProfiling       QueueProperties = QueueProperties(raw.QueueProfiling)
	QueueOnDevice        QueueProperties = QueueProperties(raw.QueueOnDevice)
	QueueOnDeviceDefault QueueProperties = QueueProperties(raw.QueueOnDeviceDefault)
)

// QueueBuilder accumulates command queue options. Zero configuration
// produces a plain in-order host queue through the 1.0 entry point; on-device
// queues and explicit sizes route through clCreateCommandQueueWithProperties
// and therefore need a 2.0 library.
type QueueBuilder struct {
	ctx   *Context
	dev   Device
	props QueueProperties
	size  uint32
	sized bool
}

// NewQueue starts building a command queue for the given device, which must
// belong to the context.
func (c *Context) NewQueue(d Device) *QueueBuilder {
	return &QueueBuilder{ctx: c, dev: d}
}

// Properties sets the queue property bits.
func (b *QueueBuilder) Properties(p QueueProperties) *QueueBuilder {
	b.props = p
	return b
}

// Size sets the on-device queue size in bytes. Only meaningful together
// with QueueOnDevice; Build rejects a size on a host queue.
func (b *QueueBuilder) Size(n uint32) *QueueBuilder {
	b.size = n
	b.sized = true
	return b
}

// Build creates the queue.
func (b *QueueBuilder) Build() (*Queue, error) {
	lib := b.ctx.lib
	if b.sized && b.props&QueueOnDevice == 0 {
		return nil, &FlagError{Context: "queue size requires QueueOnDevice", Value: uint64(b.props)}
	}

	var status int32
	var q raw.CommandQueue
	if b.props&QueueOnDevice != 0 || b.sized {
		if err := lib.Require(raw.CL20, "clCreateCommandQueueWithProperties"); err != nil {
			return nil, err
		}
		// Property list: key/value pairs terminated by zero.
		props := make([]uint64, 0, 5)
		props = append(props, uint64(raw.QueuePropertiesParam), uint64(b.props))
		if b.sized {
			props = append(props, uint64(raw.QueueSizeParam), uint64(b.size))
		}
		props = append(props, 0)
		q = lib.CreateCommandQueueWithProperties(b.ctx.id, b.dev.id, unsafe.Pointer(&props[0]), unsafe.Pointer(&status))
		if status != raw.Success {
			return nil, statusError("clCreateCommandQueueWithProperties", status)
		}
	} else {
		q = lib.CreateCommandQueue(b.ctx.id, b.dev.id, raw.QueueProps(b.props), unsafe.Pointer(&status))
		if status != raw.Success {
			return nil, statusError("clCreateCommandQueue", status)
		}
	}
	return &Queue{lib: lib, id: q}, nil
}

// Queue wraps a cl_command_queue with one reference owned by this value.
type Queue struct {
	lib *raw.Lib
	id  raw.CommandQueue
}

// Lib returns the library this queue belongs to.
func (q *Queue) Lib() *raw.Lib { return q.lib }

// Raw returns the underlying cl_command_queue.
func (q *Queue) Raw() raw.CommandQueue { return q.id }

// Retain bumps the reference count and returns a second owning wrapper.
func (q *Queue) Retain() (*Queue, error) {
	if st := q.lib.RetainCommandQueue(q.id); st != raw.Success {
		return nil, statusError("clRetainCommandQueue", st)
	}
	return &Queue{lib: q.lib, id: q.id}, nil
}

// Release drops this wrapper's reference. Failures are logged, not returned.
func (q *Queue) Release() {
	if q == nil || q.id == 0 {
		return
	}
	if st := q.lib.ReleaseCommandQueue(q.id); st != raw.Success {
		slog.Error("clReleaseCommandQueue failed", slog.Int("code", int(st)))
	}
	q.id = 0
}

// Finish blocks until every command in the queue has completed.
func (q *Queue) Finish() error {
	return statusError("clFinish", q.lib.Finish(q.id))
}

// Flush submits all queued commands without waiting for completion.
func (q *Queue) Flush() error {
	return statusError("clFlush", q.lib.Flush(q.id))
}

func (q *Queue) info() (string, infoFunc) {
	return "clGetCommandQueueInfo", func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32 {
		return q.lib.GetCommandQueueInfo(q.id, param, size, value, unsafe.Pointer(sizeRet))
	}
}

func (q *Queue) ReferenceCount() (uint32, error) {
	call, f := q.info()
	return getInfoUint32(call, f, raw.QueueReferenceCount)
}

func (q *Queue) Properties() (QueueProperties, error) {
	call, f := q.info()
	v, err := getInfoUint64(call, f, raw.QueuePropertiesParam)
	return QueueProperties(v), err
}

// Marker enqueues a marker that completes when all prior commands complete.
func (q *Queue) Marker() error {
	if err := q.lib.Require(raw.CL12, "clEnqueueMarkerWithWaitList"); err != nil {
		return err
	}
	return statusError("clEnqueueMarkerWithWaitList", q.lib.EnqueueMarkerWithWaitList(q.id, 0, nil, nil))
}

// Barrier enqueues a barrier blocking later commands until all prior
// commands complete.
func (q *Queue) Barrier() error {
	if err := q.lib.Require(raw.CL12, "clEnqueueBarrierWithWaitList"); err != nil {
		return err
	}
	return statusError("clEnqueueBarrierWithWaitList", q.lib.EnqueueBarrierWithWaitList(q.id, 0, nil, nil))
}
