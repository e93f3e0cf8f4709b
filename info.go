package dynocl

import (
	"encoding/binary"
	"strings"
	"unsafe"
)

// infoFunc abstracts the clGetXxxInfo entry points: every one takes a
// parameter name, a buffer with its size and an out-parameter for the size
// actually required.
type infoFunc func(param uint32, size uintptr, value unsafe.Pointer, sizeRet *uintptr) int32

// getInfoBytes runs the two-call query convention: ask for the required
// size, allocate, then fetch the data. The size reported by the second call
// must match the first; drivers that change their answer in between produce
// a DataLengthError rather than silently truncated data.
func getInfoBytes(call string, f infoFunc, param uint32) ([]byte, error) {
	var size uintptr
	if st := f(param, 0, nil, &size); st != 0 {
		return nil, statusError(call, st)
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	var written uintptr
	if st := f(param, size, unsafe.Pointer(&buf[0]), &written); st != 0 {
		return nil, statusError(call, st)
	}
	if written != size {
		return nil, &DataLengthError{Call: call, Expected: int(size), Actual: int(written)}
	}
	return buf, nil
}

// getInfoSized fetches fixed-size data in a single call and checks that the
// driver wrote exactly the expected number of bytes.
func getInfoSized(call string, f infoFunc, param uint32, dst unsafe.Pointer, size uintptr) error {
	var written uintptr
	if st := f(param, size, dst, &written); st != 0 {
		return statusError(call, st)
	}
	if written != size {
		return &DataLengthError{Call: call, Expected: int(size), Actual: int(written)}
	}
	return nil
}

func getInfoString(call string, f infoFunc, param uint32) (string, error) {
	buf, err := getInfoBytes(call, f, param)
	if err != nil {
		return "", err
	}
	return trimNull(string(buf)), nil
}

func getInfoUint32(call string, f infoFunc, param uint32) (uint32, error) {
	var v uint32
	err := getInfoSized(call, f, param, unsafe.Pointer(&v), unsafe.Sizeof(v))
	return v, err
}

func getInfoUint64(call string, f infoFunc, param uint32) (uint64, error) {
	var v uint64
	err := getInfoSized(call, f, param, unsafe.Pointer(&v), unsafe.Sizeof(v))
	return v, err
}

func getInfoInt32(call string, f infoFunc, param uint32) (int32, error) {
	var v int32
	err := getInfoSized(call, f, param, unsafe.Pointer(&v), unsafe.Sizeof(v))
	return v, err
}

func getInfoSize(call string, f infoFunc, param uint32) (uintptr, error) {
	var v uintptr
	err := getInfoSized(call, f, param, unsafe.Pointer(&v), unsafe.Sizeof(v))
	return v, err
}

func getInfoBool(call string, f infoFunc, param uint32) (bool, error) {
	v, err := getInfoUint32(call, f, param)
	return v != 0, err
}

// getInfoSizes decodes a []size_t answer, e.g. CL_DEVICE_MAX_WORK_ITEM_SIZES.
func getInfoSizes(call string, f infoFunc, param uint32) ([]uintptr, error) {
	buf, err := getInfoBytes(call, f, param)
	if err != nil || buf == nil {
		return nil, err
	}
	word := int(unsafe.Sizeof(uintptr(0)))
	if len(buf)%word != 0 {
		return nil, &DataLengthError{Call: call, Expected: len(buf) / word * word, Actual: len(buf)}
	}
	out := make([]uintptr, len(buf)/word)
	for i := range out {
		switch word {
		case 8:
			out[i] = uintptr(binary.NativeEndian.Uint64(buf[i*8:]))
		default:
			out[i] = uintptr(binary.NativeEndian.Uint32(buf[i*4:]))
		}
	}
	return out, nil
}

// trimNull removes trailing NUL bytes that OpenCL string queries include.
func trimNull(s string) string {
	return strings.TrimRight(s, "\x00")
}
