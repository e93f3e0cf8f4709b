package dynocl

import (
	"errors"
	"fmt"

	"github.com/cwbudde/dynocl/raw"
)

// ErrNoDevices is returned by device discovery when a platform exposes no
// device of the requested type.
var ErrNoDevices = errors.New("no OpenCL devices found")

// APIError carries a nonzero status code returned by an OpenCL entry
// point, together with the name of the call that produced it.
type APIError struct {
	Call string
	Code int32
}

func (e *APIError) Error() string {
	name := raw.ErrorName(e.Code)
	if name == "" {
		name = "unknown error"
	}
	return fmt.Sprintf("%s: %s (%d)", e.Call, name, e.Code)
}

// VersionError reports an operation gated behind a higher API tier than the
// loaded library supports.
type VersionError = raw.VersionError

// FlagError reports an invalid flag or option combination detected before
// any native call is made.
type FlagError struct {
	Context string
	Value   uint64
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("%s: invalid flags 0x%x", e.Context, e.Value)
}

// DataLengthError reports an info query whose reported size changed between
// the sizing call and the data call, or fixed-size data of an unexpected
// length.
type DataLengthError struct {
	Call     string
	Expected int
	Actual   int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("%s: data length mismatch: expected %d bytes, got %d", e.Call, e.Expected, e.Actual)
}

// ArityError reports a kernel bound with the wrong number of arguments.
type ArityError struct {
	Kernel string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("kernel %q requires %d arguments, but %d were supplied", e.Kernel, e.Want, e.Got)
}

// ArgTypeError reports a kernel argument whose supplied type does not match
// the type declared in the kernel source.
type ArgTypeError struct {
	Kernel   string
	Index    int
	Declared string
	Supplied string
}

func (e *ArgTypeError) Error() string {
	return fmt.Sprintf("kernel %q argument %d: declared type %q is not compatible with supplied %q",
		e.Kernel, e.Index, e.Declared, e.Supplied)
}

// statusError converts an OpenCL status code into an error, nil on success.
func statusError(call string, status int32) error {
	if status == raw.Success {
		return nil
	}
	return &APIError{Call: call, Code: status}
}
