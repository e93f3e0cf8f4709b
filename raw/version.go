package raw

// Version identifies an OpenCL API tier. The loader derives the tier of a
// library from the entry points it actually exports, not from any version
// string the driver reports.
type Version int

const (
	VersionUnknown Version = iota
	CL10
	CL11
	CL12
	CL20
	CL21
	CL22
)

// tiers in ascending order, used when deriving the supported version.
var tiers = []Version{CL10, CL11, CL12, CL20, CL21, CL22}

func (v Version) String() string {
	switch v {
	case CL10:
		return "OpenCL 1.0"
	case CL11:
		return "OpenCL 1.1"
	case CL12:
		return "OpenCL 1.2"
	case CL20:
		return "OpenCL 2.0"
	case CL21:
		return "OpenCL 2.1"
	case CL22:
		return "OpenCL 2.2"
	default:
		return "unknown"
	}
}

// AtLeast reports whether v covers the given minimum tier.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}
