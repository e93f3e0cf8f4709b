//go:build darwin

package raw

func defaultLibraryNames() []string {
	return []string{"/System/Library/Frameworks/OpenCL.framework/OpenCL"}
}
