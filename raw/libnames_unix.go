//go:build freebsd || linux

package raw

func defaultLibraryNames() []string {
	return []string{"libOpenCL.so.1", "libOpenCL.so"}
}
