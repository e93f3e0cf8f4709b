package dynocl

import (
	"errors"
	"testing"

	"github.com/cwbudde/dynocl/raw"
)

func TestPlatformDiscovery(t *testing.T) {
	lib := newFakeLib(raw.CL12, newFakeDevice())
	platforms, err := Platforms(lib)
	if err != nil {
		t.Fatalf("Platforms failed: %v", err)
	}
	if len(platforms) != 1 {
		t.Fatalf("got %d platforms, want 1", len(platforms))
	}

	name, err := platforms[0].Name()
	if err != nil {
		t.Fatalf("Name failed: %v", err)
	}
	if name != "FakeCL" {
		t.Errorf("platform name = %q, want %q", name, "FakeCL")
	}
	vendor, err := platforms[0].Vendor()
	if err != nil || vendor != "dynocl test rig" {
		t.Errorf("platform vendor = %q (%v)", vendor, err)
	}
}

func TestDeviceDiscovery(t *testing.T) {
	lib := newFakeLib(raw.CL12, newFakeDevice())
	platforms, err := Platforms(lib)
	if err != nil {
		t.Fatalf("Platforms failed: %v", err)
	}

	devices, err := platforms[0].Devices(DeviceGPU)
	if err != nil {
		t.Fatalf("Devices failed: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("got %d devices, want 1", len(devices))
	}

	name, err := devices[0].Name()
	if err != nil || name != "fake-gpu" {
		t.Errorf("device name = %q (%v)", name, err)
	}
	dt, err := devices[0].Type()
	if err != nil || dt != DeviceGPU {
		t.Errorf("device type = %v (%v), want gpu", dt, err)
	}
	sizes, err := devices[0].MaxWorkItemSizes()
	if err != nil {
		t.Fatalf("MaxWorkItemSizes failed: %v", err)
	}
	if len(sizes) != 3 || sizes[0] != 256 {
		t.Errorf("work item sizes = %v", sizes)
	}

	platform, err := devices[0].Platform()
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	if platform.Raw() != fakePlatformID {
		t.Errorf("device platform = %#x, want %#x", platform.Raw(), fakePlatformID)
	}
}

func TestDevicesNoneFound(t *testing.T) {
	lib := newFakeLib(raw.CL12, newFakeDevice())
	platforms, err := Platforms(lib)
	if err != nil {
		t.Fatalf("Platforms failed: %v", err)
	}
	_, err = platforms[0].Devices(DeviceCPU)
	if !errors.Is(err, ErrNoDevices) {
		t.Errorf("error = %v, want ErrNoDevices", err)
	}
}

func TestPlatformVersionGates(t *testing.T) {
	lib := newFakeLib(raw.CL12, newFakeDevice())
	platforms, _ := Platforms(lib)

	_, err := platforms[0].HostTimerResolution()
	var ve *VersionError
	if !errors.As(err, &ve) {
		t.Fatalf("HostTimerResolution on a 1.2 lib: error = %T, want *VersionError", err)
	}
	if ve.Required != raw.CL21 {
		t.Errorf("required tier = %v, want %v", ve.Required, raw.CL21)
	}
}

func TestDeviceTypeString(t *testing.T) {
	tests := []struct {
		t    DeviceType
		want string
	}{
		{DeviceGPU, "gpu"},
		{DeviceCPU | DeviceGPU, "cpu|gpu"},
		{DeviceAll, "all"},
		{0, "none"},
	}
	for _, tc := range tests {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("DeviceType(%#x).String() = %q, want %q", uint64(tc.t), got, tc.want)
		}
	}
}
