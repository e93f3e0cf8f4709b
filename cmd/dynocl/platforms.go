package main

import (
	"fmt"

	"github.com/cwbudde/dynocl"
	"github.com/cwbudde/dynocl/raw"
	"github.com/spf13/cobra"
)

var deviceFilter string

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List OpenCL platforms and their devices",
	Long: `Loads the OpenCL library, prints the API tier derived from its entry
points, and lists every platform with its devices.`,
	RunE: runPlatforms,
}

func init() {
	platformsCmd.Flags().StringVar(&deviceFilter, "type", "all", "Device type filter: all, gpu, cpu, accelerator")
	rootCmd.AddCommand(platformsCmd)
}

func parseDeviceType(s string) (dynocl.DeviceType, error) {
	switch s {
	case "all":
		return dynocl.DeviceAll, nil
	case "gpu":
		return dynocl.DeviceGPU, nil
	case "cpu":
		return dynocl.DeviceCPU, nil
	case "accelerator":
		return dynocl.DeviceAccelerator, nil
	default:
		return 0, fmt.Errorf("unknown device type %q", s)
	}
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	mask, err := parseDeviceType(deviceFilter)
	if err != nil {
		return err
	}

	lib, err := raw.Load()
	if err != nil {
		return fmt.Errorf("failed to load OpenCL: %w", err)
	}
	fmt.Printf("Library: %s (%s)\n", lib.Path(), lib.Version())

	platforms, err := dynocl.Platforms(lib)
	if err != nil {
		return fmt.Errorf("failed to enumerate platforms: %w", err)
	}
	if len(platforms) == 0 {
		fmt.Println("No platforms found")
		return nil
	}

	for i, p := range platforms {
		name, _ := p.Name()
		vendor, _ := p.Vendor()
		pv, _ := p.Version()
		fmt.Printf("Platform %d: %s\n", i, name)
		fmt.Printf("  Vendor:  %s\n", vendor)
		fmt.Printf("  Version: %s\n", pv)

		devices, err := p.Devices(mask)
		if err == dynocl.ErrNoDevices {
			fmt.Println("  No matching devices")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to enumerate devices: %w", err)
		}
		for j, d := range devices {
			dn, _ := d.Name()
			dt, _ := d.Type()
			units, _ := d.MaxComputeUnits()
			mem, _ := d.GlobalMemSize()
			fmt.Printf("  Device %d: %s (%s, %d CUs, %d MiB)\n", j, dn, dt, units, mem/(1<<20))
		}
	}
	return nil
}
