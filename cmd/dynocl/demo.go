package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/dynocl"
	"github.com/cwbudde/dynocl/raw"
	"github.com/spf13/cobra"
)

var (
	demoSize       int
	demoDeviceType string
)

const sumKernel = `
__kernel void sum(__constant int *a, __constant int *b, __global int *c) {
	size_t i = get_global_id(0);
	c[i] = a[i] + b[i];
}
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a vector-add sanity check on the first device",
	Long: `Compiles a small element-wise addition kernel, runs it over two integer
buffers and verifies the result on the host. Useful for checking that a
driver installation actually works end to end.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoSize, "size", 1024, "Number of elements")
	demoCmd.Flags().StringVar(&demoDeviceType, "type", "gpu", "Device type: all, gpu, cpu, accelerator")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	mask, err := parseDeviceType(demoDeviceType)
	if err != nil {
		return err
	}

	lib, err := raw.Load()
	if err != nil {
		return fmt.Errorf("failed to load OpenCL: %w", err)
	}
	slog.Info("OpenCL loaded", "path", lib.Path(), "version", lib.Version().String())

	platforms, err := dynocl.Platforms(lib)
	if err != nil {
		return fmt.Errorf("failed to enumerate platforms: %w", err)
	}
	if len(platforms) == 0 {
		return errors.New("no OpenCL platforms found")
	}
	devices, err := platforms[0].Devices(mask)
	if err != nil {
		return fmt.Errorf("failed to pick a device: %w", err)
	}
	device := devices[0]
	name, _ := device.Name()
	slog.Info("Using device", "name", name)

	ctx, err := device.CreateContext()
	if err != nil {
		return err
	}
	defer ctx.Release()

	queue, err := ctx.NewQueue(device).Build()
	if err != nil {
		return err
	}
	defer queue.Release()

	program, err := ctx.NewProgram(sumKernel).Options("-cl-kernel-arg-info").Build()
	if err != nil {
		return err
	}
	defer program.Release()

	kernel, err := program.CreateKernel("sum")
	if err != nil {
		return err
	}

	input := make([]int32, demoSize)
	for i := range input {
		input[i] = int32(i + 1)
	}
	a, err := dynocl.NewBufferBuilder[dynocl.HostNoAccess, dynocl.DeviceReadOnly, int32](ctx).CopyFrom(input)
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := dynocl.NewBufferBuilder[dynocl.HostNoAccess, dynocl.DeviceReadOnly, int32](ctx).CopyFrom(input)
	if err != nil {
		return err
	}
	defer b.Release()
	c, err := dynocl.NewBufferBuilder[dynocl.HostReadOnly, dynocl.DeviceWriteOnly, int32](ctx).WithCapacity(demoSize)
	if err != nil {
		return err
	}
	defer c.Release()

	// Argument type checking needs clGetKernelArgInfo; fall back to the
	// unchecked bind on pre-1.2 drivers.
	bound, err := kernel.BindArgs(dynocl.BufferArg(a), dynocl.BufferArg(b), dynocl.BufferArg(c))
	var ve *dynocl.VersionError
	if errors.As(err, &ve) {
		slog.Warn("Driver too old for argument type checks, binding unchecked", "loaded", ve.Loaded.String())
		bound, err = kernel.BindArgsUnchecked(dynocl.BufferArg(a), dynocl.BufferArg(b), dynocl.BufferArg(c))
	}
	if err != nil {
		return err
	}
	defer bound.Release()

	if err := queue.Cmd(bound).Exec(uintptr(demoSize)); err != nil {
		return err
	}

	out := make([]int32, demoSize)
	if err := dynocl.ReadBuffer(queue, c, 0, out); err != nil {
		return err
	}
	for i, v := range out {
		if want := int32(2 * (i + 1)); v != want {
			return fmt.Errorf("result mismatch at %d: got %d, want %d", i, v, want)
		}
	}
	fmt.Printf("OK: %d elements verified on %s\n", demoSize, name)
	return nil
}
