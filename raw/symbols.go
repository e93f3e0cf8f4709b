package raw

// symbol pairs an entry point name with the tier that introduced it and the
// Lib slot it binds to. fn is always a pointer to a func field of Lib.
type symbol struct {
	name  string
	since Version
	fn    any
}

// symbols lists every entry point the loader knows about, grouped by the
// tier that introduced it. Order within a tier does not matter; tier order
// does, because the supported version is the highest tier whose symbols are
// all present.
func (l *Lib) symbols() []symbol {
	return []symbol{
		// OpenCL 1.0
		{"clGetPlatformIDs", CL10, &l.GetPlatformIDs},
		{"clGetPlatformInfo", CL10, &l.GetPlatformInfo},
		{"clGetDeviceIDs", CL10, &l.GetDeviceIDs},
		{"clGetDeviceInfo", CL10, &l.GetDeviceInfo},
		{"clCreateContext", CL10, &l.CreateContext},
		{"clRetainContext", CL10, &l.RetainContext},
		{"clReleaseContext", CL10, &l.ReleaseContext},
		{"clGetContextInfo", CL10, &l.GetContextInfo},
		{"clCreateCommandQueue", CL10, &l.CreateCommandQueue},
		{"clRetainCommandQueue", CL10, &l.RetainCommandQueue},
		{"clReleaseCommandQueue", CL10, &l.ReleaseCommandQueue},
		{"clGetCommandQueueInfo", CL10, &l.GetCommandQueueInfo},
		{"clCreateBuffer", CL10, &l.CreateBuffer},
		{"clRetainMemObject", CL10, &l.RetainMemObject},
		{"clReleaseMemObject", CL10, &l.ReleaseMemObject},
		{"clGetMemObjectInfo", CL10, &l.GetMemObjectInfo},
		{"clEnqueueReadBuffer", CL10, &l.EnqueueReadBuffer},
		{"clEnqueueWriteBuffer", CL10, &l.EnqueueWriteBuffer},
		{"clEnqueueCopyBuffer", CL10, &l.EnqueueCopyBuffer},
		{"clCreateProgramWithSource", CL10, &l.CreateProgramWithSource},
		{"clRetainProgram", CL10, &l.RetainProgram},
		{"clReleaseProgram", CL10, &l.ReleaseProgram},
		{"clBuildProgram", CL10, &l.BuildProgram},
		{"clGetProgramInfo", CL10, &l.GetProgramInfo},
		{"clGetProgramBuildInfo", CL10, &l.GetProgramBuildInfo},
		{"clCreateKernel", CL10, &l.CreateKernel},
		{"clRetainKernel", CL10, &l.RetainKernel},
		{"clReleaseKernel", CL10, &l.ReleaseKernel},
		{"clSetKernelArg", CL10, &l.SetKernelArg},
		{"clGetKernelInfo", CL10, &l.GetKernelInfo},
		{"clGetKernelWorkGroupInfo", CL10, &l.GetKernelWorkGroupInfo},
		{"clEnqueueNDRangeKernel", CL10, &l.EnqueueNDRangeKernel},
		{"clWaitForEvents", CL10, &l.WaitForEvents},
		{"clRetainEvent", CL10, &l.RetainEvent},
		{"clReleaseEvent", CL10, &l.ReleaseEvent},
		{"clFinish", CL10, &l.Finish},
		{"clFlush", CL10, &l.Flush},

		// OpenCL 1.1
		{"clCreateSubBuffer", CL11, &l.CreateSubBuffer},
		{"clCreateUserEvent", CL11, &l.CreateUserEvent},
		{"clSetUserEventStatus", CL11, &l.SetUserEventStatus},
		{"clSetEventCallback", CL11, &l.SetEventCallback},
		{"clEnqueueReadBufferRect", CL11, &l.EnqueueReadBufferRect},
		{"clEnqueueWriteBufferRect", CL11, &l.EnqueueWriteBufferRect},

		// OpenCL 1.2
		{"clGetKernelArgInfo", CL12, &l.GetKernelArgInfo},
		{"clEnqueueFillBuffer", CL12, &l.EnqueueFillBuffer},
		{"clCreateSubDevices", CL12, &l.CreateSubDevices},
		{"clRetainDevice", CL12, &l.RetainDevice},
		{"clReleaseDevice", CL12, &l.ReleaseDevice},
		{"clUnloadPlatformCompiler", CL12, &l.UnloadPlatformCompiler},
		{"clCompileProgram", CL12, &l.CompileProgram},
		{"clLinkProgram", CL12, &l.LinkProgram},
		{"clEnqueueMarkerWithWaitList", CL12, &l.EnqueueMarkerWithWaitList},
		{"clEnqueueBarrierWithWaitList", CL12, &l.EnqueueBarrierWithWaitList},

		// OpenCL 2.0
		{"clCreateCommandQueueWithProperties", CL20, &l.CreateCommandQueueWithProperties},
		{"clSVMAlloc", CL20, &l.SVMAlloc},
		{"clSVMFree", CL20, &l.SVMFree},
		{"clSetKernelArgSVMPointer", CL20, &l.SetKernelArgSVMPointer},
		{"clCreatePipe", CL20, &l.CreatePipe},
		{"clGetPipeInfo", CL20, &l.GetPipeInfo},

		// OpenCL 2.1
		{"clCreateProgramWithIL", CL21, &l.CreateProgramWithIL},
		{"clCloneKernel", CL21, &l.CloneKernel},
		{"clGetHostTimer", CL21, &l.GetHostTimer},
		{"clGetDeviceAndHostTimer", CL21, &l.GetDeviceAndHostTimer},
		{"clGetKernelSubGroupInfo", CL21, &l.GetKernelSubGroupInfo},
		{"clSetDefaultDeviceCommandQueue", CL21, &l.SetDefaultDeviceCommandQueue},

		// OpenCL 2.2
		{"clSetProgramReleaseCallback", CL22, &l.SetProgramReleaseCallback},
		{"clSetProgramSpecializationConstant", CL22, &l.SetProgramSpecializationConstant},
	}
}
