package raw

// OpenCL status codes as returned by every entry point that reports errors.
const (
	Success                               int32 = 0
	ErrDeviceNotFound                     int32 = -1
	ErrDeviceNotAvailable                 int32 = -2
	ErrCompilerNotAvailable               int32 = -3
	ErrMemObjectAllocationFailure         int32 = -4
	ErrOutOfResources                     int32 = -5
	ErrOutOfHostMemory                    int32 = -6
	ErrProfilingInfoNotAvailable          int32 = -7
	ErrMemCopyOverlap                     int32 = -8
	ErrImageFormatMismatch                int32 = -9
	ErrImageFormatNotSupported            int32 = -10
	ErrBuildProgramFailure                int32 = -11
	ErrMapFailure                         int32 = -12
	ErrMisalignedSubBufferOffset          int32 = -13
	ErrExecStatusErrorForEventsInWaitList int32 = -14
	ErrCompileProgramFailure              int32 = -15
	ErrLinkerNotAvailable                 int32 = -16
	ErrLinkProgramFailure                 int32 = -17
	ErrDevicePartitionFailed              int32 = -18
	ErrKernelArgInfoNotAvailable          int32 = -19
	ErrInvalidValue                       int32 = -30
	ErrInvalidDeviceType                  int32 = -31
	ErrInvalidPlatform                    int32 = -32
	ErrInvalidDevice                      int32 = -33
	ErrInvalidContext                     int32 = -34
	ErrInvalidQueueProperties             int32 = -35
	ErrInvalidCommandQueue                int32 = -36
	ErrInvalidHostPtr                     int32 = -37
	ErrInvalidMemObject                   int32 = -38
	ErrInvalidImageFormatDescriptor       int32 = -39
	ErrInvalidImageSize                   int32 = -40
	ErrInvalidSampler                     int32 = -41
	ErrInvalidBinary                      int32 = -42
	ErrInvalidBuildOptions                int32 = -43
	ErrInvalidProgram                     int32 = -44
	ErrInvalidProgramExecutable           int32 = -45
	ErrInvalidKernelName                  int32 = -46
	ErrInvalidKernelDefinition            int32 = -47
	ErrInvalidKernel                      int32 = -48
	ErrInvalidArgIndex                    int32 = -49
	ErrInvalidArgValue                    int32 = -50
	ErrInvalidArgSize                     int32 = -51
	ErrInvalidKernelArgs                  int32 = -52
	ErrInvalidWorkDimension               int32 = -53
	ErrInvalidWorkGroupSize               int32 = -54
	ErrInvalidWorkItemSize                int32 = -55
	ErrInvalidGlobalOffset                int32 = -56
	ErrInvalidEventWaitList               int32 = -57
	ErrInvalidEvent                       int32 = -58
	ErrInvalidOperation                   int32 = -59
	ErrInvalidGLObject                    int32 = -60
	ErrInvalidBufferSize                  int32 = -61
	ErrInvalidMipLevel                    int32 = -62
	ErrInvalidGlobalWorkSize              int32 = -63
	ErrInvalidProperty                    int32 = -64
	ErrInvalidImageDescriptor             int32 = -65
	ErrInvalidCompilerOptions             int32 = -66
	ErrInvalidLinkerOptions               int32 = -67
	ErrInvalidDevicePartitionCount        int32 = -68
	ErrInvalidPipeSize                    int32 = -69
	ErrInvalidDeviceQueue                 int32 = -70
	ErrInvalidSpecID                      int32 = -71
	ErrMaxSizeRestrictionExceeded         int32 = -72
)

// ErrorName returns the symbolic OpenCL name for a status code, or an
// empty string for codes outside the standard range (e.g. vendor
// extensions).
func ErrorName(code int32) string {
	switch code {
	case Success:
		return "CL_SUCCESS"
	case ErrDeviceNotFound:
		return "CL_DEVICE_NOT_FOUND"
	case ErrDeviceNotAvailable:
		return "CL_DEVICE_NOT_AVAILABLE"
	case ErrCompilerNotAvailable:
		return "CL_COMPILER_NOT_AVAILABLE"
	case ErrMemObjectAllocationFailure:
		return "CL_MEM_OBJECT_ALLOCATION_FAILURE"
	case ErrOutOfResources:
		return "CL_OUT_OF_RESOURCES"
	case ErrOutOfHostMemory:
		return "CL_OUT_OF_HOST_MEMORY"
	case ErrProfilingInfoNotAvailable:
		return "CL_PROFILING_INFO_NOT_AVAILABLE"
	case ErrMemCopyOverlap:
		return "CL_MEM_COPY_OVERLAP"
	case ErrImageFormatMismatch:
		return "CL_IMAGE_FORMAT_MISMATCH"
	case ErrImageFormatNotSupported:
		return "CL_IMAGE_FORMAT_NOT_SUPPORTED"
	case ErrBuildProgramFailure:
		return "CL_BUILD_PROGRAM_FAILURE"
	case ErrMapFailure:
		return "CL_MAP_FAILURE"
	case ErrMisalignedSubBufferOffset:
		return "CL_MISALIGNED_SUB_BUFFER_OFFSET"
	case ErrExecStatusErrorForEventsInWaitList:
		return "CL_EXEC_STATUS_ERROR_FOR_EVENTS_IN_WAIT_LIST"
	case ErrCompileProgramFailure:
		return "CL_COMPILE_PROGRAM_FAILURE"
	case ErrLinkerNotAvailable:
		return "CL_LINKER_NOT_AVAILABLE"
	case ErrLinkProgramFailure:
		return "CL_LINK_PROGRAM_FAILURE"
	case ErrDevicePartitionFailed:
		return "CL_DEVICE_PARTITION_FAILED"
	case ErrKernelArgInfoNotAvailable:
		return "CL_KERNEL_ARG_INFO_NOT_AVAILABLE"
	case ErrInvalidValue:
		return "CL_INVALID_VALUE"
	case ErrInvalidDeviceType:
		return "CL_INVALID_DEVICE_TYPE"
	case ErrInvalidPlatform:
		return "CL_INVALID_PLATFORM"
	case ErrInvalidDevice:
		return "CL_INVALID_DEVICE"
	case ErrInvalidContext:
		return "CL_INVALID_CONTEXT"
	case ErrInvalidQueueProperties:
		return "CL_INVALID_QUEUE_PROPERTIES"
	case ErrInvalidCommandQueue:
		return "CL_INVALID_COMMAND_QUEUE"
	case ErrInvalidHostPtr:
		return "CL_INVALID_HOST_PTR"
	case ErrInvalidMemObject:
		return "CL_INVALID_MEM_OBJECT"
	case ErrInvalidImageFormatDescriptor:
		return "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR"
	case ErrInvalidImageSize:
		return "CL_INVALID_IMAGE_SIZE"
	case ErrInvalidSampler:
		return "CL_INVALID_SAMPLER"
	case ErrInvalidBinary:
		return "CL_INVALID_BINARY"
	case ErrInvalidBuildOptions:
		return "CL_INVALID_BUILD_OPTIONS"
	case ErrInvalidProgram:
		return "CL_INVALID_PROGRAM"
	case ErrInvalidProgramExecutable:
		return "CL_INVALID_PROGRAM_EXECUTABLE"
	case ErrInvalidKernelName:
		return "CL_INVALID_KERNEL_NAME"
	case ErrInvalidKernelDefinition:
		return "CL_INVALID_KERNEL_DEFINITION"
	case ErrInvalidKernel:
		return "CL_INVALID_KERNEL"
	case ErrInvalidArgIndex:
		return "CL_INVALID_ARG_INDEX"
	case ErrInvalidArgValue:
		return "CL_INVALID_ARG_VALUE"
	case ErrInvalidArgSize:
		return "CL_INVALID_ARG_SIZE"
	case ErrInvalidKernelArgs:
		return "CL_INVALID_KERNEL_ARGS"
	case ErrInvalidWorkDimension:
		return "CL_INVALID_WORK_DIMENSION"
	case ErrInvalidWorkGroupSize:
		return "CL_INVALID_WORK_GROUP_SIZE"
	case ErrInvalidWorkItemSize:
		return "CL_INVALID_WORK_ITEM_SIZE"
	case ErrInvalidGlobalOffset:
		return "CL_INVALID_GLOBAL_OFFSET"
	case ErrInvalidEventWaitList:
		return "CL_INVALID_EVENT_WAIT_LIST"
	case ErrInvalidEvent:
		return "CL_INVALID_EVENT"
	case ErrInvalidOperation:
		return "CL_INVALID_OPERATION"
	case ErrInvalidGLObject:
		return "CL_INVALID_GL_OBJECT"
	case ErrInvalidBufferSize:
		return "CL_INVALID_BUFFER_SIZE"
	case ErrInvalidMipLevel:
		return "CL_INVALID_MIP_LEVEL"
	case ErrInvalidGlobalWorkSize:
		return "CL_INVALID_GLOBAL_WORK_SIZE"
	case ErrInvalidProperty:
		return "CL_INVALID_PROPERTY"
	case ErrInvalidImageDescriptor:
		return "CL_INVALID_IMAGE_DESCRIPTOR"
	case ErrInvalidCompilerOptions:
		return "CL_INVALID_COMPILER_OPTIONS"
	case ErrInvalidLinkerOptions:
		return "CL_INVALID_LINKER_OPTIONS"
	case ErrInvalidDevicePartitionCount:
		return "CL_INVALID_DEVICE_PARTITION_COUNT"
	case ErrInvalidPipeSize:
		return "CL_INVALID_PIPE_SIZE"
	case ErrInvalidDeviceQueue:
		return "CL_INVALID_DEVICE_QUEUE"
	case ErrInvalidSpecID:
		return "CL_INVALID_SPEC_ID"
	case ErrMaxSizeRestrictionExceeded:
		return "CL_MAX_SIZE_RESTRICTION_EXCEEDED"
	default:
		return ""
	}
}
