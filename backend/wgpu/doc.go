// Package wgpu implements the Pure Go GPU rendering backend on top of
// gogpu/wgpu.
//
// The backend owns the full WebGPU lifecycle: instance, adapter,
// device and queue, torn down in reverse order on Cleanup. The sprite
// shader is WGSL compiled to SPIR-V through gogpu/naga at
// initialization. Draw encodes the render list into a vertex stream on
// the CPU; render-pass submission follows the staged wgpu integration
// and completes as the wgpu surface API lands, so visual output
// currently comes from the software backend while this backend
// exercises the device path.
//
// A host application that already owns a GPU device can share it via
// NewWithDevice and a gpucontext.DeviceProvider instead of letting the
// backend create its own.
//
// Import for side effects to register the backend:
//
//	import _ "github.com/gogpu/blit/backend/wgpu"
package wgpu
