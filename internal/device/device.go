// Package device probes for GPU compute support. The benchmark has no GPU
// estimator to run (no Go t-SNE package targets the GPU today), but the
// comparison report states up front whether an adapter is present.
package device

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Available reports whether a WebGPU adapter can be acquired.
func Available() (available bool) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// AdapterName returns a human-readable description of the default adapter.
func AdapterName() (name string, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			name = ""
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instErr := wgpu.CreateInstance(nil)
	if instErr != nil {
		return "", fmt.Errorf("webgpu: failed to create instance: %w", instErr)
	}
	defer instance.Release()

	adapter, adapterErr := instance.RequestAdapter(nil)
	if adapterErr != nil {
		return "", fmt.Errorf("webgpu: no adapters available: %w", adapterErr)
	}
	defer adapter.Release()

	info, infoErr := adapter.GetInfo()
	if infoErr != nil {
		return "", fmt.Errorf("webgpu: failed to get adapter info: %w", infoErr)
	}
	return fmt.Sprintf("%s (%s)", info.Device, info.Vendor), nil
}
