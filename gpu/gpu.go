//go:build !nogpu

// Package gpu registers the Vulkan backend for drawables.
//
// Import this package to open devices on real hardware:
//
//	import _ "github.com/mengzhisuoliu/libpag/gpu"
//
// After the import drawable.DefaultAPI returns drawable.APIVulkan. If no
// Vulkan driver is installed, OpenDevice on that API fails with
// drawable.ErrAPINotAvailable and callers can fall back to drawable.APINoop.
package gpu

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // registers hal.BackendVulkan

	pag "github.com/mengzhisuoliu/libpag"
	"github.com/mengzhisuoliu/libpag/drawable"
)

var errNoVulkan = errors.New("vulkan backend not available")

func init() {
	drawable.Register(drawable.APIVulkan, vulkanBackend)
}

func vulkanBackend() (drawable.Backend, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		pag.Logger().Warn("gpu: vulkan backend not available")
		return nil, errNoVulkan
	}
	return backend, nil
}
