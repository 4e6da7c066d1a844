// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	pag "github.com/mengzhisuoliu/libpag"
)

// API names the GPU backend a Device is opened on. A device and a hardware
// buffer are compatible when they name the same API.
type API string

const (
	// APINoop is the headless backend. It accepts every call and draws
	// nothing; it is always registered.
	APINoop API = "noop"

	// APIVulkan is registered by importing github.com/mengzhisuoliu/libpag/gpu.
	APIVulkan API = "vulkan"
)

// Backend creates HAL instances. The backends in github.com/gogpu/wgpu/hal
// satisfy it.
type Backend interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// BackendFactory returns the backend for an API, or an error if the API
// cannot run on this system.
type BackendFactory func() (Backend, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[API]BackendFactory)

	// apiPriority orders APIs for DefaultAPI (first registered wins).
	apiPriority = []API{APIVulkan, APINoop}
)

func init() {
	Register(APINoop, func() (Backend, error) {
		return &noop.API{}, nil
	})
}

// Register registers a backend factory for api.
// This is typically called from init() functions in backend packages.
// Registering an API again replaces the previous factory.
func Register(api API, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[api] = factory
}

// Unregister removes the backend for api.
// This is useful for testing.
func Unregister(api API) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, api)
}

// IsRegistered reports whether a backend is registered for api.
func IsRegistered(api API) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[api]
	return ok
}

// Available returns the registered APIs in name order.
func Available() []API {
	registryMu.RLock()
	defer registryMu.RUnlock()

	apis := make([]API, 0, len(backends))
	for api := range backends {
		apis = append(apis, api)
	}
	sort.Slice(apis, func(i, j int) bool { return apis[i] < apis[j] })
	return apis
}

// DefaultAPI returns the preferred registered API: Vulkan when registered,
// the headless backend otherwise.
func DefaultAPI() API {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, api := range apiPriority {
		if _, ok := backends[api]; ok {
			return api
		}
	}
	return APINoop
}

// OpenDevice opens a new device on api, preferring a discrete or integrated
// GPU adapter. The returned device holds one reference owned by the caller;
// the GPU device and its instance are destroyed when the last reference is
// released.
func OpenDevice(api API) (*Device, error) {
	registryMu.RLock()
	factory, ok := backends[api]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAPINotAvailable, api)
	}

	backend, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAPINotAvailable, api, err)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, api)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	d := newDevice(api, openDev.Device, openDev.Queue)
	d.adapter = selected.Info.Name
	d.destroy = func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	pag.Logger().Info("drawable: device opened", "api", api, "adapter", d.adapter)
	return d, nil
}
