// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawable

import "github.com/gogpu/gputypes"

// Option configures a GPUDrawable during creation.
//
// Example:
//
//	group := drawable.NewDeviceGroup(drawable.APINoop)
//	d, err := drawable.FromView(view, drawable.WithDeviceGroup(group))
type Option func(*options)

type options struct {
	api           API
	group         *DeviceGroup
	windowFactory WindowFactory
	format        gputypes.TextureFormat
}

func defaultOptions() options {
	return options{
		windowFactory: NewWindow,
		format:        gputypes.TextureFormatUndefined, // device surface format
	}
}

// resolve fills in the device group once all options are applied.
func (o *options) resolve() {
	if o.group != nil {
		return
	}
	if o.api == "" {
		o.api = DefaultAPI()
	}
	o.group = SharedDeviceGroup(o.api)
}

// WithAPI opens the device on api, through the process-wide group for that
// API. It is ignored when WithDeviceGroup is also given.
func WithAPI(api API) Option {
	return func(o *options) {
		o.api = api
	}
}

// WithDeviceGroup shares the device of group. Drawables created with the
// same group render with the same device.
func WithDeviceGroup(group *DeviceGroup) Option {
	return func(o *options) {
		o.group = group
	}
}

// WithWindowFactory replaces the platform window factory. This is how a
// host plugs in its native window system.
func WithWindowFactory(factory WindowFactory) Option {
	return func(o *options) {
		if factory != nil {
			o.windowFactory = factory
		}
	}
}

// WithFormat forces the pixel format of view surfaces instead of the
// device's preferred surface format.
func WithFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = format
	}
}
