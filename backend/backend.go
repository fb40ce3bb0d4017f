// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend defines the public contract between the Laze IR and
// backend collaborators.
//
// The IR never allocates, copies, or frees device memory. A backend
// hands it an opaque Data handle; the IR keeps the handle alive inside
// leaf nodes and reads only its shape and device. Handle lifetime
// follows Go garbage collection of the nodes that hold it.
//
// Example:
//
//	dev, err := backend.ParseDevice("cpu:0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dev.Kind, dev.Ordinal) // cpu 0
package backend

import (
	"github.com/laze-ml/laze/internal/backend"
)

// Device identifies a logical device managed by a backend.
type Device = backend.Device

// Data is the opaque handle for a tensor already materialized on a
// device.
type Data = backend.Data

// ParseDevice parses the "kind:ordinal" form produced by Device.String.
func ParseDevice(s string) (Device, error) {
	return backend.ParseDevice(s)
}
