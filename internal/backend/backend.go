// Package backend defines the contract between the Laze IR and backend
// collaborators: device identity plus the opaque handle for tensors that
// are already materialized on a device.
//
// Allocation, transfer, and release of device memory belong entirely to
// the collaborator. The IR stores handles, reads their shape and device
// for display and validation, and nothing else: a handle never
// participates in node identity.
package backend

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/laze-ml/laze/internal/shape"
)

// Device identifies a logical device managed by a backend.
type Device struct {
	Kind    string // backend kind, e.g. "cpu", "webgpu"
	Ordinal int    // index among devices of the same kind
}

// String renders the device as "kind:ordinal", e.g. "cpu:0".
func (d Device) String() string {
	return d.Kind + ":" + strconv.Itoa(d.Ordinal)
}

// ParseDevice parses the "kind:ordinal" form produced by String.
func ParseDevice(s string) (Device, error) {
	kind, ord, ok := strings.Cut(s, ":")
	if !ok || kind == "" {
		return Device{}, errors.Errorf("malformed device %q (want \"kind:ordinal\")", s)
	}
	n, err := strconv.Atoi(ord)
	if err != nil || n < 0 {
		return Device{}, errors.Errorf("malformed device ordinal in %q", s)
	}
	return Device{Kind: kind, Ordinal: n}, nil
}

// Data is the external handle for a tensor materialized on a device.
type Data interface {
	// Shape returns the shape of the materialized tensor.
	Shape() shape.Shape

	// Device returns the device the data lives on.
	Device() Device
}
