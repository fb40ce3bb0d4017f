// Package ops provides node variants that carry payloads beyond the
// identity fields: device-resident data leaves and constant scalars.
// Constructors run through a trace context, so variants participate in
// reuse exactly like generic nodes.
package ops

import (
	"github.com/pkg/errors"

	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/trace"
)

// DeviceData is the leaf for tensors already materialized on a device.
// The wrapped handle never joins node identity: two handles with equal
// shapes construct structurally identical nodes, and when such a node is
// reused the newer handle is dropped in favor of the cached node. The
// cache never frees handles; unreferenced ones are garbage collected.
type DeviceData struct {
	ir.Base
	data backend.Data
}

// NewDeviceData constructs a device data leaf over the handle, reusing a
// structurally identical node at the cursor when reuse is enabled.
func NewDeviceData(tc *trace.Context, data backend.Data) ir.Node {
	if data == nil {
		panic(errors.Errorf("ops: nil data handle"))
	}
	info := tc.Validate(ir.KindDeviceData, 0, 1)
	if n, ok := tc.TryReuse(ir.KindDeviceData, data.Shape(), nil, info.Seed); ok {
		return n
	}
	n := &DeviceData{
		Base: ir.MakeBase(ir.KindDeviceData, data.Shape(), nil, 1, info.Seed),
		data: data,
	}
	tc.Register(n)
	return n
}

// Data returns the external handle.
func (d *DeviceData) Data() backend.Data {
	return d.data
}

// String appends the handle's device to the base description.
func (d *DeviceData) String() string {
	return d.Base.String() + ", device=" + d.data.Device().String()
}

// CastDeviceData returns the node as a DeviceData leaf when both its
// kind and its concrete type match.
func CastDeviceData(n ir.Node) (*DeviceData, bool) {
	return ir.NodeCast[*DeviceData](n, ir.KindDeviceData)
}
