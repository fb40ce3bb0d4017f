package host

import (
	"encoding/binary"
	"testing"

	"github.com/laze-ml/laze/internal/backend"
	"github.com/laze-ml/laze/internal/shape"
)

var cpu0 = backend.Device{Kind: "cpu", Ordinal: 0}

func TestAlloc(t *testing.T) {
	buf := Alloc(cpu0, shape.New(shape.Float32, 3, 4))

	if !buf.Shape().Equal(shape.New(shape.Float32, 3, 4)) {
		t.Errorf("Shape() = %v, want float32[3,4]", buf.Shape())
	}
	if buf.Device() != cpu0 {
		t.Errorf("Device() = %v, want cpu:0", buf.Device())
	}
	if got := len(buf.Bytes()); got != 48 {
		t.Errorf("len(Bytes()) = %d, want 48", got)
	}
}

func TestAllocUniqueIDs(t *testing.T) {
	a := Alloc(cpu0, shape.New(shape.Float32, 2))
	b := Alloc(cpu0, shape.New(shape.Float32, 2))

	if a.ID() == b.ID() {
		t.Error("two allocations share an id")
	}
}

func TestFromSlice(t *testing.T) {
	buf, err := FromSlice(cpu0, []int32{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromSlice returned error: %v", err)
	}
	if !buf.Shape().Equal(shape.New(shape.Int32, 2, 3)) {
		t.Errorf("Shape() = %v, want int32[2,3]", buf.Shape())
	}

	raw := buf.Bytes()
	if got := int32(binary.LittleEndian.Uint32(raw[4:])); got != 2 {
		t.Errorf("element 1 = %d, want 2", got)
	}
}

func TestFromSliceCountMismatch(t *testing.T) {
	if _, err := FromSlice(cpu0, []float32{1, 2, 3}, 2, 2); err == nil {
		t.Error("expected error for 3 values into float32[2,2]")
	}
}

func TestFromSliceBool(t *testing.T) {
	buf, err := FromSlice(cpu0, []bool{true, false, true}, 3)
	if err != nil {
		t.Fatalf("FromSlice returned error: %v", err)
	}

	raw := buf.Bytes()
	want := []byte{1, 0, 1}
	for i := range want {
		if raw[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, raw[i], want[i])
		}
	}
}

func TestFromFloat32sHalf(t *testing.T) {
	buf, err := FromFloat32s(cpu0, shape.New(shape.Float16, 2), []float32{1.0, 2.5})
	if err != nil {
		t.Fatalf("FromFloat32s returned error: %v", err)
	}

	raw := buf.Bytes()
	// IEEE 754 binary16: 1.0 = 0x3C00, 2.5 = 0x4100.
	if got := binary.LittleEndian.Uint16(raw[0:]); got != 0x3C00 {
		t.Errorf("half(1.0) = %#04x, want 0x3c00", got)
	}
	if got := binary.LittleEndian.Uint16(raw[2:]); got != 0x4100 {
		t.Errorf("half(2.5) = %#04x, want 0x4100", got)
	}
}

func TestFromFloat32sCountMismatch(t *testing.T) {
	if _, err := FromFloat32s(cpu0, shape.New(shape.Float32, 4), []float32{1}); err == nil {
		t.Error("expected error for 1 value into float32[4]")
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	buf, err := FromSlice(cpu0, []uint8{7, 8}, 2)
	if err != nil {
		t.Fatalf("FromSlice returned error: %v", err)
	}

	raw := buf.Bytes()
	raw[0] = 99
	if again := buf.Bytes(); again[0] != 7 {
		t.Errorf("Bytes() aliases internal storage: got %d, want 7", again[0])
	}
}
