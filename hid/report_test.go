package hid

import (
	"bytes"
	"testing"
)

func TestMouseReport_MarshalTo(t *testing.T) {
	r := MouseReport{
		Buttons: MouseButtonLeft | MouseButtonMiddle,
		X:       -1,
		Y:       127,
		Wheel:   -128,
	}

	var buf [MouseReportSize]byte
	n := r.MarshalTo(buf[:])
	if n != MouseReportSize {
		t.Fatalf("MarshalTo = %d, want %d", n, MouseReportSize)
	}
	want := []byte{0x05, 0xFF, 0x7F, 0x80}
	if !bytes.Equal(buf[:], want) {
		t.Errorf("report = % 02X, want % 02X", buf[:], want)
	}
}

func TestMouseReport_MarshalTo_TooSmall(t *testing.T) {
	r := MouseReport{}
	if n := r.MarshalTo(make([]byte, 3)); n != 0 {
		t.Errorf("MarshalTo = %d, want 0", n)
	}
}

func TestMouseReport_Clear(t *testing.T) {
	r := MouseReport{Buttons: MouseButtonRight, X: 5, Y: 6, Wheel: 7}
	r.Clear()
	if r != (MouseReport{}) {
		t.Errorf("Clear left %+v", r)
	}
}

func TestKeyboardReport_MarshalTo(t *testing.T) {
	r := KeyboardReport{
		Modifiers: ModLeftShift,
		Keys:      [6]uint8{KeyA, KeyB, 0, 0, 0, 0},
	}

	var buf [KeyboardReportSize]byte
	n := r.MarshalTo(buf[:])
	if n != KeyboardReportSize {
		t.Fatalf("MarshalTo = %d, want %d", n, KeyboardReportSize)
	}
	want := []byte{ModLeftShift, 0x00, KeyA, KeyB, 0, 0, 0, 0}
	if !bytes.Equal(buf[:], want) {
		t.Errorf("report = % 02X, want % 02X", buf[:], want)
	}
}

func TestKeyboardReport_SetKey(t *testing.T) {
	var r KeyboardReport

	for i, key := range []uint8{KeyA, KeyB, KeyC, KeyD, KeyE, KeyZ} {
		if !r.SetKey(key) {
			t.Fatalf("SetKey(%d) = false with %d slots filled", key, i)
		}
	}
	if r.SetKey(KeyEnter) {
		t.Error("SetKey succeeded with all slots filled")
	}

	// Setting an already-pressed key is a no-op success.
	if !r.SetKey(KeyC) {
		t.Error("SetKey of pressed key = false")
	}
	if r.Keys != [6]uint8{KeyA, KeyB, KeyC, KeyD, KeyE, KeyZ} {
		t.Errorf("keys = %v after duplicate SetKey", r.Keys)
	}
}

func TestKeyboardReport_ClearKey(t *testing.T) {
	r := KeyboardReport{Keys: [6]uint8{KeyA, KeyB, KeyC, 0, 0, 0}}
	r.ClearKey(KeyB)
	if r.Keys != [6]uint8{KeyA, KeyC, 0, 0, 0, 0} {
		t.Errorf("keys = %v, want [A C 0 0 0 0]", r.Keys)
	}

	// Clearing an absent key changes nothing.
	r.ClearKey(KeyZ)
	if r.Keys != [6]uint8{KeyA, KeyC, 0, 0, 0, 0} {
		t.Errorf("keys = %v after clearing absent key", r.Keys)
	}
}

func TestKeyboardReport_Clear(t *testing.T) {
	r := KeyboardReport{Modifiers: ModRightAlt, Keys: [6]uint8{KeyA}}
	r.Clear()
	if r != (KeyboardReport{}) {
		t.Errorf("Clear left %+v", r)
	}
}

func TestDescriptors_Fixed(t *testing.T) {
	// The descriptor must be the same immutable sequence for every value
	// of the report type.
	a := MouseReport{}.Descriptor()
	b := MouseReport{X: 1}.Descriptor()
	if !bytes.Equal(a, b) {
		t.Error("mouse descriptor differs between report values")
	}

	c := KeyboardReport{}.Descriptor()
	d := KeyboardReport{Modifiers: ModLeftCtrl}.Descriptor()
	if !bytes.Equal(c, d) {
		t.Error("keyboard descriptor differs between report values")
	}
}

func TestDescriptors_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		desc []byte
	}{
		{"mouse", MouseReport{}.Descriptor()},
		{"keyboard", KeyboardReport{}.Descriptor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.desc) == 0 {
				t.Fatal("empty descriptor")
			}
			// Application collection opens and closes.
			if tt.desc[0] != 0x05 || tt.desc[1] != 0x01 {
				t.Errorf("descriptor does not open with Usage Page (Generic Desktop): % 02X", tt.desc[:2])
			}
			if tt.desc[len(tt.desc)-1] != 0xC0 {
				t.Errorf("descriptor does not end with End Collection: 0x%02X", tt.desc[len(tt.desc)-1])
			}
		})
	}
}
