package usb

import (
	"errors"
	"testing"

	"github.com/agalakhov/usbd-hid-device/pkg"
)

func TestInterfaceDescriptor_MarshalTo(t *testing.T) {
	desc := &InterfaceDescriptor{
		InterfaceNumber:   0,
		AlternateSetting:  0,
		NumEndpoints:      1,
		InterfaceClass:    ClassHID,
		InterfaceSubClass: 0x00,
		InterfaceProtocol: 0x00,
	}

	var buf [9]byte
	n := desc.MarshalTo(buf[:])
	if n != 9 {
		t.Fatalf("expected 9 bytes, got %d", n)
	}
	if buf[0] != 9 {
		t.Errorf("bLength = %d, want 9", buf[0])
	}
	if buf[1] != DescriptorTypeInterface {
		t.Errorf("bDescriptorType = 0x%02X, want 0x%02X", buf[1], DescriptorTypeInterface)
	}
	if buf[5] != ClassHID {
		t.Errorf("bInterfaceClass = 0x%02X, want 0x03", buf[5])
	}
}

func TestInterfaceDescriptor_RoundTrip(t *testing.T) {
	original := &InterfaceDescriptor{
		Length:            InterfaceDescriptorSize,
		DescriptorType:    DescriptorTypeInterface,
		InterfaceNumber:   1,
		AlternateSetting:  0,
		NumEndpoints:      1,
		InterfaceClass:    ClassHID,
		InterfaceSubClass: 0x00,
		InterfaceProtocol: 0x00,
		InterfaceIndex:    5,
	}

	var buf [9]byte
	original.MarshalTo(buf[:])

	var parsed InterfaceDescriptor
	if err := ParseInterfaceDescriptor(buf[:], &parsed); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed != *original {
		t.Errorf("round trip mismatch: %+v != %+v", parsed, *original)
	}
}

func TestParseInterfaceDescriptor_TooShort(t *testing.T) {
	var parsed InterfaceDescriptor
	err := ParseInterfaceDescriptor(make([]byte, 4), &parsed)
	if !errors.Is(err, pkg.ErrDescriptorTooShort) {
		t.Errorf("err = %v, want %v", err, pkg.ErrDescriptorTooShort)
	}
}

func TestParseInterfaceDescriptor_WrongType(t *testing.T) {
	data := make([]byte, 9)
	data[0] = 9
	data[1] = DescriptorTypeEndpoint // wrong type
	var parsed InterfaceDescriptor
	err := ParseInterfaceDescriptor(data, &parsed)
	if !errors.Is(err, pkg.ErrDescriptorTypeMismatch) {
		t.Errorf("err = %v, want %v", err, pkg.ErrDescriptorTypeMismatch)
	}
}

func TestEndpointDescriptor_MarshalTo(t *testing.T) {
	desc := &EndpointDescriptor{
		EndpointAddress: 0x81, // EP1 IN
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   64,
		Interval:        10,
	}

	var buf [7]byte
	n := desc.MarshalTo(buf[:])
	if n != 7 {
		t.Fatalf("expected 7 bytes, got %d", n)
	}
	if buf[4] != 64 || buf[5] != 0 {
		t.Errorf("wMaxPacketSize bytes = %02X %02X, want 40 00", buf[4], buf[5])
	}
	if buf[6] != 10 {
		t.Errorf("bInterval = %d, want 10", buf[6])
	}
}

func TestEndpointDescriptor_RoundTrip(t *testing.T) {
	original := &EndpointDescriptor{
		Length:          EndpointDescriptorSize,
		DescriptorType:  DescriptorTypeEndpoint,
		EndpointAddress: 0x82,
		Attributes:      EndpointTypeInterrupt,
		MaxPacketSize:   64,
		Interval:        1,
	}

	var buf [7]byte
	original.MarshalTo(buf[:])

	var parsed EndpointDescriptor
	if err := ParseEndpointDescriptor(buf[:], &parsed); err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed != *original {
		t.Errorf("round trip mismatch: %+v != %+v", parsed, *original)
	}
}

func TestParseEndpointDescriptor_WrongType(t *testing.T) {
	data := make([]byte, 7)
	data[0] = 7
	data[1] = DescriptorTypeInterface // wrong type
	var parsed EndpointDescriptor
	err := ParseEndpointDescriptor(data, &parsed)
	if !errors.Is(err, pkg.ErrDescriptorTypeMismatch) {
		t.Errorf("err = %v, want %v", err, pkg.ErrDescriptorTypeMismatch)
	}
}

func TestEndpointHelpers(t *testing.T) {
	if got := EndpointNumber(0x81); got != 1 {
		t.Errorf("EndpointNumber(0x81) = %d, want 1", got)
	}
	if !IsInAddress(0x81) {
		t.Error("IsInAddress(0x81) = false, want true")
	}
	if IsInAddress(0x01) {
		t.Error("IsInAddress(0x01) = true, want false")
	}
}
