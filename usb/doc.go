// Package usb defines the device-stack capability surface consumed by the
// HID class driver.
//
// The generic USB device stack (enumeration, endpoint scheduling, control
// transfer framing) is not part of this library. Instead, the stack grants
// the driver a small set of capabilities:
//
//   - [Allocator] issues the driver's interface number and its
//     interrupt-IN endpoint at construction time.
//   - [DescriptorWriter] is handed to the driver during enumeration so it
//     can append its fragment of the configuration descriptor.
//   - [ControlIn] wraps an inbound control transfer addressed to the
//     device; a class driver may accept it with a static reply at most
//     once.
//
// A class driver exposes the [ClassDriver] capability set back to the
// stack. The [github.com/agalakhov/usbd-hid-device/usb/usbtest] package
// provides an in-memory implementation of the stack side for tests and
// examples.
//
// # Zero-Allocation Design
//
// Descriptor records follow the MarshalTo(buf)/Parse(data, out) pattern
// with caller-provided buffers, so the hot paths perform no heap
// allocation.
package usb
