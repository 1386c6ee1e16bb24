// Package hid implements a USB Human Interface Device class driver for a
// device-side USB stack.
//
// The driver covers exactly the class-specific protocol surface: assembly
// of the HID fragment of the configuration descriptor, dispatch of
// interface-scoped control requests, and transmission of input reports on
// a dedicated interrupt-IN endpoint. Bus enumeration, endpoint scheduling,
// and control-transfer framing belong to the external stack, reached
// through the capability interfaces in
// [github.com/agalakhov/usbd-hid-device/usb].
//
// # Report Types
//
// A driver instance is bound to one report type implementing [Report]:
// its descriptor bytes are fixed at construction and its MarshalTo
// conversion produces the wire layout of every report sent. [MouseReport]
// and [KeyboardReport] cover the two most common devices; custom report
// types pair any descriptor with any layout.
//
// # Usage
//
//	drv, err := hid.New[hid.MouseReport](alloc, 10)
//	if err != nil {
//	    // allocator could not grant interface or endpoint
//	}
//
//	// During enumeration the stack collects the configuration fragment
//	// and routes control requests:
//	_ = drv.EmitConfigurationDescriptors(writer)
//	drv.HandleControlIn(xfer)
//
//	// At runtime the application pushes reports:
//	_, err = drv.SendReport(hid.MouseReport{X: 5, Y: -3})
//	if errors.Is(err, pkg.ErrWouldBlock) {
//	    // previous packet still in flight; retry next loop pass
//	}
//
// Sends are fire-and-forget: one attempt, no queuing, no blocking. Retry
// policy belongs to the caller.
//
// # Unsupported Requests
//
// Boot protocol, GET/SET_REPORT, GET/SET_IDLE, GET/SET_PROTOCOL, and
// GET_DESCRIPTOR for types other than the report descriptor are left
// unclaimed, so the stack's default handling (typically a stall) applies.
package hid
