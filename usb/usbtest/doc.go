// Package usbtest provides an in-memory implementation of the device-stack
// capabilities for testing class drivers without hardware.
//
// [Bus] implements [usb.Allocator] and simulates the configured state of a
// device; its endpoints hold a single outbound packet that the "host"
// drains with [Endpoint.Poll]. [ConfigWriter] implements
// [usb.DescriptorWriter] over a caller-provided buffer, so tests can make
// byte-level assertions on emitted configuration fragments.
//
//	bus := usbtest.NewBus()
//	drv, _ := hid.New[hid.MouseReport](bus, 10)
//
//	var buf [64]byte
//	w := usbtest.NewConfigWriter(buf[:])
//	_ = drv.EmitConfigurationDescriptors(w)
//	// w.Bytes() now holds interface + HID + endpoint records.
package usbtest
