package usbtest

import (
	"github.com/agalakhov/usbd-hid-device/pkg"
	"github.com/agalakhov/usbd-hid-device/usb"
)

// ConfigWriter assembles a configuration descriptor fragment into a
// caller-provided buffer, implementing [usb.DescriptorWriter]. Like real
// configuration writers, it tracks the most recent interface record and
// patches its bNumEndpoints field as endpoint records are appended.
type ConfigWriter struct {
	buf       []byte
	n         int
	ifaceIdx  int // offset of the open interface record
	haveIface bool
}

// NewConfigWriter creates a writer appending into buf.
func NewConfigWriter(buf []byte) *ConfigWriter {
	return &ConfigWriter{buf: buf, ifaceIdx: -1}
}

// WriteInterface appends an interface descriptor record.
func (w *ConfigWriter) WriteInterface(num usb.InterfaceNumber, class, subclass, protocol uint8) error {
	desc := usb.InterfaceDescriptor{
		Length:            usb.InterfaceDescriptorSize,
		DescriptorType:    usb.DescriptorTypeInterface,
		InterfaceNumber:   uint8(num),
		InterfaceClass:    class,
		InterfaceSubClass: subclass,
		InterfaceProtocol: protocol,
	}
	n := desc.MarshalTo(w.buf[w.n:])
	if n == 0 {
		return pkg.ErrBufferTooSmall
	}
	w.ifaceIdx = w.n
	w.haveIface = true
	w.n += n
	return nil
}

// WriteRaw appends a class-specific descriptor record of the given type.
// The record body is data; bLength and bDescriptorType are prepended.
func (w *ConfigWriter) WriteRaw(descriptorType uint8, data []byte) error {
	total := 2 + len(data)
	if total > 255 || w.n+total > len(w.buf) {
		return pkg.ErrBufferTooSmall
	}
	w.buf[w.n] = uint8(total)
	w.buf[w.n+1] = descriptorType
	copy(w.buf[w.n+2:], data)
	w.n += total
	return nil
}

// WriteEndpoint appends an endpoint descriptor record and credits it to
// the open interface record.
func (w *ConfigWriter) WriteEndpoint(ep usb.Endpoint) error {
	desc := usb.EndpointDescriptor{
		Length:          usb.EndpointDescriptorSize,
		DescriptorType:  usb.DescriptorTypeEndpoint,
		EndpointAddress: ep.Address(),
		Attributes:      ep.Attributes(),
		MaxPacketSize:   ep.MaxPacketSize(),
		Interval:        ep.Interval(),
	}
	n := desc.MarshalTo(w.buf[w.n:])
	if n == 0 {
		return pkg.ErrBufferTooSmall
	}
	w.n += n
	if w.haveIface {
		w.buf[w.ifaceIdx+4]++ // bNumEndpoints
	}
	return nil
}

// Bytes returns the assembled descriptor bytes.
func (w *ConfigWriter) Bytes() []byte {
	return w.buf[:w.n]
}

// Len returns the number of bytes written.
func (w *ConfigWriter) Len() int {
	return w.n
}

var _ usb.DescriptorWriter = (*ConfigWriter)(nil)
