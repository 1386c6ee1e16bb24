package hid

import (
	"github.com/agalakhov/usbd-hid-device/pkg"
	"github.com/agalakhov/usbd-hid-device/usb"
)

// MaxReportSize is the maximum packet size of the interrupt-IN endpoint,
// and therefore the largest report that can be sent in one packet.
const MaxReportSize = 64

// MaxDescriptorSize is the largest report descriptor representable in the
// 16-bit wDescriptorLength field.
const MaxDescriptorSize = 0xFFFF

// HID is a USB HID class driver bound to one report type.
//
// The driver owns one interface number and one interrupt-IN endpoint,
// both issued at construction. Its report descriptor is taken from the
// zero value of R once and never recomputed; the only other persistent
// state is the two issued resources, so the driver is stateless between
// calls.
type HID[R Report] struct {
	iface usb.InterfaceNumber
	inEP  usb.Endpoint

	descriptor []byte

	reportBuf [MaxReportSize]byte
}

// New creates a HID driver, requesting one interface number and one
// interrupt-IN endpoint (64-byte packets, the given polling interval) from
// the allocator.
//
// pollMS is the period of host polling for reports, in milliseconds.
// Lower values mean lower latency but consume more bus bandwidth, which
// may conflict with other devices on the same hub. The value is not
// validated; values around 10 are reasonable for most devices.
//
// The report descriptor of R must fit the 16-bit length field of the HID
// descriptor; longer descriptors are rejected with
// pkg.ErrDescriptorTooLong rather than silently truncated.
func New[R Report](alloc usb.Allocator, pollMS uint8) (*HID[R], error) {
	var zero R
	descriptor := zero.Descriptor()
	if len(descriptor) > MaxDescriptorSize {
		return nil, pkg.ErrDescriptorTooLong
	}

	iface, err := alloc.Interface()
	if err != nil {
		return nil, err
	}
	inEP, err := alloc.InterruptIn(MaxReportSize, pollMS)
	if err != nil {
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentHID, "driver constructed",
		"interface", uint8(iface),
		"endpoint", inEP.Address(),
		"reportDescLen", len(descriptor),
		"pollMS", pollMS)

	return &HID[R]{
		iface:      iface,
		inEP:       inEP,
		descriptor: descriptor,
	}, nil
}

// InterfaceNumber returns the interface number issued at construction.
func (h *HID[R]) InterfaceNumber() usb.InterfaceNumber {
	return h.iface
}

// ReportDescriptor returns the bound report descriptor bytes.
// The returned slice is immutable for the lifetime of the program.
func (h *HID[R]) ReportDescriptor() []byte {
	return h.descriptor
}

// EmitConfigurationDescriptors appends the driver's fragment of the
// configuration descriptor: the interface record, the HID class
// descriptor record, and the endpoint record. Output is deterministic for
// a given report descriptor and resource set; writer failures propagate
// unmodified.
func (h *HID[R]) EmitConfigurationDescriptors(w usb.DescriptorWriter) error {
	if err := w.WriteInterface(h.iface, ClassHID, SubclassNone, ProtocolNone); err != nil {
		return err
	}

	record := [hidDescriptorBodySize]byte{
		hidVersion[0], hidVersion[1], // bcdHID
		CountryNone,                   // bCountryCode
		0x01,                          // bNumDescriptors
		DescriptorTypeReport,          // bDescriptorType
		uint8(len(h.descriptor)),      // wDescriptorLength low
		uint8(len(h.descriptor) >> 8), // wDescriptorLength high
	}
	if err := w.WriteRaw(DescriptorTypeHID, record[:]); err != nil {
		return err
	}

	return w.WriteEndpoint(h.inEP)
}

// HandleControlIn dispatches an inbound control transfer. The driver
// claims a transfer only if it is addressed to its interface, and answers
// only GET_DESCRIPTOR for report descriptor index 0 with the bound
// descriptor bytes. Everything else is left unclaimed for other handlers
// or the stack's default behavior.
func (h *HID[R]) HandleControlIn(xfer *usb.ControlIn) {
	setup := xfer.Setup()

	if !setup.IsInterfaceRecipient() || setup.Index != uint16(h.iface) {
		return
	}

	if !setup.IsStandard() || setup.Request != usb.RequestGetDescriptor {
		return
	}

	if setup.DescriptorType() != DescriptorTypeReport || setup.DescriptorIndex() != 0 {
		return
	}

	if err := xfer.AcceptWithStatic(h.descriptor); err != nil {
		pkg.LogWarn(pkg.ComponentHID, "report descriptor reply rejected",
			"interface", uint8(h.iface),
			"error", err)
	}
}

// SendReport converts the report to bytes and submits them to the
// interrupt-IN endpoint. One best-effort attempt, no queuing: the caller
// decides when to retry after pkg.ErrWouldBlock. Returns the number of
// bytes accepted.
//
// The byte layout produced by r.MarshalTo must match the format declared
// in the report descriptor of R.
func (h *HID[R]) SendReport(r R) (int, error) {
	n := r.MarshalTo(h.reportBuf[:])
	if n == 0 {
		return 0, pkg.ErrPayloadTooLarge
	}
	return h.inEP.Write(h.reportBuf[:n])
}

var _ usb.ClassDriver = (*HID[MouseReport])(nil)
