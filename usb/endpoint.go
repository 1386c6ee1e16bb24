package usb

// Endpoint transfer types (USB 2.0 Spec Table 9-13).
const (
	EndpointTypeControl     = 0x00 // Control transfer
	EndpointTypeIsochronous = 0x01 // Isochronous transfer
	EndpointTypeBulk        = 0x02 // Bulk transfer
	EndpointTypeInterrupt   = 0x03 // Interrupt transfer
)

// Endpoint directions.
const (
	EndpointDirectionOut = 0x00 // Host to device
	EndpointDirectionIn  = 0x80 // Device to host
)

// InterfaceNumber identifies a USB interface within a configuration.
// It is issued exactly once by the stack's [Allocator] and is stable for
// the lifetime of the driver that owns it.
type InterfaceNumber uint8

// Endpoint is an interrupt-IN endpoint handle issued by the stack's
// [Allocator]. It is exclusively owned by the driver it was issued to and
// holds at most one in-flight outbound packet.
type Endpoint interface {
	// Address returns the endpoint address including the direction bit.
	Address() uint8

	// Attributes returns the endpoint attributes (transfer type bits).
	Attributes() uint8

	// MaxPacketSize returns the maximum packet size in bytes.
	MaxPacketSize() uint16

	// Interval returns the host polling interval in milliseconds.
	Interval() uint8

	// Write queues one outbound packet. It makes exactly one attempt and
	// never blocks. Returns the number of bytes accepted, or
	// pkg.ErrWouldBlock if the previous packet is still in flight,
	// pkg.ErrPayloadTooLarge if data exceeds the maximum packet size, or
	// pkg.ErrNotConfigured if the bus is not configured.
	Write(data []byte) (int, error)
}

// EndpointNumber returns the endpoint number (0-15) of an address.
func EndpointNumber(address uint8) uint8 {
	return address & 0x0F
}

// IsInAddress returns true if address names an IN endpoint (device to host).
func IsInAddress(address uint8) bool {
	return address&0x80 == EndpointDirectionIn
}
