package pkg

import "errors"

// Errors surfaced by the HID class driver and by the device-stack
// capabilities it consumes.
var (
	// ErrWouldBlock indicates the endpoint's single outbound slot is
	// still occupied by a previous packet.
	ErrWouldBlock = errors.New("endpoint busy")

	// ErrPayloadTooLarge indicates a report larger than the endpoint's
	// maximum packet size.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrNotConfigured indicates the device is not configured.
	ErrNotConfigured = errors.New("device not configured")

	// ErrBufferTooSmall indicates the descriptor buffer is exhausted.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrNoResources indicates the allocator cannot grant an interface
	// number or endpoint.
	ErrNoResources = errors.New("no resources available")

	// ErrDescriptorTooLong indicates a report descriptor whose byte
	// length does not fit the 16-bit wDescriptorLength field.
	ErrDescriptorTooLong = errors.New("descriptor too long")

	// ErrResolved indicates a control transfer that was already accepted.
	ErrResolved = errors.New("transfer already resolved")

	// ErrDescriptorTooShort indicates descriptor data too short to parse.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not
	// match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrSetupPacketTooShort indicates the setup packet data is too short.
	ErrSetupPacketTooShort = errors.New("setup packet too short")
)
