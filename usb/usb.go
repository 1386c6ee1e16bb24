package usb

// Allocator issues bus resources to class drivers during construction.
// Each resource is granted exactly once and never reallocated or shared;
// the stack implements this interface.
type Allocator interface {
	// Interface issues the next unused interface number.
	// Returns pkg.ErrNoResources if none remain.
	Interface() (InterfaceNumber, error)

	// InterruptIn issues an interrupt-IN endpoint with the given maximum
	// packet size and host polling interval in milliseconds.
	// Returns pkg.ErrNoResources if no endpoint address remains.
	InterruptIn(maxPacketSize uint16, intervalMS uint8) (Endpoint, error)
}

// DescriptorWriter assembles the configuration descriptor during
// enumeration. The stack supplies one to each class driver in interface
// order; every method fails with pkg.ErrBufferTooSmall when the
// configuration buffer is exhausted.
type DescriptorWriter interface {
	// WriteInterface appends an interface descriptor record for num with
	// the given class, subclass, and protocol codes.
	WriteInterface(num InterfaceNumber, class, subclass, protocol uint8) error

	// WriteRaw appends a class-specific descriptor record of the given
	// type. The record body is data; the writer prepends bLength and
	// bDescriptorType.
	WriteRaw(descriptorType uint8, data []byte) error

	// WriteEndpoint appends an endpoint descriptor record for ep.
	WriteEndpoint(ep Endpoint) error
}

// ClassDriver is the capability set a class driver exposes to the stack.
type ClassDriver interface {
	// EmitConfigurationDescriptors appends the driver's fragment of the
	// configuration descriptor. Output is deterministic for a given
	// driver; writer failures propagate unmodified.
	EmitConfigurationDescriptors(w DescriptorWriter) error

	// HandleControlIn dispatches an inbound control transfer. Drivers
	// claim a transfer by accepting it; unclaimed transfers are left for
	// other handlers or the stack's default behavior.
	HandleControlIn(xfer *ControlIn)
}
