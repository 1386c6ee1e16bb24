package usb

import "github.com/agalakhov/usbd-hid-device/pkg"

// ControlIn represents one inbound (device-to-host) control transfer being
// dispatched to class drivers. The stack constructs it around the SETUP
// packet of the transfer; a driver that recognizes the request claims it
// by attaching a static reply.
//
// A transfer is resolved at most once. Go has no move semantics to enforce
// consumption at compile time, so the single-use property is a runtime
// guard: the second accept attempt fails with pkg.ErrResolved and leaves
// the first reply intact.
type ControlIn struct {
	setup    SetupPacket
	reply    []byte
	resolved bool
}

// NewControlIn creates a control transfer for the given SETUP packet.
func NewControlIn(setup SetupPacket) *ControlIn {
	return &ControlIn{setup: setup}
}

// Setup returns the SETUP packet of this transfer.
func (x *ControlIn) Setup() *SetupPacket {
	return &x.setup
}

// AcceptWithStatic resolves the transfer with a static reply. The bytes
// are attached by reference and must remain immutable until the stack has
// transmitted them. Returns pkg.ErrResolved if the transfer was already
// accepted.
func (x *ControlIn) AcceptWithStatic(data []byte) error {
	if x.resolved {
		return pkg.ErrResolved
	}
	x.resolved = true
	x.reply = data
	return nil
}

// Accepted returns true if a driver has claimed this transfer.
func (x *ControlIn) Accepted() bool {
	return x.resolved
}

// Reply returns the reply bytes attached by the claiming driver, or nil if
// the transfer is unclaimed. The stack truncates the reply to the
// transfer's wLength when transmitting.
func (x *ControlIn) Reply() []byte {
	return x.reply
}
