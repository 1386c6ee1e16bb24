package hid

// HID class codes.
const (
	ClassHID = 0x03 // Human Interface Device Class
)

// HID subclass codes. The subclass declares whether the device supports a
// boot interface; this driver never does.
const (
	SubclassNone = 0x00 // No subclass
	SubclassBoot = 0x01 // Boot Interface Subclass
)

// HID protocol codes. Only meaningful when the subclass declares a boot
// interface.
const (
	ProtocolNone     = 0x00 // No protocol
	ProtocolKeyboard = 0x01 // Keyboard boot protocol
	ProtocolMouse    = 0x02 // Mouse boot protocol
)

// HID descriptor types.
const (
	DescriptorTypeHID      = 0x21 // HID descriptor
	DescriptorTypeReport   = 0x22 // Report descriptor
	DescriptorTypePhysical = 0x23 // Physical descriptor
)

// HID specification release 1.10, BCD little-endian.
var hidVersion = [2]byte{0x10, 0x01}

// CountryNone declares the device not localized for any country.
const CountryNone = 0x00

// hidDescriptorBodySize is the body of the HID class descriptor record:
// bcdHID (2), bCountryCode, bNumDescriptors, bDescriptorType,
// wDescriptorLength (2).
const hidDescriptorBodySize = 7
