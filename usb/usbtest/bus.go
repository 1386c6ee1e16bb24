package usbtest

import (
	"fmt"
	"sync"

	"github.com/agalakhov/usbd-hid-device/pkg"
	"github.com/agalakhov/usbd-hid-device/usb"
)

// MaxInterfaces is the maximum number of interfaces the bus can issue.
const MaxInterfaces = 8

// MaxEndpoints is the maximum number of data endpoints (1-15 IN).
const MaxEndpoints = 15

// MaxPacketSize is the largest packet size an endpoint slot can hold.
const MaxPacketSize = 512

// Bus is an in-memory USB device stack implementing [usb.Allocator].
// It issues interface numbers and interrupt-IN endpoints to class drivers
// and simulates the host side of the bus: endpoint slots are drained by
// [Endpoint.Poll] the way a host controller drains them at the polling
// interval.
type Bus struct {
	mutex          sync.Mutex
	interfaceCount int
	endpointCount  int
	endpoints      [MaxEndpoints]*Endpoint
	configured     bool
}

// NewBus creates a new simulated bus in the unconfigured state.
func NewBus() *Bus {
	return &Bus{}
}

// Interface issues the next unused interface number.
func (b *Bus) Interface() (usb.InterfaceNumber, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.interfaceCount >= MaxInterfaces {
		return 0, pkg.ErrNoResources
	}
	num := usb.InterfaceNumber(b.interfaceCount)
	b.interfaceCount++

	pkg.LogDebug(pkg.ComponentBus, "interface issued", "interface", uint8(num))
	return num, nil
}

// InterruptIn issues an interrupt-IN endpoint. Endpoint numbers are
// assigned sequentially starting at 1 (EP0 is the control endpoint).
func (b *Bus) InterruptIn(maxPacketSize uint16, intervalMS uint8) (usb.Endpoint, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.endpointCount >= MaxEndpoints || maxPacketSize > MaxPacketSize {
		return nil, pkg.ErrNoResources
	}
	ep := &Endpoint{
		bus:       b,
		address:   uint8(b.endpointCount+1) | usb.EndpointDirectionIn,
		maxPacket: maxPacketSize,
		interval:  intervalMS,
	}
	b.endpoints[b.endpointCount] = ep
	b.endpointCount++

	pkg.LogDebug(pkg.ComponentBus, "interrupt IN endpoint issued",
		"address", fmt.Sprintf("0x%02X", ep.address),
		"maxPacket", maxPacketSize,
		"interval", intervalMS)
	return ep, nil
}

// SetConfigured marks the bus as configured or deconfigured. Endpoint
// writes fail with pkg.ErrNotConfigured until the bus is configured,
// mirroring a device that has not completed enumeration.
func (b *Bus) SetConfigured(configured bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.configured = configured
}

// Endpoint returns the issued endpoint with the given address, or nil.
func (b *Bus) Endpoint(address uint8) *Endpoint {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for i := 0; i < b.endpointCount; i++ {
		if b.endpoints[i].address == address {
			return b.endpoints[i]
		}
	}
	return nil
}

// IsConfigured returns true if the bus is configured.
func (b *Bus) IsConfigured() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.configured
}

// Endpoint is a simulated interrupt-IN endpoint with a single outbound
// packet slot.
type Endpoint struct {
	bus       *Bus
	address   uint8
	maxPacket uint16
	interval  uint8

	mutex   sync.Mutex
	slot    [MaxPacketSize]byte
	slotLen int
	pending bool
}

// Address returns the endpoint address including the direction bit.
func (e *Endpoint) Address() uint8 { return e.address }

// Attributes returns the endpoint attributes (always interrupt here).
func (e *Endpoint) Attributes() uint8 { return usb.EndpointTypeInterrupt }

// MaxPacketSize returns the maximum packet size in bytes.
func (e *Endpoint) MaxPacketSize() uint16 { return e.maxPacket }

// Interval returns the host polling interval in milliseconds.
func (e *Endpoint) Interval() uint8 { return e.interval }

// Write queues one outbound packet. A single attempt, never blocking:
// it fails immediately if the bus is unconfigured, the packet exceeds the
// maximum packet size, or the slot still holds an unpolled packet.
func (e *Endpoint) Write(data []byte) (int, error) {
	if !e.bus.IsConfigured() {
		return 0, pkg.ErrNotConfigured
	}
	if len(data) > int(e.maxPacket) {
		return 0, pkg.ErrPayloadTooLarge
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.pending {
		return 0, pkg.ErrWouldBlock
	}
	e.slotLen = copy(e.slot[:], data)
	e.pending = true

	pkg.LogDebug(pkg.ComponentEndpoint, "packet queued",
		"address", fmt.Sprintf("0x%02X", e.address),
		"len", e.slotLen)
	return e.slotLen, nil
}

// Poll drains the outbound slot into buf, acting as the host's interrupt
// poll. Returns the packet length and true, or 0 and false if no packet
// is pending or buf is too small to hold it.
func (e *Endpoint) Poll(buf []byte) (int, bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if !e.pending || len(buf) < e.slotLen {
		return 0, false
	}
	n := copy(buf, e.slot[:e.slotLen])
	e.pending = false
	return n, true
}

// Pending returns true if the outbound slot holds an unpolled packet.
func (e *Endpoint) Pending() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.pending
}

var _ usb.Allocator = (*Bus)(nil)
var _ usb.Endpoint = (*Endpoint)(nil)
