package guidgen

import (
	"errors"
	"io"
	"net"
	"sync"
)

// NodeSource resolves the 48-bit node ID used by versions 1, 2 and 6.
type NodeSource interface {
	NodeID() ([6]byte, error)
}

// NodeSourceFunc adapts a function to the NodeSource interface.
type NodeSourceFunc func() ([6]byte, error)

// NodeID calls f.
func (f NodeSourceFunc) NodeID() ([6]byte, error) {
	return f()
}

// errNoHardwareAddress is returned by HardwareNodeSource when no usable
// interface exists; the generator falls back to a random node.
var errNoHardwareAddress = errors.New("guidgen: no usable hardware address")

// HardwareNodeSource returns the MAC address of the first non-loopback
// interface with a 6-byte hardware address, preferring interfaces that are up.
var HardwareNodeSource NodeSource = NodeSourceFunc(hardwareNodeID)

func hardwareNodeID() ([6]byte, error) {
	var node [6]byte
	ifaces, err := net.Interfaces()
	if err != nil {
		return node, err
	}
	var fallback net.HardwareAddr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) != 6 {
			continue
		}
		if iface.Flags&net.FlagUp != 0 {
			copy(node[:], iface.HardwareAddr)
			return node, nil
		}
		if fallback == nil {
			fallback = iface.HardwareAddr
		}
	}
	if fallback == nil {
		return node, errNoHardwareAddress
	}
	copy(node[:], fallback)
	return node, nil
}

// randomNode reads 6 random bytes and sets the multicast bit, which marks
// the value as not being a real IEEE 802 address.
func randomNode(r io.Reader) ([6]byte, error) {
	var node [6]byte
	if _, err := io.ReadFull(r, node[:]); err != nil {
		return node, err
	}
	node[0] |= 0x01
	return node, nil
}

// nodeIdentity resolves the node once and serves it read-only afterwards.
// A failed resolution leaves it unresolved so the next call retries.
type nodeIdentity struct {
	mu       sync.Mutex
	source   NodeSource
	node     [6]byte
	resolved bool

	// saved is a random node restored from a StateStore; it is reused
	// instead of drawing a new one when the source fails.
	saved    [6]byte
	hasSaved bool
}

func (n *nodeIdentity) get(rand io.Reader) ([6]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.resolved {
		return n.node, nil
	}

	node, err := n.source.NodeID()
	if err != nil {
		// Fall back to a random multicast node, as RFC 9562 section 6.10 allows.
		if n.hasSaved {
			node = n.saved
		} else if node, err = randomNode(rand); err != nil {
			return node, err
		}
	}
	n.node = node
	n.resolved = true
	return n.node, nil
}

// peek returns the node without resolving it.
func (n *nodeIdentity) peek() ([6]byte, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.node, n.resolved
}

// remember keeps a persisted random node for the fallback path.
func (n *nodeIdentity) remember(node [6]byte) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if node[0]&0x01 == 0 {
		return
	}
	n.saved = node
	n.hasSaved = true
}

// set pins the node, skipping the source.
func (n *nodeIdentity) set(node [6]byte) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.node = node
	n.resolved = true
}
