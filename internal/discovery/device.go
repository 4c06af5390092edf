package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Device is an Android phone advertising wireless debugging on the network.
type Device struct {
	// Serial is the adb serial taken from the instance name
	// (e.g. "2A111FDH200C5N" from "adb-2A111FDH200C5N-kLUsf4")
	Serial string

	// Instance is the full mDNS instance name
	Instance string

	// Hostname is the mDNS hostname (e.g. "Android.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the adb TLS connect port
	Port int

	// Metadata holds the TXT record key/value pairs
	Metadata map[string]string

	// DiscoveredAt is when the advertisement was seen
	DiscoveredAt time.Time
}

// String returns a human-readable description of the device.
func (d *Device) String() string {
	return fmt.Sprintf("Android device %s (%s) at %s", d.Serial, d.Hostname, d.Address())
}

// Address returns the host:port pair accepted by "adb connect".
func (d *Device) Address() string {
	return net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
