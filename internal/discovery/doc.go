// Package discovery finds Android phones that advertise wireless debugging.
//
// Android 11 and later announce a paired phone as an "_adb-tls-connect._tcp"
// mDNS service while wireless debugging is enabled. The instance name embeds
// the adb serial ("adb-<serial>-<suffix>"), and the service port is the one
// "adb connect" expects.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(5 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range devices {
//	    fmt.Printf("%s -> adb connect %s\n", d.Serial, d.Address())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - The phone must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
