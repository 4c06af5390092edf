// Package usb identifies Android phones attached over USB by vendor id.
//
// It is a fallback for the navigation bar label when adb cannot answer
// (daemon not authorised yet, USB debugging off): the vendor is still visible
// on the bus. Enumeration needs libusb and cgo, so it is only compiled with
// the "usb" build tag; without it Probe reports ErrUnsupported.
package usb
