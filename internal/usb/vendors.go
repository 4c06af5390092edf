package usb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the binary was built without USB support.
	ErrUnsupported = errors.New("usb probing not compiled in (build with -tags usb)")

	// ErrNoPhone is returned when no known phone vendor is on the bus.
	ErrNoPhone = errors.New("no android phone found on usb")
)

// DeviceInfo describes a phone found on the bus.
type DeviceInfo struct {
	Vendor    string
	VendorID  uint16
	ProductID uint16
}

// Label returns the text shown in the navigation bar.
func (d DeviceInfo) Label() string {
	if d.Vendor != "" {
		return d.Vendor + " (USB)"
	}
	return fmt.Sprintf("USB device %04X:%04X", d.VendorID, d.ProductID)
}

type knownVendor struct {
	VendorID uint16
	Name     string
}

// Vendor ids from the Android "OEM USB drivers" table.
var knownVendors = []knownVendor{
	{0x18d1, "Google"},
	{0x04e8, "Samsung"},
	{0x22b8, "Motorola"},
	{0x2717, "Xiaomi"},
	{0x12d1, "Huawei"},
	{0x2a70, "OnePlus"},
	{0x22d9, "Oppo"},
	{0x0bb4, "HTC"},
	{0x1004, "LG"},
	{0x0fce, "Sony"},
	{0x17ef, "Lenovo"},
	{0x0b05, "Asus"},
	{0x19d2, "ZTE"},
	{0x2916, "Yota"},
	{0x1ebf, "Fairphone"},
	{0x2ae5, "Fairphone"},
}

// classify matches a vendor id against the known phone vendors.
func classify(vendorID, productID uint16) (DeviceInfo, bool) {
	for _, v := range knownVendors {
		if v.VendorID == vendorID {
			return DeviceInfo{Vendor: v.Name, VendorID: vendorID, ProductID: productID}, true
		}
	}
	return DeviceInfo{}, false
}

// Prober looks for phones on the USB bus.
type Prober struct{}

// NewProber creates a Prober.
func NewProber() *Prober {
	return &Prober{}
}
