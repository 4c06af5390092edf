package usb

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		vendorID  uint16
		productID uint16
		wantOK    bool
		wantLabel string
	}{
		{"pixel", 0x18d1, 0x4ee7, true, "Google (USB)"},
		{"galaxy", 0x04e8, 0x6860, true, "Samsung (USB)"},
		{"keyboard", 0x046d, 0xc31c, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := classify(tt.vendorID, tt.productID)
			if ok != tt.wantOK {
				t.Fatalf("classify() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && info.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", info.Label(), tt.wantLabel)
			}
			if ok && info.ProductID != tt.productID {
				t.Errorf("ProductID = %04X, want %04X", info.ProductID, tt.productID)
			}
		})
	}
}

func TestUnknownVendorLabel(t *testing.T) {
	d := DeviceInfo{VendorID: 0x1234, ProductID: 0xabcd}
	if got := d.Label(); got != "USB device 1234:ABCD" {
		t.Errorf("Label() = %q", got)
	}
}
