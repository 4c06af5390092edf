package adb

import (
	"reflect"
	"testing"
)

func TestParseDevices(t *testing.T) {
	output := `* daemon not running; starting now at tcp:5037
* daemon started successfully
List of devices attached
R58M123ABC             device usb:1-1 product:beyond1lteeea model:SM_G973F device:beyond1 transport_id:1
emulator-5554          offline transport_id:2
192.168.1.20:37811     unauthorized

`
	devices := parseDevices(output)
	if len(devices) != 3 {
		t.Fatalf("got %d devices, want 3", len(devices))
	}

	want := Device{
		Serial:      "R58M123ABC",
		State:       "device",
		Product:     "beyond1lteeea",
		Model:       "SM_G973F",
		DeviceName:  "beyond1",
		TransportID: "1",
		USB:         "1-1",
	}
	if !reflect.DeepEqual(devices[0], want) {
		t.Errorf("devices[0] = %+v, want %+v", devices[0], want)
	}
	if !devices[0].Ready() || devices[1].Ready() || devices[2].Ready() {
		t.Error("only the first device should be ready")
	}
	if devices[2].Serial != "192.168.1.20:37811" {
		t.Errorf("wireless serial = %q", devices[2].Serial)
	}
}

func TestParseDevicesEmpty(t *testing.T) {
	if got := parseDevices("List of devices attached\n\n"); len(got) != 0 {
		t.Errorf("parseDevices() = %v, want none", got)
	}
}

func TestParsePackages(t *testing.T) {
	output := "package:com.android.chrome\r\npackage:com.google.android.gms\npackage:\ngarbage\npackage:com.android.bips\n"
	want := []string{"com.android.bips", "com.android.chrome", "com.google.android.gms"}
	if got := parsePackages(output); !reflect.DeepEqual(got, want) {
		t.Errorf("parsePackages() = %v, want %v", got, want)
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		brand, model, want string
	}{
		{"google\n", "Pixel 6\n", "Google Pixel 6"},
		{"samsung", "SM-G973F", "Samsung SM-G973F"},
		{"OnePlus", "OnePlus 9 Pro", "OnePlus 9 Pro"},
		{"", "Pixel 6", "Pixel 6"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := formatLabel(tt.brand, tt.model); got != tt.want {
			t.Errorf("formatLabel(%q, %q) = %q, want %q", tt.brand, tt.model, got, tt.want)
		}
	}
}
