package adb

import (
	"bufio"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Device is one line of `adb devices -l`.
type Device struct {
	Serial      string
	State       string // device, offline, unauthorized, ...
	Product     string
	Model       string
	DeviceName  string
	TransportID string
	USB         string
}

// Ready reports whether adb can run commands on the device.
func (d Device) Ready() bool {
	return d.State == "device"
}

// parseDevices parses the output of `adb devices -l`.
func parseDevices(output string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		d := Device{Serial: fields[0], State: fields[1]}
		for _, f := range fields[2:] {
			key, value, ok := strings.Cut(f, ":")
			if !ok {
				continue
			}
			switch key {
			case "product":
				d.Product = value
			case "model":
				d.Model = value
			case "device":
				d.DeviceName = value
			case "transport_id":
				d.TransportID = value
			case "usb":
				d.USB = value
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// parsePackages parses `pm list packages` output into sorted package ids.
func parsePackages(output string) []string {
	var pkgs []string
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		id, ok := strings.CutPrefix(line, "package:")
		if !ok || id == "" {
			continue
		}
		pkgs = append(pkgs, id)
	}
	sort.Strings(pkgs)
	return pkgs
}

// formatLabel joins brand and model the way the navigation bar shows them:
// "google" + "Pixel 6" becomes "Google Pixel 6". A model that already starts
// with the brand is not repeated.
func formatLabel(brand, model string) string {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)

	if brand != "" {
		r, size := utf8.DecodeRuneInString(brand)
		brand = string(unicode.ToUpper(r)) + brand[size:]
	}
	if brand != "" && strings.HasPrefix(strings.ToLower(model), strings.ToLower(brand)) {
		brand = ""
	}

	return strings.TrimSpace(brand + " " + model)
}
