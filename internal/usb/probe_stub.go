//go:build !usb

package usb

import "context"

// Probe reports ErrUnsupported in builds without the "usb" tag.
func (p *Prober) Probe(ctx context.Context) ([]DeviceInfo, error) {
	return nil, ErrUnsupported
}
