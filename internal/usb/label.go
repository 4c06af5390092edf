package usb

import "context"

// VendorLabel returns the label of the first phone on the bus.
func (p *Prober) VendorLabel(ctx context.Context) (string, error) {
	devices, err := p.Probe(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", ErrNoPhone
	}
	return devices[0].Label(), nil
}
