package server

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/brutella/dnssd"
	"go.uber.org/zap"

	"github.com/muurk/debloater/internal/logging"
	"github.com/muurk/debloater/internal/version"
)

// ServiceType is the mDNS service announced by "debloater serve --advertise".
const ServiceType = "_debloater._tcp"

// Advertise announces the server on the local network until ctx is done.
func Advertise(ctx context.Context, name string, port int) error {
	if name == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "debloater"
		}
		name = host
	}

	cfg := dnssd.Config{
		Name:   name,
		Type:   ServiceType,
		Domain: "local",
		Port:   port,
		Text: map[string]string{
			"path":    "/ws",
			"version": version.Get().Version,
		},
	}

	service, err := dnssd.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create mDNS service: %w", err)
	}

	rp, err := dnssd.NewResponder()
	if err != nil {
		return fmt.Errorf("failed to create mDNS responder: %w", err)
	}

	if _, err := rp.Add(service); err != nil {
		return fmt.Errorf("failed to add mDNS service: %w", err)
	}

	logging.Info("Advertising over mDNS",
		zap.String("name", name),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	if err := rp.Respond(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to respond to mDNS queries: %w", err)
	}
	return nil
}
