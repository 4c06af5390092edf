package adb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muurk/debloater/internal/logging"
	"go.uber.org/zap"
)

// LabelFallback supplies a device label when adb cannot.
// usb.Prober satisfies it.
type LabelFallback interface {
	VendorLabel(ctx context.Context) (string, error)
}

// Client queries devices through a Runner.
type Client struct {
	runner   Runner
	serial   string
	nickname func(serial string) string
	fallback LabelFallback
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithNicknames overrides the brand/model label for devices the user has named.
func WithNicknames(lookup func(serial string) string) Option {
	return func(c *Client) { c.nickname = lookup }
}

// WithFallback sets the label source used when adb has no ready device.
func WithFallback(f LabelFallback) Option {
	return func(c *Client) { c.fallback = f }
}

// WithRunner replaces the os/exec runner.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// NewClient creates a Client for config.
func NewClient(config Config, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		runner: NewExecRunner(config, logger),
		serial: config.Serial,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDevices returns every device adb knows about, ready or not.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	out, err := c.runner.Run(ctx, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return parseDevices(out), nil
}

// target picks the configured device, or the first ready one.
func (c *Client) target(ctx context.Context) (Device, error) {
	devices, err := c.ListDevices(ctx)
	if err != nil {
		return Device{}, err
	}

	for _, d := range devices {
		if c.serial != "" && d.Serial != c.serial {
			continue
		}
		if d.Ready() {
			return d, nil
		}
		if c.serial != "" {
			return Device{}, fmt.Errorf("device %s is %s: %w", d.Serial, d.State, ErrNoDevice)
		}
	}

	if c.serial != "" {
		return Device{}, fmt.Errorf("device %s not attached: %w", c.serial, ErrNoDevice)
	}
	return Device{}, ErrNoDevice
}

func (c *Client) shell(ctx context.Context, serial string, args ...string) (string, error) {
	return c.runner.Run(ctx, append([]string{"-s", serial, "shell"}, args...)...)
}

// DeviceLabel returns "Brand Model" for the target device, a configured
// nickname, or the fallback's label when no device is ready over adb.
func (c *Client) DeviceLabel(ctx context.Context) (string, error) {
	start := time.Now()

	d, err := c.target(ctx)
	if err != nil {
		label, ferr := c.fallbackLabel(ctx)
		if ferr != nil {
			logging.LogDeviceQuery(c.serial, "", time.Since(start), err)
			return "", err
		}
		logging.LogDeviceQuery(c.serial, label, time.Since(start), nil)
		return label, nil
	}

	if c.nickname != nil {
		if nick := c.nickname(d.Serial); nick != "" {
			logging.LogDeviceQuery(d.Serial, nick, time.Since(start), nil)
			return nick, nil
		}
	}

	brand, err := c.shell(ctx, d.Serial, "getprop", "ro.product.brand")
	if err != nil {
		logging.LogDeviceQuery(d.Serial, "", time.Since(start), err)
		return "", err
	}
	model, err := c.shell(ctx, d.Serial, "getprop", "ro.product.model")
	if err != nil {
		logging.LogDeviceQuery(d.Serial, "", time.Since(start), err)
		return "", err
	}

	label := formatLabel(brand, model)
	if label == "" {
		label = strings.ReplaceAll(d.Model, "_", " ")
	}
	if label == "" {
		label = d.Serial
	}
	logging.LogDeviceQuery(d.Serial, label, time.Since(start), nil)
	return label, nil
}

func (c *Client) fallbackLabel(ctx context.Context) (string, error) {
	if c.fallback == nil {
		return "", ErrNoDevice
	}
	label, err := c.fallback.VendorLabel(ctx)
	if err != nil {
		c.logger.Debug("usb fallback failed", zap.Error(err))
		return "", err
	}
	return label, nil
}

// InstalledPackages returns the package ids installed for the current user.
func (c *Client) InstalledPackages(ctx context.Context) ([]string, error) {
	d, err := c.target(ctx)
	if err != nil {
		return nil, err
	}
	out, err := c.shell(ctx, d.Serial, "pm", "list", "packages")
	if err != nil {
		return nil, err
	}
	pkgs := parsePackages(out)
	c.logger.Info("listed installed packages",
		zap.String("serial", d.Serial),
		zap.Int("count", len(pkgs)),
	)
	return pkgs, nil
}

// Connect attaches a wireless debugging endpoint (host:port).
func (c *Client) Connect(ctx context.Context, addr string) error {
	out, err := c.runner.Run(ctx, "connect", addr)
	if err != nil {
		return err
	}
	out = strings.TrimSpace(out)
	// adb exits 0 even when the connection fails
	if !strings.HasPrefix(out, "connected to") && !strings.HasPrefix(out, "already connected") {
		return &ExecutionError{Args: []string{"connect", addr}, Stderr: out}
	}
	c.logger.Info("connected wireless device", zap.String("addr", addr))
	return nil
}
