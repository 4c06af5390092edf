package adb

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

type fakeFallback struct {
	label string
	err   error
}

func (f fakeFallback) VendorLabel(ctx context.Context) (string, error) {
	return f.label, f.err
}

const pixelDevices = "List of devices attached\n1A2B3C device product:oriole model:Pixel_6 device:oriole transport_id:3\n"

func pixelRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{
		"devices -l":                               pixelDevices,
		"-s 1A2B3C shell getprop ro.product.brand": "google\n",
		"-s 1A2B3C shell getprop ro.product.model": "Pixel 6\n",
		"-s 1A2B3C shell pm list packages":         "package:com.android.chrome\npackage:com.example.app\n",
	}}
}

func TestDeviceLabel(t *testing.T) {
	c := NewClient(DefaultConfig(), nil, WithRunner(pixelRunner()))

	label, err := c.DeviceLabel(context.Background())
	if err != nil {
		t.Fatalf("DeviceLabel() error = %v", err)
	}
	if label != "Google Pixel 6" {
		t.Errorf("DeviceLabel() = %q, want Google Pixel 6", label)
	}
}

func TestDeviceLabelNickname(t *testing.T) {
	r := pixelRunner()
	c := NewClient(DefaultConfig(), nil, WithRunner(r), WithNicknames(func(serial string) string {
		if serial == "1A2B3C" {
			return "Test phone"
		}
		return ""
	}))

	label, err := c.DeviceLabel(context.Background())
	if err != nil {
		t.Fatalf("DeviceLabel() error = %v", err)
	}
	if label != "Test phone" {
		t.Errorf("DeviceLabel() = %q, want Test phone", label)
	}
	if len(r.calls) != 1 {
		t.Errorf("nickname lookup should skip getprop, calls = %v", r.calls)
	}
}

func TestDeviceLabelNoDevice(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"devices -l": "List of devices attached\n"}}

	c := NewClient(DefaultConfig(), nil, WithRunner(r))
	if _, err := c.DeviceLabel(context.Background()); !errors.Is(err, ErrNoDevice) {
		t.Errorf("DeviceLabel() error = %v, want ErrNoDevice", err)
	}

	c = NewClient(DefaultConfig(), nil, WithRunner(r), WithFallback(fakeFallback{label: "Samsung (USB)"}))
	label, err := c.DeviceLabel(context.Background())
	if err != nil {
		t.Fatalf("DeviceLabel() with fallback error = %v", err)
	}
	if label != "Samsung (USB)" {
		t.Errorf("DeviceLabel() = %q, want Samsung (USB)", label)
	}
}

func TestDeviceLabelSerialSelection(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"devices -l": "List of devices attached\nAAA device\nBBB unauthorized\n",
	}}
	cfg := DefaultConfig()
	cfg.Serial = "BBB"

	c := NewClient(cfg, nil, WithRunner(r))
	_, err := c.DeviceLabel(context.Background())
	if !errors.Is(err, ErrNoDevice) || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("DeviceLabel() error = %v, want unauthorized ErrNoDevice", err)
	}
}

func TestDeviceLabelExecutionError(t *testing.T) {
	r := pixelRunner()
	r.errs = map[string]error{
		"-s 1A2B3C shell getprop ro.product.model": &ExecutionError{ExitCode: 1, Stderr: "error: closed"},
	}

	c := NewClient(DefaultConfig(), nil, WithRunner(r))
	_, err := c.DeviceLabel(context.Background())
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("DeviceLabel() error = %v, want *ExecutionError", err)
	}
}

func TestInstalledPackages(t *testing.T) {
	c := NewClient(DefaultConfig(), nil, WithRunner(pixelRunner()))

	pkgs, err := c.InstalledPackages(context.Background())
	if err != nil {
		t.Fatalf("InstalledPackages() error = %v", err)
	}
	want := []string{"com.android.chrome", "com.example.app"}
	if !reflect.DeepEqual(pkgs, want) {
		t.Errorf("InstalledPackages() = %v, want %v", pkgs, want)
	}
}

func TestConnect(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{"connected", "connected to 192.168.1.20:37811\n", false},
		{"already", "already connected to 192.168.1.20:37811\n", false},
		{"refused", "failed to connect to '192.168.1.20:37811': Connection refused\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{outputs: map[string]string{"connect 192.168.1.20:37811": tt.output}}
			err := NewClient(DefaultConfig(), nil, WithRunner(r)).Connect(context.Background(), "192.168.1.20:37811")
			if (err != nil) != tt.wantErr {
				t.Errorf("Connect() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := NewExecRunner(Config{Path: "/nonexistent/adb-binary"}, nil)
	_, err := r.Run(context.Background(), "devices")

	var execErr *ExecutionError
	var preErr *PrerequisiteError
	if !errors.As(err, &execErr) && !errors.As(err, &preErr) {
		t.Errorf("Run() error = %T %v, want ExecutionError or PrerequisiteError", err, err)
	}
}
