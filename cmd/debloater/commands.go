package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/debloater/internal/adb"
	"github.com/muurk/debloater/internal/app"
	"github.com/muurk/debloater/internal/app/list"
	"github.com/muurk/debloater/internal/app/runtime"
	"github.com/muurk/debloater/internal/catalog"
	"github.com/muurk/debloater/internal/config"
	"github.com/muurk/debloater/internal/discovery"
	"github.com/muurk/debloater/internal/logging"
	"github.com/muurk/debloater/internal/server"
	"github.com/muurk/debloater/internal/tui"
	"github.com/muurk/debloater/internal/ui"
	"github.com/muurk/debloater/internal/usb"
)

// Global flags
var (
	configPath  string
	logLevel    string
	logFile     string
	adbPath     string
	serial      string
	catalogPath string
)

// Command flags
var (
	deviceName    string
	packagesQuery string
	packagesAll   bool
	scanTimeout   int
	scanConnect   bool
	serveAddr     string
	serveAdvert   bool
	serveName     string
	serveCert     string
	serveKey      string
	configForce   bool
)

var adbTroubleshooting = []string{
	"Enable Developer options and USB debugging on the phone",
	"Accept the RSA fingerprint prompt on the phone",
	"Check that 'adb devices' lists the phone",
	"Use --adb to point at the platform-tools binary",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: OS config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&adbPath, "adb", "", "Path to the adb binary")
	rootCmd.PersistentFlags().StringVarP(&serial, "serial", "s", "", "Device serial when several are attached")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (JSON or YAML) instead of the embedded one")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(deviceCmd)
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// session is what every device command needs.
type session struct {
	cfg    *config.Config
	client *adb.Client
	loader *catalog.Loader
}

// setup loads config, applies flag overrides, and initializes logging. The
// terminal UI owns stdout, so it always logs to a file.
func setup(toFile bool) (*session, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if adbPath != "" {
		cfg.ADB.Path = adbPath
	}
	if serial != "" {
		cfg.ADB.Serial = serial
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	opts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	if toFile && opts.File == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return nil, err
		}
		if opts.File, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	if err := logging.InitializeWithOptions(opts); err != nil {
		return nil, err
	}

	client := adb.NewClient(
		adb.Config{Path: cfg.ADB.Path, Serial: cfg.ADB.Serial, Timeout: cfg.ADBTimeout()},
		logging.Named("adb"),
		adb.WithNicknames(cfg.Nickname),
		adb.WithFallback(usb.NewProber()),
	)

	return &session{
		cfg:    cfg,
		client: client,
		loader: catalog.NewLoader(cfg.Catalog.Path),
	}, nil
}

// deps wires the controller's collaborators.
func (s *session) deps() app.Deps {
	return app.Deps{
		Device:  s.client,
		Catalog: s.loader,
		List: list.Deps{
			Lister:    s.client,
			Clipboard: list.SystemClipboard{},
			Notifier:  list.DesktopNotifier{},
		},
	}
}

func (s *session) saveConfig() error {
	if configPath != "" {
		return s.cfg.SaveFile(configPath)
	}
	return s.cfg.Save()
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI (default)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := setup(true)
	if err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting terminal UI", zap.String("catalog", s.loader.Source()))
	return tui.Run(cmd.Context(), s.deps())
}

// deviceCmd prints the connected device
var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show the connected device",
	Long: `Show the device label the UI would display, plus every device adb sees.

Use --name to store a nickname for the selected device; the nickname then
replaces the brand and model in the UI.`,
	Example: `  # Show the connected device
  debloater device

  # Name the phone attached over USB
  debloater device --name "Work phone"`,
	RunE: runDevice,
}

func init() {
	deviceCmd.Flags().StringVar(&deviceName, "name", "", "Store a nickname for the selected device")
}

func runDevice(cmd *cobra.Command, args []string) error {
	s, err := setup(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	p := ui.NewPrinter(cmd.OutOrStdout())
	ctx := cmd.Context()

	devices, err := s.client.ListDevices(ctx)
	if err != nil {
		p.PrintError("Could not run adb", err, adbTroubleshooting)
		return err
	}

	label, err := s.client.DeviceLabel(ctx)
	if err != nil {
		label = app.NoDeviceLabel
	}

	p.PrintHeader("Connected device", "debloater device",
		ui.Field{Key: "Device", Value: label},
		ui.Field{Key: "adb", Value: s.cfg.ADB.Path},
	)

	if len(devices) == 0 {
		p.PrintWarning("No devices found")
		return nil
	}

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{d.Serial, d.State, d.Model, s.cfg.Nickname(d.Serial)})
	}
	p.PrintTable([]string{"SERIAL", "STATE", "MODEL", "NICKNAME"}, rows)

	if deviceName == "" {
		return nil
	}

	target := s.cfg.ADB.Serial
	if target == "" {
		for _, d := range devices {
			if d.Ready() {
				target = d.Serial
				break
			}
		}
	}
	if target == "" {
		return adb.ErrNoDevice
	}

	s.cfg.SetNickname(target, deviceName)
	if err := s.saveConfig(); err != nil {
		return fmt.Errorf("failed to save nickname: %w", err)
	}
	p.PrintSuccess("Nickname saved",
		ui.Field{Key: "Serial", Value: target},
		ui.Field{Key: "Nickname", Value: deviceName},
	)
	return nil
}

// packagesCmd prints catalog rows for the device
var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List installed packages with their removal tier",
	Long: `List the packages installed on the device, joined with the catalog.

The --query flag takes the same syntax as the search field in the UI:
free words match package ids and descriptions, "tier:<name>" and
"list:<name>" filter, and "installed" keeps installed packages only.`,
	Example: `  # Everything installed
  debloater packages

  # Recommended Google packages
  debloater packages --query "tier:recommended list:google"

  # The whole catalog, without a device
  debloater packages --all`,
	RunE: runPackages,
}

func init() {
	packagesCmd.Flags().StringVarP(&packagesQuery, "query", "q", "", "Filter query")
	packagesCmd.Flags().BoolVar(&packagesAll, "all", false, "List the whole catalog instead of installed packages")
}

func runPackages(cmd *cobra.Command, args []string) error {
	s, err := setup(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	query, err := list.ParseQuery(packagesQuery)
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	ctx := cmd.Context()
	p := ui.NewPrinter(cmd.OutOrStdout())

	c, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		p.PrintError("Could not load the catalog", err, nil)
		return err
	}

	label := app.NoDeviceLabel
	var installed []string
	if !packagesAll {
		installed, err = s.client.InstalledPackages(ctx)
		if err != nil {
			p.PrintError("Could not read installed packages", err, adbTroubleshooting)
			return err
		}
		if l, err := s.client.DeviceLabel(ctx); err == nil {
			label = l
		}
	}

	var rows [][]string
	for _, r := range list.BuildRows(c, installed) {
		if !query.Match(r) {
			continue
		}
		rows = append(rows, []string{r.Package.ID, r.Package.Removal.String(), r.Package.List, r.Package.Description})
	}

	p.PrintHeader("Packages", "debloater packages",
		ui.Field{Key: "Device", Value: label},
		ui.Field{Key: "Catalog", Value: s.loader.Source()},
		ui.Field{Key: "Matches", Value: strconv.Itoa(len(rows))},
	)
	if len(rows) == 0 {
		p.PrintWarning("No packages match")
		return nil
	}
	p.PrintTable([]string{"PACKAGE", "TIER", "LIST", "DESCRIPTION"}, rows)
	return nil
}

// scanCmd discovers wireless debugging endpoints
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for phones with wireless debugging enabled",
	Long: `Scan the local network for phones advertising wireless debugging
(Android 11 and later) over mDNS.

With --connect, each phone found is attached with "adb connect". The phone
must already be paired with this computer.`,
	Example: `  # Scan for 5 seconds (default)
  debloater scan

  # Scan and attach everything found
  debloater scan --connect --timeout 10`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
	scanCmd.Flags().BoolVar(&scanConnect, "connect", false, "Run 'adb connect' for each device found")
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := setup(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Println(fmt.Sprintf("Scanning for wireless debugging devices (timeout: %ds)...", scanTimeout))

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second
	devices, err := scanner.ScanForDevices(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		p.PrintError("No devices found", nil, []string{
			"Enable Wireless debugging in Developer options",
			"Pair the phone once with 'adb pair'",
			"Ensure the phone and this computer share a network",
			"Try increasing --timeout for slower networks",
		})
		return nil
	}

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{d.Serial, d.Address(), d.Hostname})
	}
	p.PrintTable([]string{"SERIAL", "ADDRESS", "HOST"}, rows)

	if !scanConnect {
		p.Newline()
		p.Println("Use 'debloater scan --connect' to attach these devices")
		return nil
	}

	var errs []error
	for _, d := range devices {
		if err := s.client.Connect(cmd.Context(), d.Address()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Address(), err))
			continue
		}
		p.PrintSuccess("Connected", ui.Field{Key: "Device", Value: d.Serial}, ui.Field{Key: "Address", Value: d.Address()})
	}
	return errors.Join(errs...)
}

// serveCmd hosts the controller for WebSocket clients
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the UI to WebSocket clients",
	Long: `Run the controller headless and stream its display tree to WebSocket
clients on /ws. Every client sees the same state.`,
	Example: `  # Listen on :7777
  debloater serve

  # Announce over mDNS as _debloater._tcp
  debloater serve --advertise --name workbench`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "Listen address")
	serveCmd.Flags().BoolVar(&serveAdvert, "advertise", false, "Announce the server over mDNS")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: hostname)")
	serveCmd.Flags().StringVar(&serveCert, "cert", "", "TLS certificate file")
	serveCmd.Flags().StringVar(&serveKey, "key", "", "TLS private key file")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := setup(false)
	if err != nil {
		return err
	}
	defer logging.Sync()

	ctx := cmd.Context()
	loop := runtime.NewLoop(s.deps())

	srv, err := server.New(&server.Config{
		Addr:      serveAddr,
		CertPath:  serveCert,
		KeyPath:   serveKey,
		Advertise: serveAdvert,
		Name:      serveName,
	}, loop)
	if err != nil {
		return err
	}

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop.Run(ctx)
	}()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	if err := <-loopErr; err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}
	return nil
}

// configCmd manages the config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		p := ui.NewPrinter(cmd.OutOrStdout())

		force := configForce
		if _, err := os.Stat(path); err == nil && !force {
			force = p.Confirm(cmd.InOrStdin(), "Config exists",
				[]string{path + " already exists", "Its contents will be replaced by the default template"},
				"Overwrite?")
			if !force {
				return nil
			}
		}

		if err := config.CreateDefaultConfig(path, force); err != nil {
			return err
		}
		p.PrintSuccess("Config written", ui.Field{Key: "Path", Value: path})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvedConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file without asking")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func resolvedConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
