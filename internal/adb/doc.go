// Package adb talks to Android devices through the adb command-line tool.
//
// The package shells out to adb rather than speaking the adb server
// protocol, so whatever adb the user has installed (and authorised) is used.
//
// # Operations
//
//   - ListDevices: parse `adb devices -l`
//   - DeviceLabel: brand and model via getprop, for the navigation bar
//   - InstalledPackages: `pm list packages`
//   - Connect: `adb connect host:port` for wireless debugging endpoints
//
// Every invocation runs under a timeout from Config so a hung device only
// stalls the caller's command, never the UI.
//
// # Error Handling
//
// Failures are reported with typed errors:
//
//   - PrerequisiteError: adb binary not found
//   - ExecutionError: adb exited non-zero
//   - TimeoutError: adb did not finish in time
//   - ErrNoDevice: no authorised device is attached
package adb
