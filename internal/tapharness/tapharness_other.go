//go:build !linux

package tapharness

import "fmt"

// openDevice reports that TAP serve mode is unsupported on this
// platform: water.TAP device creation and the raw socket tuning in
// tapharness_linux.go are both Linux-specific. frametool still builds
// everywhere; only `frametool serve` fails at runtime.
func openDevice(cfg Config) (tapDevice, error) {
	return nil, fmt.Errorf("tapharness: TAP serve mode is only supported on linux, device %q", cfg.DeviceName)
}
