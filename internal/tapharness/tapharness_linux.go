//go:build linux

package tapharness

import (
	"fmt"

	"github.com/songgao/water"
	"golang.org/x/sys/unix"
)

// linuxTAP wraps a water.Interface as a tapDevice.
type linuxTAP struct {
	iface *water.Interface
}

// openDevice opens a Linux TAP device named cfg.DeviceName (or a
// kernel-assigned name if empty) and applies a conservative receive
// buffer size via a raw socket option, grounded on the teacher's
// rawsock_linux.go use of unix.SetsockoptInt for socket tuning applied
// here to the TAP device's underlying file descriptor.
func openDevice(cfg Config) (tapDevice, error) {
	waterCfg := water.Config{DeviceType: water.TAP}
	waterCfg.Name = cfg.DeviceName

	iface, err := water.New(waterCfg)
	if err != nil {
		return nil, fmt.Errorf("open tap device %q: %w", cfg.DeviceName, err)
	}

	if err := tuneReceiveBuffer(iface); err != nil {
		iface.Close()
		return nil, fmt.Errorf("tune tap device %q: %w", cfg.DeviceName, err)
	}

	return &linuxTAP{iface: iface}, nil
}

// tuneReceiveBuffer raises SO_RCVBUF on the TAP file descriptor so a
// burst of ARP/DHCP traffic doesn't overrun the kernel's default
// buffer before serveLoop drains it.
func tuneReceiveBuffer(iface *water.Interface) error {
	fder, ok := any(iface).(interface{ Fd() uintptr })
	if !ok {
		return nil
	}
	fd := int(fder.Fd())
	const wantRcvBuf = 1 << 20
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_RCVBUF, wantRcvBuf)
}

func (t *linuxTAP) ReadFrame(buf []byte) (int, error) { return t.iface.Read(buf) }
func (t *linuxTAP) WriteFrame(buf []byte) error {
	_, err := t.iface.Write(buf)
	return err
}
func (t *linuxTAP) Close() error { return t.iface.Close() }
