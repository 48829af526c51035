//go:build linux || darwin

package osc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

type device struct {
	f  *os.File
	fd int
}

// Open opens path read-write without making it the controlling terminal and
// checks that it is a terminal.
func Open(path string) (Terminal, error) {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	fd := int(f.Fd())
	if _, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrNoTerminal, path, err)
	}
	return &device{f: f, fd: fd}, nil
}

func (d *device) EnterCbreak() (func() error, error) {
	saved, err := unix.IoctlGetTermios(d.fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	restore := func() error {
		return unix.IoctlSetTermios(d.fd, ioctlSetTermiosDrain, saved)
	}

	cbreak := *saved
	cbreak.Lflag &^= unix.ICANON | unix.ECHO
	cbreak.Cc[unix.VMIN] = 1
	cbreak.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(d.fd, ioctlSetTermios, &cbreak); err != nil {
		_ = restore()
		return nil, err
	}
	return restore, nil
}

func (d *device) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(d.fd, p[written:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

func (d *device) Drain() error {
	for {
		err := drain(d.fd)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func (d *device) ReadByteTimeout(timeout time.Duration) (byte, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, ErrTimeout
		}
		ms := int(remaining / time.Millisecond)
		if ms == 0 {
			ms = 1
		}
		fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ErrTimeout
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			return 0, fmt.Errorf("terminal not readable (revents %#x)", fds[0].Revents)
		}

		var buf [1]byte
		n, err = unix.Read(d.fd, buf[:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return buf[0], nil
	}
}

func (d *device) Close() error {
	return d.f.Close()
}
