// Package osc asks the controlling terminal for its background color with an
// OSC 11 query and reads the reply under a deadline.
package osc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/theme"
)

const (
	// DefaultTimeout bounds the wait for the terminal's reply.
	DefaultTimeout = 1080 * time.Millisecond
	// DefaultPath is the controlling terminal, independent of stdio redirection.
	DefaultPath = "/dev/tty"

	maxReply = 100
	bel      = 0x07
)

var (
	// backgroundQuery is OSC 11 with "?" terminated by ST.
	backgroundQuery  = []byte("\x1b]11;?\x1b\\")
	stringTerminator = []byte("\x1b\\")
)

var (
	ErrNoTerminal = errors.New("no controlling terminal")
	ErrTimeout    = errors.New("terminal did not answer in time")
	ErrOverflow   = errors.New("terminal reply exceeds 100 bytes without terminator")
	ErrMalformed  = errors.New("malformed terminal reply")
	ErrRestore    = errors.New("restore terminal settings")
)

// Terminal is the device side of the exchange.
type Terminal interface {
	// EnterCbreak turns off line buffering and echo, leaving signal keys
	// alone, and returns a function that reinstates the saved settings.
	EnterCbreak() (restore func() error, err error)
	Write(p []byte) (int, error)
	// Drain blocks until everything written has been transmitted.
	Drain() error
	// ReadByteTimeout waits at most timeout for a single byte and returns
	// ErrTimeout if none arrives.
	ReadByteTimeout(timeout time.Duration) (byte, error)
	Close() error
}

// Only one goroutine at a time may hold a terminal in cbreak mode.
var cbreakMu sync.Mutex

// Query performs the OSC 11 round trip on t. The settings captured when cbreak
// mode is entered are restored on every return path; if that fails the error
// wraps ErrRestore.
func Query(t Terminal, timeout time.Duration) (bg colorutil.RGB, err error) {
	cbreakMu.Lock()
	defer cbreakMu.Unlock()

	restore, err := t.EnterCbreak()
	if err != nil {
		return bg, fmt.Errorf("enter cbreak mode: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %v", ErrRestore, rerr))
		}
	}()

	if _, err := t.Write(backgroundQuery); err != nil {
		return bg, fmt.Errorf("write query: %w", err)
	}
	if err := t.Drain(); err != nil {
		return bg, fmt.Errorf("drain query: %w", err)
	}

	reply, err := readReply(t, timeout)
	if err != nil {
		return bg, err
	}
	c, ok := colorutil.ParseDynamicColor(string(reply))
	if !ok {
		return bg, fmt.Errorf("%w: %q", ErrMalformed, reply)
	}
	return c, nil
}

func readReply(t Terminal, timeout time.Duration) ([]byte, error) {
	deadline := time.Now().Add(timeout)
	reply := make([]byte, 0, 32)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, ErrTimeout
		}
		b, err := t.ReadByteTimeout(remaining)
		if err != nil {
			if errors.Is(err, ErrTimeout) {
				return nil, ErrTimeout
			}
			return nil, fmt.Errorf("read reply: %w", err)
		}
		reply = append(reply, b)
		if b == bel || bytes.HasSuffix(reply, stringTerminator) {
			return reply, nil
		}
		if len(reply) > maxReply {
			return nil, ErrOverflow
		}
	}
}

// Probe is the theme.Probe for the OSC 11 query.
type Probe struct {
	Path    string
	Timeout time.Duration
	// Open defaults to opening Path as a terminal device.
	Open func(path string) (Terminal, error)
}

// NewProbe returns a Probe on /dev/tty with the given reply timeout.
func NewProbe(timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{Path: DefaultPath, Timeout: timeout, Open: Open}
}

func (*Probe) Source() theme.Source { return theme.SourceOSC }

func (p *Probe) Probe(ctx context.Context) theme.Answer {
	log := logging.FromContext(ctx)

	open := p.Open
	if open == nil {
		open = Open
	}
	path := p.Path
	if path == "" {
		path = DefaultPath
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	t, err := open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("osc: terminal unavailable")
		return theme.NotAvailable()
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("osc: close terminal")
		}
	}()

	bg, err := Query(t, timeout)
	if err != nil {
		if errors.Is(err, ErrRestore) {
			log.Error().Err(err).Str("path", path).Msg("osc: terminal settings may not have been restored")
		} else {
			log.Debug().Err(err).Msg("osc: no usable reply")
		}
		return theme.NotAvailable()
	}
	return theme.Found(bg)
}
