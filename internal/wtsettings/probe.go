package wtsettings

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/theme"
)

// Probe answers from the settings of the profile named by WT_PROFILE_ID.
type Probe struct {
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)
}

// NewProbe reads the process environment and the real filesystem.
func NewProbe() *Probe {
	return &Probe{Getenv: os.Getenv, ReadFile: os.ReadFile}
}

func (*Probe) Source() theme.Source { return theme.SourceWindowsTerminal }

func (p *Probe) Probe(ctx context.Context) theme.Answer {
	log := logging.FromContext(ctx)

	id := p.Getenv("WT_PROFILE_ID")
	if id == "" {
		return theme.NotAvailable()
	}
	for _, path := range CandidatePaths(p.Getenv("LOCALAPPDATA")) {
		data, err := p.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Debug().Err(err).Str("path", path).Msg("wtsettings: read failed")
			}
			continue
		}
		bg, ok, err := Background(data, id)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("wtsettings: unusable settings")
			continue
		}
		if ok {
			return theme.Found(bg)
		}
	}
	return theme.NotAvailable()
}
