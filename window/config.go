package window

import (
	"time"

	json "github.com/goccy/go-json"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/i18n"
	"github.com/OrbitalStation/rokoko/vec"
)

// Config is the JSON shape of a window configuration. Pointer and zero
// values distinguish absent fields from set ones; absent fields leave the
// builder untouched, so cross-field checks still happen at Create.
type Config struct {
	Title         *string     `json:"title,omitempty"`
	Size          *[2]float64 `json:"size,omitempty"`
	Maximized     bool        `json:"maximized,omitempty"`
	SizeIsLogical bool        `json:"size_is_logical,omitempty"`
	TickEveryMS   int64       `json:"tick_every_ms,omitempty"`
}

// FromJSON decodes a JSON window configuration and returns a Builder with
// the configured fields set. Callbacks are code, not data; chain them on the
// returned Builder.
func FromJSON(raw []byte) (Builder, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Builder{}, rokoko.Issues{{
			Code:    rokoko.CodeParseError,
			Message: i18n.T(rokoko.CodeParseError, nil),
			Cause:   err,
		}}
	}
	return cfg.Apply(New()), nil
}

// Apply chains the set fields of the config onto b.
func (c Config) Apply(b Builder) Builder {
	if c.Title != nil {
		b = b.Title(*c.Title)
	}
	if c.Size != nil {
		b = b.Size(vec.DVec2(c.Size[0], c.Size[1]))
	}
	if c.Maximized {
		b = b.Maximized()
	}
	if c.SizeIsLogical {
		b = b.SizeIsLogical()
	}
	if c.TickEveryMS > 0 {
		b = b.TickEvery(time.Duration(c.TickEveryMS) * time.Millisecond)
	}
	return b
}
