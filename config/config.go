package config

import (
	"slices"

	"github.com/Gthulhu/scx-loader/domain"
)

// Config represents the loader configuration document
type Config struct {
	DefaultSched *domain.SupportedSched `toml:"default_sched,omitempty"`
	DefaultMode  *domain.SchedMode      `toml:"default_mode,omitempty"`
	Scheds       map[string]SchedFlags  `toml:"scheds,omitempty"`
}

// SchedFlags holds the per-mode flags of one scheduler. A nil field means the
// mode is not configured and the built-in default applies; a non-nil empty
// list means the scheduler is started without flags.
type SchedFlags struct {
	AutoMode       *[]string `toml:"auto_mode,omitempty"`
	GamingMode     *[]string `toml:"gaming_mode,omitempty"`
	LowLatencyMode *[]string `toml:"lowlatency_mode,omitempty"`
	PowerSaveMode  *[]string `toml:"powersave_mode,omitempty"`
}

// Flags wraps tokens into a configured (present) flag list.
func Flags(tokens ...string) *[]string {
	list := make([]string, 0, len(tokens))
	list = append(list, tokens...)
	return &list
}

// ForMode selects the field for the given mode.
func (s SchedFlags) ForMode(mode domain.SchedMode) *[]string {
	switch mode {
	case domain.Auto:
		return s.AutoMode
	case domain.Gaming:
		return s.GamingMode
	case domain.LowLatency:
		return s.LowLatencyMode
	case domain.PowerSave:
		return s.PowerSaveMode
	}
	return nil
}

// Equal reports whether both records configure the same modes with the same
// tokens. Presence matters, the nil-ness of a present list does not.
func (s SchedFlags) Equal(other SchedFlags) bool {
	for _, mode := range domain.AllModes() {
		if !equalFlags(s.ForMode(mode), other.ForMode(mode)) {
			return false
		}
	}
	return true
}

func equalFlags(a, b *[]string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return slices.Equal(*a, *b)
}

// Equal compares two configurations field by field.
func (c Config) Equal(other Config) bool {
	if !equalPtr(c.DefaultSched, other.DefaultSched) || !equalPtr(c.DefaultMode, other.DefaultMode) {
		return false
	}
	if len(c.Scheds) != len(other.Scheds) {
		return false
	}
	for name, flags := range c.Scheds {
		otherFlags, ok := other.Scheds[name]
		if !ok || !flags.Equal(otherFlags) {
			return false
		}
	}
	return true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// UnknownScheds returns the sorted [scheds] keys that do not name a known
// scheduler. Such entries are kept but never consulted.
func (c Config) UnknownScheds() []string {
	var unknown []string
	for name := range c.Scheds {
		if _, err := domain.ParseSupportedSched(name); err != nil {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// DefaultConfig builds the configuration used when no config file exists.
// Every known scheduler has all modes spelled out from the built-in table.
func DefaultConfig() Config {
	mode := domain.Auto
	scheds := make(map[string]SchedFlags, len(domain.AllSchedulers()))
	for _, sched := range domain.AllSchedulers() {
		scheds[sched.String()] = defaultSchedFlags(sched)
	}
	return Config{
		DefaultMode: &mode,
		Scheds:      scheds,
	}
}

func defaultSchedFlags(sched domain.SupportedSched) SchedFlags {
	return SchedFlags{
		AutoMode:       Flags(domain.DefaultFlags(sched, domain.Auto)...),
		GamingMode:     Flags(domain.DefaultFlags(sched, domain.Gaming)...),
		LowLatencyMode: Flags(domain.DefaultFlags(sched, domain.LowLatency)...),
		PowerSaveMode:  Flags(domain.DefaultFlags(sched, domain.PowerSave)...),
	}
}

// FlagsForMode resolves the flags to launch sched with in the given mode.
// A mode configured in the document wins, even when its list is empty;
// otherwise the built-in default is used.
func FlagsForMode(cfg Config, sched domain.SupportedSched, mode domain.SchedMode) []string {
	flags, _ := lookupFlags(cfg, sched, mode)
	return flags
}

// FlagsFromConfig is FlagsForMode that also reports whether the answer came
// from the document.
func FlagsFromConfig(cfg Config, sched domain.SupportedSched, mode domain.SchedMode) ([]string, bool) {
	return lookupFlags(cfg, sched, mode)
}

func lookupFlags(cfg Config, sched domain.SupportedSched, mode domain.SchedMode) ([]string, bool) {
	if schedCfg, ok := cfg.Scheds[sched.String()]; ok {
		if flags := schedCfg.ForMode(mode); flags != nil {
			return append([]string{}, *flags...), true
		}
	}
	return domain.DefaultFlags(sched, mode), false
}
