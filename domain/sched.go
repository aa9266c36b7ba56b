package domain

import "fmt"

// SupportedSched identifies a sched_ext scheduler the loader knows how to start.
type SupportedSched int

const (
	Bpfland SupportedSched = iota
	Rusty
	Lavd
)

// AllSchedulers returns every known scheduler in a stable order.
func AllSchedulers() []SupportedSched {
	return []SupportedSched{Bpfland, Rusty, Lavd}
}

// String returns the canonical scheduler name, which is also the key used
// under [scheds] in the config document.
func (s SupportedSched) String() string {
	switch s {
	case Bpfland:
		return "scx_bpfland"
	case Rusty:
		return "scx_rusty"
	case Lavd:
		return "scx_lavd"
	}
	return fmt.Sprintf("SupportedSched(%d)", int(s))
}

// ParseSupportedSched maps a canonical scheduler name back to its identity.
func ParseSupportedSched(name string) (SupportedSched, error) {
	for _, sched := range AllSchedulers() {
		if sched.String() == name {
			return sched, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheduler, name)
}

func (s SupportedSched) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheduler, int(s))
	}
	return []byte(s.String()), nil
}

func (s *SupportedSched) UnmarshalText(text []byte) error {
	sched, err := ParseSupportedSched(string(text))
	if err != nil {
		return err
	}
	*s = sched
	return nil
}

func (s SupportedSched) valid() bool {
	return s >= Bpfland && s <= Lavd
}

// SchedMode is the tuning profile a scheduler is started with.
// The numeric values match the ones the loader daemon exchanges with clients.
type SchedMode int

const (
	Auto SchedMode = iota
	Gaming
	PowerSave
	LowLatency
)

// AllModes returns every mode in a stable order.
func AllModes() []SchedMode {
	return []SchedMode{Auto, Gaming, PowerSave, LowLatency}
}

func (m SchedMode) String() string {
	switch m {
	case Auto:
		return "Auto"
	case Gaming:
		return "Gaming"
	case PowerSave:
		return "PowerSave"
	case LowLatency:
		return "LowLatency"
	}
	return fmt.Sprintf("SchedMode(%d)", int(m))
}

// ParseSchedMode accepts the names used in the config document
// ("Auto", "Gaming", "LowLatency", "PowerSave").
func ParseSchedMode(name string) (SchedMode, error) {
	for _, mode := range AllModes() {
		if mode.String() == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (m SchedMode) MarshalText() ([]byte, error) {
	if m < Auto || m > LowLatency {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *SchedMode) UnmarshalText(text []byte) error {
	mode, err := ParseSchedMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
