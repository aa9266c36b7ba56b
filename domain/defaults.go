package domain

// DefaultFlags returns the built-in flags for a scheduler in the given mode.
// It is total over AllSchedulers() x AllModes() and always returns a fresh,
// non-nil slice.
func DefaultFlags(sched SupportedSched, mode SchedMode) []string {
	switch sched {
	case Bpfland:
		switch mode {
		case Gaming:
			return []string{"-k", "-m", "performance"}
		case LowLatency:
			return []string{"--lowlatency"}
		case PowerSave:
			return []string{"-m", "powersave"}
		}
	case Lavd:
		switch mode {
		case Gaming, LowLatency:
			return []string{"--performance"}
		case PowerSave:
			return []string{"--powersave"}
		}
		// Auto has no built-in flags yet; lavd may grow an --auto policy.
	case Rusty:
		// scx_rusty has no mode specific tuning.
	}
	return []string{}
}
