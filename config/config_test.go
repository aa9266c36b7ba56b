package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gthulhu/scx-loader/domain"
)

const spelledOutDefaults = `
default_mode = "Auto"

[scheds.scx_bpfland]
auto_mode = []
gaming_mode = ["-k", "-m", "performance"]
lowlatency_mode = ["--lowlatency"]
powersave_mode = ["-m", "powersave"]

[scheds.scx_rusty]
auto_mode = []
gaming_mode = []
lowlatency_mode = []
powersave_mode = []

[scheds.scx_lavd]
auto_mode = []
gaming_mode = ["--performance"]
lowlatency_mode = ["--performance"]
powersave_mode = ["--powersave"]
`

func mustParse(t *testing.T, content string) Config {
	t.Helper()
	cfg, err := ParseConfigContent([]byte(content))
	require.NoError(t, err, "failed to parse config")
	return cfg
}

func TestDefaultConfigMatchesSpelledOutDocument(t *testing.T) {
	parsed := mustParse(t, spelledOutDefaults)
	assert.True(t, DefaultConfig().Equal(parsed), "parsed: %+v", parsed)
}

func TestDefaultConfigResolvesToDefaultTable(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.DefaultSched)
	require.NotNil(t, cfg.DefaultMode)
	assert.Equal(t, domain.Auto, *cfg.DefaultMode)

	for _, sched := range domain.AllSchedulers() {
		entry, ok := cfg.Scheds[sched.String()]
		require.True(t, ok, "missing %s", sched)
		for _, mode := range domain.AllModes() {
			require.NotNil(t, entry.ForMode(mode), "%s/%s must be populated", sched, mode)
			assert.Equal(t, domain.DefaultFlags(sched, mode), FlagsForMode(cfg, sched, mode), "%s/%s", sched, mode)
		}
	}
}

func TestFallbackWithoutSchedEntry(t *testing.T) {
	cfg := mustParse(t, `default_mode = "Auto"`)

	for _, sched := range domain.AllSchedulers() {
		for _, mode := range domain.AllModes() {
			flags, fromConfig := FlagsFromConfig(cfg, sched, mode)
			assert.False(t, fromConfig)
			assert.Equal(t, domain.DefaultFlags(sched, mode), flags, "%s/%s", sched, mode)
		}
	}
	assert.Equal(t, []string{"-k", "-m", "performance"}, FlagsForMode(cfg, domain.Bpfland, domain.Gaming))
}

func TestFallbackPerModeField(t *testing.T) {
	cfg := mustParse(t, `
default_mode = "Auto"

[scheds.scx_lavd]
auto_mode = ["--help"]
`)

	assert.Equal(t, []string{"--help"}, FlagsForMode(cfg, domain.Lavd, domain.Auto))
	assert.Equal(t, domain.DefaultFlags(domain.Lavd, domain.Gaming), FlagsForMode(cfg, domain.Lavd, domain.Gaming))
	assert.Equal(t, domain.DefaultFlags(domain.Lavd, domain.PowerSave), FlagsForMode(cfg, domain.Lavd, domain.PowerSave))
	assert.Equal(t, domain.DefaultFlags(domain.Lavd, domain.LowLatency), FlagsForMode(cfg, domain.Lavd, domain.LowLatency))
}

func TestExplicitEmptyListIsNotAbsent(t *testing.T) {
	cfg := mustParse(t, `
[scheds.scx_bpfland]
gaming_mode = []
`)

	entry := cfg.Scheds["scx_bpfland"]
	require.NotNil(t, entry.GamingMode)
	assert.Nil(t, entry.PowerSaveMode)

	flags, fromConfig := FlagsFromConfig(cfg, domain.Bpfland, domain.Gaming)
	assert.True(t, fromConfig)
	assert.Empty(t, flags)
	assert.Equal(t, []string{"-m", "powersave"}, FlagsForMode(cfg, domain.Bpfland, domain.PowerSave))
}

func TestTokensKeepOrderAndDuplicates(t *testing.T) {
	cfg := mustParse(t, `
[scheds.scx_rusty]
powersave_mode = ["--slice-us", "20000", "--slice-us", "20000", "a b"]
`)
	assert.Equal(t,
		[]string{"--slice-us", "20000", "--slice-us", "20000", "a b"},
		FlagsForMode(cfg, domain.Rusty, domain.PowerSave))
}

func TestResolvedFlagsDoNotAliasConfig(t *testing.T) {
	cfg := mustParse(t, `
[scheds.scx_lavd]
gaming_mode = ["--performance", "--no-core-compaction"]
`)
	flags := FlagsForMode(cfg, domain.Lavd, domain.Gaming)
	flags[0] = "--mutated"
	assert.Equal(t, []string{"--performance", "--no-core-compaction"}, FlagsForMode(cfg, domain.Lavd, domain.Gaming))
}

func TestSchedWithoutModeSupport(t *testing.T) {
	cfg := mustParse(t, `default_sched = "scx_rusty"`)
	require.NotNil(t, cfg.DefaultSched)
	assert.Equal(t, domain.Rusty, *cfg.DefaultSched)
	assert.Nil(t, cfg.DefaultMode)

	for _, mode := range domain.AllModes() {
		assert.Empty(t, FlagsForMode(cfg, domain.Rusty, mode), "%s", mode)
	}
}

func TestEmptyConfig(t *testing.T) {
	_, err := ParseConfigContent([]byte(""))
	require.ErrorIs(t, err, domain.ErrEmptyConfig)

	_, err = ParseConfigContent(nil)
	require.ErrorIs(t, err, domain.ErrEmptyConfig)
}

func TestWhitespaceOnlyConfigIsValid(t *testing.T) {
	cfg := mustParse(t, "\n# nothing configured\n")
	assert.True(t, Config{}.Equal(cfg))
	assert.Equal(t, []string{"--powersave"}, FlagsForMode(cfg, domain.Lavd, domain.PowerSave))
}

func TestUnknownSchedulersAreInert(t *testing.T) {
	cfg := mustParse(t, `
[scheds.scx_unknown]
gaming_mode = ["--turbo"]

[scheds.scx_lavd]
gaming_mode = ["--performance", "--slice-max-us", "5000"]
`)

	require.Contains(t, cfg.Scheds, "scx_unknown")
	assert.Equal(t, []string{"scx_unknown"}, cfg.UnknownScheds())
	assert.Equal(t, []string{"--performance", "--slice-max-us", "5000"}, FlagsForMode(cfg, domain.Lavd, domain.Gaming))
	for _, sched := range []domain.SupportedSched{domain.Bpfland, domain.Rusty} {
		assert.Equal(t, domain.DefaultFlags(sched, domain.Gaming), FlagsForMode(cfg, sched, domain.Gaming))
	}
	assert.Empty(t, DefaultConfig().UnknownScheds())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":          "[scheds.scx_lavd\ngaming_mode = []",
		"type mismatch":   "[scheds.scx_lavd]\ngaming_mode = \"--performance\"",
		"token type":      "[scheds.scx_lavd]\ngaming_mode = [1, 2]",
		"unknown mode":    `default_mode = "Turbo"`,
		"unknown default": `default_sched = "scx_unknown"`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfigContent([]byte(content))
			require.Error(t, err)
			assert.NotErrorIs(t, err, domain.ErrEmptyConfig)
		})
	}
}

func TestUnknownTopLevelKeysIgnored(t *testing.T) {
	cfg := mustParse(t, `
default_mode = "Gaming"
experimental = true
`)
	require.NotNil(t, cfg.DefaultMode)
	assert.Equal(t, domain.Gaming, *cfg.DefaultMode)
}

func TestMarshalRoundTrip(t *testing.T) {
	original := DefaultConfig()
	content, err := Marshal(original)
	require.NoError(t, err)

	parsed := mustParse(t, string(content))
	assert.True(t, original.Equal(parsed), "round trip changed config:\n%s", content)
}

func TestMarshalKeepsPresence(t *testing.T) {
	sched := domain.Lavd
	original := Config{
		DefaultSched: &sched,
		Scheds: map[string]SchedFlags{
			"scx_lavd": {
				AutoMode:   Flags(),
				GamingMode: Flags("--performance", "--per-cpu-dsq"),
			},
		},
	}
	content, err := Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(content), "default_sched")
	assert.Contains(t, string(content), "auto_mode")
	assert.NotContains(t, string(content), "default_mode")
	assert.NotContains(t, string(content), "powersave_mode")

	parsed := mustParse(t, string(content))
	assert.True(t, original.Equal(parsed), "round trip changed config:\n%s", content)
	assert.Empty(t, FlagsForMode(parsed, domain.Lavd, domain.Auto))
	assert.Equal(t, []string{"--powersave"}, FlagsForMode(parsed, domain.Lavd, domain.PowerSave))
}

func TestConfigEqual(t *testing.T) {
	gaming := domain.Gaming
	auto := domain.Auto

	a := Config{DefaultMode: &gaming, Scheds: map[string]SchedFlags{"scx_lavd": {GamingMode: Flags()}}}
	b := Config{DefaultMode: &gaming, Scheds: map[string]SchedFlags{"scx_lavd": {GamingMode: &[]string{}}}}
	assert.True(t, a.Equal(b))

	var nilList []string
	c := Config{DefaultMode: &gaming, Scheds: map[string]SchedFlags{"scx_lavd": {GamingMode: &nilList}}}
	assert.True(t, a.Equal(c), "nil and empty lists are both explicit empty lists")

	d := Config{DefaultMode: &gaming, Scheds: map[string]SchedFlags{"scx_lavd": {}}}
	assert.False(t, a.Equal(d), "absent differs from empty")

	e := Config{DefaultMode: &auto, Scheds: a.Scheds}
	assert.False(t, a.Equal(e))

	f := Config{DefaultMode: &gaming, Scheds: map[string]SchedFlags{"scx_rusty": {GamingMode: Flags()}}}
	assert.False(t, a.Equal(f))
}
