package session

// Session is the build-wide capability and stability state for one
// compilation. It is constructed once by the driver (usually from lyra.yaml)
// and then only read, so concurrent module-level passes may share one value.
type Session struct {
	features map[Feature]bool

	// StagedAPI activates the staged public-stability protocol: declarations
	// claiming a stable const surface may not use experimental capabilities
	// without an explicit allow-list entry.
	StagedAPI bool

	// AllowExperimental reports whether this build may accept experimental
	// opt-ins at all. On builds that forbid them, diagnostics suppress
	// secondary "enable feature X" hints since the suggestion would be
	// unusable.
	AllowExperimental bool

	// UncheckedConstEval is a debug-only escape that skips const checking
	// for constructs requiring no capability. It never applies to gated
	// constructs.
	UncheckedConstEval bool
}

// New creates a Session with the given features enabled.
func New(features ...Feature) *Session {
	s := &Session{features: make(map[Feature]bool, len(features))}
	for _, f := range features {
		s.features[f] = true
	}
	return s
}

// FromConfig builds a Session from a parsed lyra.yaml configuration.
func FromConfig(cfg *Config) *Session {
	s := New()
	for _, name := range cfg.Features {
		s.features[Feature(name)] = true
	}
	s.StagedAPI = cfg.StagedAPI
	s.AllowExperimental = cfg.AllowExperimental
	s.UncheckedConstEval = cfg.UncheckedConstEval
	return s
}

// Enabled reports whether the named experimental capability is globally
// enabled for this compilation.
func (s *Session) Enabled(f Feature) bool {
	return s.features[f]
}
