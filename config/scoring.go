package config

// Scoring holds the engine knobs. Action base points and per-action caps are
// part of the catalog in models; these are the levers ops actually tune.
type Scoring struct {
	GlobalWeeklyCap  int    `json:"global_weekly_cap" yaml:"global_weekly_cap"`
	CadenceTarget    int    `json:"cadence_target" yaml:"cadence_target"`       // events per 90 days at full frequency credit
	DefaultTierTheme string `json:"default_tier_theme" yaml:"default_tier_theme"`
	HealthDropAlert  int    `json:"health_drop_alert" yaml:"health_drop_alert"` // alert admins when the score drops by this much
	FameMinEvents    int    `json:"fame_min_events" yaml:"fame_min_events"`     // attendance sample before the rate record applies
}

func (s *Scoring) applyDefaults() {
	if s.GlobalWeeklyCap <= 0 {
		s.GlobalWeeklyCap = 100
	}
	if s.CadenceTarget <= 0 {
		s.CadenceTarget = 12
	}
	if s.DefaultTierTheme == "" {
		s.DefaultTierTheme = "nautical"
	}
	if s.HealthDropAlert <= 0 {
		s.HealthDropAlert = 15
	}
	if s.FameMinEvents <= 0 {
		s.FameMinEvents = 5
	}
}
