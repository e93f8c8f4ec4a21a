package domain

// Settings is a user's effective search configuration, with every
// field populated (defaults merged with any explicit overrides).
type Settings struct {
	Origin         string
	DaysAhead      int
	BasePrice      int
	BaseDuration   int
	PriceIncrement int
	StepMinutes    int
	Currency       string
	Market         string
	Limit          int
	DirectOnly     bool
}

// DefaultSettings returns the configuration applied to a user who has
// not overridden anything.
func DefaultSettings() Settings {
	return Settings{
		Origin:         "BUD",
		DaysAhead:      3,
		BasePrice:      20,
		BaseDuration:   90,
		PriceIncrement: 10,
		StepMinutes:    30,
		Currency:       "eur",
		Market:         "hu",
		Limit:          100,
		DirectOnly:     false,
	}
}

// SettingsOverride holds only the fields a user explicitly set. A nil
// field means "use the default". The JSON keys match the persisted
// state format.
type SettingsOverride struct {
	Origin         *string `json:"origin,omitempty"`
	DaysAhead      *int    `json:"days_ahead,omitempty"`
	BasePrice      *int    `json:"base_price_eur,omitempty"`
	BaseDuration   *int    `json:"base_duration_minutes,omitempty"`
	PriceIncrement *int    `json:"price_increment_eur,omitempty"`
	StepMinutes    *int    `json:"increment_minutes,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	Market         *string `json:"market,omitempty"`
	Limit          *int    `json:"limit,omitempty"`
	DirectOnly     *bool   `json:"direct_only,omitempty"`
}

// Apply overlays the override onto base and returns the result.
func (o SettingsOverride) Apply(base Settings) Settings {
	s := base
	if o.Origin != nil {
		s.Origin = *o.Origin
	}
	if o.DaysAhead != nil {
		s.DaysAhead = *o.DaysAhead
	}
	if o.BasePrice != nil {
		s.BasePrice = *o.BasePrice
	}
	if o.BaseDuration != nil {
		s.BaseDuration = *o.BaseDuration
	}
	if o.PriceIncrement != nil {
		s.PriceIncrement = *o.PriceIncrement
	}
	if o.StepMinutes != nil {
		s.StepMinutes = *o.StepMinutes
	}
	if o.Currency != nil {
		s.Currency = *o.Currency
	}
	if o.Market != nil {
		s.Market = *o.Market
	}
	if o.Limit != nil {
		s.Limit = *o.Limit
	}
	if o.DirectOnly != nil {
		s.DirectOnly = *o.DirectOnly
	}
	return s
}
