package domain

// SentDealsLimit caps the per-user fingerprint ledger. When the ledger
// overflows, the oldest entries are evicted first, which means a deal
// notified more than SentDealsLimit notifications ago may legitimately
// be announced again.
const SentDealsLimit = 500

// User is an approved user: identity, settings overrides and the
// ordered ledger of already-notified deal fingerprints.
type User struct {
	Name      string           `json:"name"`
	Username  string           `json:"username,omitempty"`
	Settings  SettingsOverride `json:"settings"`
	SentDeals []string         `json:"sent_deals"`
}

// EffectiveSettings returns defaults overlaid with the user's overrides.
func (u *User) EffectiveSettings() Settings {
	return u.Settings.Apply(DefaultSettings())
}

// SentSet returns a membership-test view of the ledger.
func (u *User) SentSet() map[string]struct{} {
	set := make(map[string]struct{}, len(u.SentDeals))
	for _, fp := range u.SentDeals {
		set[fp] = struct{}{}
	}
	return set
}

// AppendSent appends fingerprints to the ledger and evicts the oldest
// entries beyond SentDealsLimit.
func (u *User) AppendSent(fingerprints []string) {
	u.SentDeals = append(u.SentDeals, fingerprints...)
	if len(u.SentDeals) > SentDealsLimit {
		u.SentDeals = u.SentDeals[len(u.SentDeals)-SentDealsLimit:]
	}
}

// PendingRequest is a not-yet-approved requester awaiting admin action.
type PendingRequest struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}
