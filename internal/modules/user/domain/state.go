package domain

// State is the whole application state persisted between runs: the
// registry of approved users, pending registration requests and the
// cursor of the last processed inbound message.
//
// Invariant: a chat id appears in at most one of Users and Pending.
type State struct {
	Users        map[string]*User           `json:"users"`
	Pending      map[string]*PendingRequest `json:"pending"`
	LastUpdateID int64                      `json:"last_update_id"`
}

// NewState returns an empty application state.
func NewState() *State {
	return &State{
		Users:   make(map[string]*User),
		Pending: make(map[string]*PendingRequest),
	}
}

// Normalize ensures the maps are non-nil after JSON decoding.
func (s *State) Normalize() {
	if s.Users == nil {
		s.Users = make(map[string]*User)
	}
	if s.Pending == nil {
		s.Pending = make(map[string]*PendingRequest)
	}
	for _, u := range s.Users {
		if u.SentDeals == nil {
			u.SentDeals = []string{}
		}
	}
}
