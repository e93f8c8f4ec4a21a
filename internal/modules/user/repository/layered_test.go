package repository

import (
	"errors"
	"testing"

	"github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
)

type fakeRepo struct {
	state   *domain.State
	loadErr error
	saveErr error
	saved   int
}

func (r *fakeRepo) Load() (*domain.State, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.state, nil
}

func (r *fakeRepo) Save(state *domain.State) error {
	r.saved++
	r.state = state
	return r.saveErr
}

func TestLayered_LoadPrefersRemote(t *testing.T) {
	remoteState := domain.NewState()
	remoteState.LastUpdateID = 1
	localState := domain.NewState()
	localState.LastUpdateID = 2

	layered := NewLayered(&fakeRepo{state: remoteState}, &fakeRepo{state: localState})
	state, err := layered.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state.LastUpdateID != 1 {
		t.Fatalf("expected remote state, got LastUpdateID=%d", state.LastUpdateID)
	}
}

func TestLayered_LoadFallsBackToLocal(t *testing.T) {
	localState := domain.NewState()
	localState.LastUpdateID = 2

	layered := NewLayered(&fakeRepo{loadErr: errors.New("gist down")}, &fakeRepo{state: localState})
	state, err := layered.Load()
	if err != nil {
		t.Fatal(err)
	}
	if state.LastUpdateID != 2 {
		t.Fatalf("expected local fallback, got LastUpdateID=%d", state.LastUpdateID)
	}
}

func TestLayered_NoRemote(t *testing.T) {
	localState := domain.NewState()
	layered := NewLayered(nil, &fakeRepo{state: localState})
	if _, err := layered.Load(); err != nil {
		t.Fatal(err)
	}
}

func TestLayered_SaveWritesBothRemoteBestEffort(t *testing.T) {
	remote := &fakeRepo{saveErr: errors.New("gist down")}
	local := &fakeRepo{}

	layered := NewLayered(remote, local)
	if err := layered.Save(domain.NewState()); err != nil {
		t.Fatalf("remote save failure must not surface: %v", err)
	}
	if local.saved != 1 || remote.saved != 1 {
		t.Fatalf("saves: local=%d remote=%d, want 1/1", local.saved, remote.saved)
	}
}

func TestLayered_SaveLocalFailureSurfaces(t *testing.T) {
	layered := NewLayered(nil, &fakeRepo{saveErr: errors.New("disk full")})
	if err := layered.Save(domain.NewState()); err == nil {
		t.Fatal("local save failure must surface")
	}
}
