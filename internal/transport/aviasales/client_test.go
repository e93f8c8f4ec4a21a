package aviasales

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	userDomain "github.com/aboutmisha/flight-deals-bot/internal/modules/user/domain"
)

func TestSearch_Success(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k, v := range r.URL.Query() {
			gotQuery[k] = v[0]
		}
		fmt.Fprint(w, `{"success":true,"data":[
			{"origin":"BUD","destination":"LTN","departure_at":"2025-06-01T10:30:00+02:00","price":18,"duration_to":150,"airline":"W6","flight_number":"2205","transfers":0,"link":"/search/x"},
			{"origin":"BUD","destination":"STN","departure_at":"2025-06-01T12:00:00+02:00","price":25,"duration":95}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	tickets, err := c.Search(context.Background(), "2025-06-01", userDomain.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}

	if tickets[0].EffectiveDuration() != 150 {
		t.Errorf("duration_to should win: got %d", tickets[0].EffectiveDuration())
	}
	if tickets[1].EffectiveDuration() != 95 {
		t.Errorf("duration fallback: got %d", tickets[1].EffectiveDuration())
	}

	for k, want := range map[string]string{
		"origin":       "BUD",
		"departure_at": "2025-06-01",
		"one_way":      "true",
		"currency":     "eur",
		"market":       "hu",
		"limit":        "100",
		"sorting":      "price",
		"token":        "tok",
	} {
		if gotQuery[k] != want {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], want)
		}
	}
	if _, ok := gotQuery["direct"]; ok {
		t.Error("direct param must be absent unless DirectOnly is set")
	}
}

func TestSearch_DirectOnly(t *testing.T) {
	var direct string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		direct = r.URL.Query().Get("direct")
		fmt.Fprint(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	s := userDomain.DefaultSettings()
	s.DirectOnly = true

	c := NewClient(srv.URL, "tok")
	if _, err := c.Search(context.Background(), "2025-06-01", s); err != nil {
		t.Fatal(err)
	}
	if direct != "true" {
		t.Errorf("direct = %q, want true", direct)
	}
}

func TestSearch_UnsuccessfulPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"data":[{"origin":"BUD","price":1,"duration":60}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	tickets, err := c.Search(context.Background(), "2025-06-01", userDomain.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(tickets) != 0 {
		t.Fatalf("unsuccessful payload must yield no tickets, got %d", len(tickets))
	}
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if _, err := c.Search(context.Background(), "2025-06-01", userDomain.DefaultSettings()); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
