package mfapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundsight/fundsight"
)

const schemeListBody = `[
  {"schemeCode":100027,"schemeName":"Grindlays Super Saver Income Fund-GSSIF-Growth"},
  {"schemeCode":120503,"schemeName":"Axis Bluechip Fund - Direct Plan - Growth"},
  {"schemeCode":122639,"schemeName":"Parag Parikh Flexi Cap Fund - Direct Plan - Growth"}
]`

const navHistoryBody = `{
  "meta":{"scheme_name":"Axis Bluechip Fund - Direct Plan - Growth"},
  "data":[
    {"date":"03-01-2025","nav":"58.12"},
    {"date":"02-01-2025","nav":"N.A."},
    {"date":"01-01-2025","nav":"57.90"},
    {"date":"not-a-date","nav":"57.00"}
  ],
  "status":"SUCCESS"
}`

// testClient points a Client at a fixture server, bypassing the disk cache.
func testClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mf":
			w.Write([]byte(schemeListBody))
		case "/mf/120503":
			w.Write([]byte(navHistoryBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return &Client{
		BaseURL: srv.URL,
		list:    http.DefaultClient,
		nav:     http.DefaultClient,
	}
}

func TestSchemeList(t *testing.T) {
	c := testClient(t)
	schemes, err := c.SchemeList()
	if err != nil {
		t.Fatal(err)
	}
	if len(schemes) != 3 {
		t.Fatalf("len = %d want 3", len(schemes))
	}
	if schemes[0].ID() != "100027" {
		t.Errorf("ID() = %q want %q", schemes[0].ID(), "100027")
	}
}

func TestSearch(t *testing.T) {
	c := testClient(t)
	tests := []struct {
		query string
		want  int
	}{
		{"axis bluechip", 1},
		{"BLUECHIP axis", 1}, // word order and case do not matter
		{"direct growth", 2},
		{"axis parag", 0}, // every word must match
	}
	for _, tt := range tests {
		got, err := c.Search(tt.query)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("Search(%q) = %d schemes want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestNavHistory(t *testing.T) {
	c := testClient(t)
	name, raw, err := c.NavHistory("120503")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Axis Bluechip Fund - Direct Plan - Growth" {
		t.Errorf("name = %q", name)
	}
	// The undated row is dropped, the "N.A." row kept but invalid.
	if len(raw) != 3 {
		t.Fatalf("len = %d want 3", len(raw))
	}
	want := []fundsight.RawNav{
		{Date: fundsight.NewDate(2025, 1, 3), Value: 58.12, Valid: true},
		{Date: fundsight.NewDate(2025, 1, 2), Valid: false},
		{Date: fundsight.NewDate(2025, 1, 1), Value: 57.90, Valid: true},
	}
	for i := range want {
		if raw[i] != want[i] {
			t.Errorf("raw[%d] = %+v want %+v", i, raw[i], want[i])
		}
	}
}

func TestNavHistoryUnknownScheme(t *testing.T) {
	c := testClient(t)
	if _, _, err := c.NavHistory("999999"); err == nil {
		t.Error("NavHistory on an unknown scheme succeeded, want error")
	}
}
