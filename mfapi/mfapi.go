// Package mfapi fetches Indian mutual-fund NAV data from api.mfapi.in.
//
// It is the data-fetch collaborator of the pipeline: it owns networking and
// caching, and hands raw entries to fundsight.Normalize which owns the drop
// policy. Malformed rows ("N.A." NAVs, empty strings) are passed through
// marked invalid, never silently repaired.
package mfapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fundsight/fundsight"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public endpoint of the NAV history service.
const DefaultBaseURL = "https://api.mfapi.in"

// navDateFormat is the dd-mm-yyyy format the API publishes dates in.
const navDateFormat = "02-01-2006"

// Scheme is one entry of the full scheme list.
type Scheme struct {
	Code int64  `json:"schemeCode"`
	Name string `json:"schemeName"`
}

// ID returns the scheme code in the string form used throughout the pipeline.
func (s Scheme) ID() string { return strconv.FormatInt(s.Code, 10) }

// Client talks to the NAV history service. Responses are cached on disk: the
// scheme list daily, NAV histories hourly.
type Client struct {
	BaseURL string

	list *http.Client
	nav  *http.Client
}

// NewClient returns a client for the public endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		list:    newDailyCachingClient(),
		nav:     newHourlyCachingClient(),
	}
}

// SchemeList fetches the list of all known schemes.
func (c *Client) SchemeList() ([]Scheme, error) {
	// https://api.mfapi.in/mf
	// [{"schemeCode":100027,"schemeName":"Grindlays Super Saver Income Fund-GSSIF-Growth"}, ...]
	var content []Scheme
	if err := jwget(c.list, c.BaseURL+"/mf", &content); err != nil {
		return nil, fmt.Errorf("fetch scheme list: %w", err)
	}
	return content, nil
}

// Search returns the schemes whose name contains every word of the query,
// case-insensitively.
func (c *Client) Search(query string) ([]Scheme, error) {
	all, err := c.SchemeList()
	if err != nil {
		return nil, err
	}
	words := strings.Fields(strings.ToLower(query))
	var out []Scheme
	for _, s := range all {
		name := strings.ToLower(s.Name)
		match := true
		for _, w := range words {
			if !strings.Contains(name, w) {
				match = false
				break
			}
		}
		if match {
			out = append(out, s)
		}
	}
	return out, nil
}

// navPayload is the shape of the per-scheme history endpoint.
type navPayload struct {
	Meta struct {
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"` // dd-mm-yyyy
		Nav  string `json:"nav"`  // decimal as string, or a placeholder like "N.A."
	} `json:"data"`
	Status string `json:"status"`
}

// NavHistory fetches the full raw NAV history of one scheme.
//
// Entries are returned in the provider's listed order, unsorted and possibly
// containing duplicates or invalid values; cleaning them is the normalizer's
// job. Rows whose date cannot be parsed are dropped here, since an entry
// without a date cannot be keyed at all.
func (c *Client) NavHistory(code string) (name string, raw []fundsight.RawNav, err error) {
	// https://api.mfapi.in/mf/100027
	// {"meta":{"scheme_name":"..."},"data":[{"date":"27-08-2026","nav":"123.45600"}],"status":"SUCCESS"}
	var content navPayload
	if err := jwget(c.nav, c.BaseURL+"/mf/"+code, &content); err != nil {
		return "", nil, fmt.Errorf("fetch NAV history for %s: %w", code, err)
	}
	if content.Status != "" && content.Status != "SUCCESS" {
		return "", nil, fmt.Errorf("fetch NAV history for %s: status %q", code, content.Status)
	}

	raw = make([]fundsight.RawNav, 0, len(content.Data))
	for _, row := range content.Data {
		on, err := time.Parse(navDateFormat, row.Date)
		if err != nil {
			continue
		}
		entry := fundsight.RawNav{Date: fundsight.NewDate(on.Date())}
		if d, err := decimal.NewFromString(strings.TrimSpace(row.Nav)); err == nil {
			entry.Value, _ = d.Float64()
			entry.Valid = true
		}
		raw = append(raw, entry)
	}
	return content.Meta.SchemeName, raw, nil
}
