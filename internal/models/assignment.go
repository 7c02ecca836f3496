package models

import (
	"encoding/json"
	"strings"
	"time"
)

// UnpairedPrefix marks a stored partner value as "nobody was left to
// draw". Readers recognize the marker by this prefix rather than the
// full text, so older records with different wording still parse.
const UnpairedPrefix = "NO PARTNER"

// unpairedValue is the full marker written for new unpaired assignments.
const unpairedValue = "NO PARTNER (no participants left to draw)"

// Partner is the outcome of a draw: either another participant's name,
// or unpaired when the candidate pool was empty. The legacy marker
// string only exists inside the JSON codec and Display.
type Partner struct {
	// Name is the drawn participant's name; empty when Unpaired
	Name string

	// Unpaired indicates no partner was available at draw time
	Unpaired bool
}

// PairedWith returns a Partner holding the drawn name.
func PairedWith(name string) Partner {
	return Partner{Name: name}
}

// NoPartner returns the unpaired outcome.
func NoPartner() Partner {
	return Partner{Unpaired: true}
}

// Display renders the partner the way it appears in the store, the
// export, and the result page.
func (p Partner) Display() string {
	if p.Unpaired {
		return unpairedValue
	}
	return p.Name
}

// MarshalJSON writes the partner as the flat string the legacy store
// format uses.
func (p Partner) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Display())
}

// UnmarshalJSON reads the flat string form, mapping marker-prefixed
// values to the unpaired outcome.
func (p *Partner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.HasPrefix(s, UnpairedPrefix) {
		*p = Partner{Unpaired: true}
		return nil
	}
	*p = Partner{Name: s}
	return nil
}

// Assignment records the partner a participant drew
type Assignment struct {
	// Name is the requesting participant; unique across the history
	Name string `json:"name"`

	// Partner is the drawn outcome
	Partner Partner `json:"partner"`

	// Timestamp is when the assignment was created or last edited,
	// at second precision
	Timestamp time.Time `json:"timestamp"`
}

// legacyTimestampLayout matches history files written by the original
// application, which stored local times with no offset.
const legacyTimestampLayout = "2006-01-02T15:04:05"

// UnmarshalJSON decodes an assignment record, accepting offset-less
// legacy timestamps alongside RFC 3339.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string  `json:"name"`
		Partner   Partner `json:"partner"`
		Timestamp string  `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Name = raw.Name
	a.Partner = raw.Partner
	a.Timestamp = time.Time{}

	if raw.Timestamp == "" {
		return nil
	}

	ts, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		ts, err = time.ParseInLocation(legacyTimestampLayout, raw.Timestamp, time.Local)
		if err != nil {
			return err
		}
	}
	a.Timestamp = ts
	return nil
}
