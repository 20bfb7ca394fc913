// Package synth: long-form session serialization.
//
// Layout (one record per visitor, binary visit flags in catalogue order):
//
//	user_id,user_type,British_Airways,...,Ryanair
//	user_000000,business_uk,1,1,0,0,0
//
// The flags lose the within-session visit order; a reloaded session lists
// its carriers in catalogue order instead. Cross-tabulations only consume
// set membership, so every crosstab is invariant under the round trip.

package synth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors returned by the session reader.
var (
	// ErrSessionHeader indicates a missing or unusable header row.
	ErrSessionHeader = errors.New("synth: bad session header")

	// ErrSessionRecord indicates a malformed session record.
	ErrSessionRecord = errors.New("synth: bad session record")
)

// WriteSessions serializes sessions in long form.
func WriteSessions(w io.Writer, sessions []Session) error {
	cw := csv.NewWriter(w)

	header := append([]string{"user_id", "user_type"}, CarrierNames()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("synth: header: %w", err)
	}

	record := make([]string, len(header))
	for _, s := range sessions {
		record[0] = s.ID
		record[1] = s.Profile
		for i, c := range carriers {
			if contains(s.Visited, c.Name) {
				record[2+i] = "1"
			} else {
				record[2+i] = "0"
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("synth: session %s: %w", s.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveSessions writes sessions to the file at path.
func SaveSessions(path string, sessions []Session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	if err := WriteSessions(f, sessions); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadSessions parses sessions previously written by WriteSessions.
// Carrier columns are matched by header name, so column order in the
// file is free; visited carriers come back in catalogue order. A record
// whose visit flags are all zero is rejected: every session records at
// least one visit.
func ReadSessions(r io.Reader) ([]Session, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionHeader, err)
	}
	if len(header) < 3 || header[0] != "user_id" || header[1] != "user_type" {
		return nil, fmt.Errorf("%w: %q", ErrSessionHeader, strings.Join(header, ","))
	}

	// Map carrier columns by name; unknown columns are ignored so files
	// with extra metadata still load.
	colOf := make(map[string]int, len(carriers))
	for f := 2; f < len(header); f++ {
		colOf[strings.TrimSpace(header[f])] = f
	}

	var sessions []Session
	for rec := 1; ; rec++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrSessionRecord, rec, err)
		}

		s := Session{ID: record[0], Profile: record[1]}
		for _, c := range carriers { // catalogue order keeps output stable
			f, ok := colOf[c.Name]
			if !ok || f >= len(record) {
				continue
			}
			switch strings.TrimSpace(record[f]) {
			case "1":
				s.Visited = append(s.Visited, c.Name)
			case "0", "":
				// not visited
			default:
				return nil, fmt.Errorf("%w: record %d: visit flag %q",
					ErrSessionRecord, rec, record[f])
			}
		}
		if len(s.Visited) == 0 {
			return nil, fmt.Errorf("%w: record %d: no visits", ErrSessionRecord, rec)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
