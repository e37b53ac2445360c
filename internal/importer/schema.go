package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Source identifies which API list a payload came from.
type Source string

const (
	// SourceUserList is the per-user time entry list of the active team.
	SourceUserList Source = "user"
	// SourceProjectList is the per-project list covering users outside the team.
	SourceProjectList Source = "project"
)

// ParseSource validates a source name.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceUserList, SourceProjectList:
		return Source(s), nil
	default:
		return "", fmt.Errorf("unknown source %q (expected %q or %q)", s, SourceUserList, SourceProjectList)
	}
}

// RawTimeEntry is a time entry record as delivered by the REST API. Hours and
// Minutes may arrive as JSON numbers or strings, so they stay untyped until
// normalization. Date is accepted as an alias of DateOfWork.
type RawTimeEntry struct {
	ID          string `json:"_id,omitempty"`
	PersonID    string `json:"personId,omitempty"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Hours       any    `json:"hours"`
	Minutes     any    `json:"minutes"`
	IsTangible  any    `json:"isTangible"`
	DateOfWork  string `json:"dateOfWork"`
	Date        string `json:"date,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Payload is one decoded API response.
type Payload struct {
	Source  Source
	Entries []RawTimeEntry
}

type wrappedPayload struct {
	Entries []RawTimeEntry `json:"entries"`
}

// LoadPayloadFile reads and parses a payload file from disk.
func LoadPayloadFile(path string, source Source) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}
	return ParsePayload(data, source)
}

// ParsePayload decodes either a bare JSON array of entries or an object with
// an "entries" array. Numbers are kept as json.Number.
func ParsePayload(data []byte, source Source) (*Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &Payload{Source: source}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var entries []RawTimeEntry
	if trimmed[0] == '[' {
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("parsing payload JSON: %w", err)
		}
	} else {
		var wrapped wrappedPayload
		if err := dec.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("parsing payload JSON: %w", err)
		}
		entries = wrapped.Entries
	}

	return &Payload{Source: source, Entries: entries}, nil
}
