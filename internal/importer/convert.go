package importer

import "github.com/alexanderramin/contrib/internal/domain"

// FromLoggedEntries renders stored entries in the API record shape so that
// local data and imported payloads go through the same normalization.
func FromLoggedEntries(entries []*domain.LoggedEntry) []RawTimeEntry {
	raw := make([]RawTimeEntry, 0, len(entries))
	for _, e := range entries {
		raw = append(raw, RawTimeEntry{
			ID:          e.ID,
			PersonID:    e.UserID,
			ProjectID:   e.ProjectID,
			ProjectName: e.ProjectName,
			Hours:       e.Hours,
			Minutes:     e.Minutes,
			IsTangible:  e.IsTangible,
			DateOfWork:  e.DateOfWork.Format(domain.DateLayout),
			Notes:       e.Notes,
		})
	}
	return raw
}
