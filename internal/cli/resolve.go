package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
)

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD", name, value)
	}
	return t, nil
}

// resolveProjectID accepts a full id, a unique id prefix or a project name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact id match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 2. Name match (case-insensitive)
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 3. Id prefix match
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	id, err := matchPrefix(ids, input)
	if err != nil {
		return "", fmt.Errorf("project %w", err)
	}
	return id, nil
}

// resolveEntryID accepts a full entry id or the short form shown in listings.
func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	if _, err := app.Entries.GetByID(ctx, input); err == nil {
		return input, nil
	}

	entries, err := app.Entries.List(ctx, nil, time.Time{}, time.Time{})
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	id, err := matchPrefix(ids, input)
	if err != nil {
		return "", fmt.Errorf("entry %w", err)
	}
	return id, nil
}

func matchPrefix(ids []string, prefix string) (string, error) {
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("not found: %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
