package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// contribHuhTheme returns a huh theme matching the formatter palette.
func contribHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// fieldValidator adapts a domain field check to a huh validator.
func fieldValidator(field domain.EntryField) func(string) error {
	return func(s string) error {
		return domain.ValidateEntryField(field, s)
	}
}

// entryFormValues are the raw inputs bound to the huh fields.
type entryFormValues struct {
	date, hours, minutes, projectID, notes string
	tangible                               bool
}

func entryValuesFrom(f domain.EntryForm) *entryFormValues {
	return &entryFormValues{
		date:      f.Date,
		hours:     f.Hours,
		minutes:   f.Minutes,
		projectID: f.ProjectID,
		notes:     f.Notes,
		tangible:  f.IsTangible,
	}
}

// apply replays the collected values through the form reducer.
func (v *entryFormValues) apply(f domain.EntryForm) domain.EntryForm {
	events := []domain.EntryFormEvent{
		domain.SetDate{Value: v.date},
		domain.SetHours{Value: v.hours},
		domain.SetMinutes{Value: v.minutes},
		domain.SetProject{ProjectID: v.projectID},
		domain.SetNotes{Value: v.notes},
	}
	if v.tangible != f.IsTangible {
		events = append(events, domain.ToggleTangible{})
	}
	for _, ev := range events {
		f = domain.ReduceEntryForm(f, ev)
	}
	return f
}

// newEntryHuhForm builds the interactive time entry form. Project options
// come from the stored projects; an empty store is an error because an
// entry cannot be logged without one.
func newEntryHuhForm(ctx context.Context, app *App, v *entryFormValues) (*huh.Form, error) {
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects yet: add one with 'contrib project add'")
	}

	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := p.Name
		if p.Category != "" {
			label = fmt.Sprintf("%s (%s)", p.Name, p.Category)
		}
		options = append(options, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(options...).
				Value(&v.projectID).
				Validate(fieldValidator(domain.FieldProject)),
			huh.NewInput().
				Title("Date of work").
				Placeholder("2024-06-30").
				Value(&v.date).
				Validate(fieldValidator(domain.FieldDate)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Value(&v.hours).
				Validate(fieldValidator(domain.FieldHours)),
			huh.NewInput().
				Title("Minutes").
				Value(&v.minutes).
				Validate(fieldValidator(domain.FieldMinutes)),
			huh.NewConfirm().
				Title("Tangible work?").
				Description("Tangible time produced something concrete.").
				Value(&v.tangible),
			huh.NewText().
				Title("Notes").
				Value(&v.notes),
		),
	).WithTheme(contribHuhTheme()).WithShowHelp(false), nil
}
