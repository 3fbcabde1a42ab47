package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dancinggoatstudios/shopcal/internal/cli/formatter"
	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/service"
)

// shopcalHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func shopcalHuhTheme() *huh.Theme {
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
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runJobWizard collects job parameters through a huh form and creates the job.
func runJobWizard(ctx context.Context, app *App) error {
	var (
		title  string
		hours  string
		perDay string
		start  string
		ship   string
		inHand string
		group  string
		color  string
	)

	colorOptions := make([]huh.Option[string], 0, len(app.Config.Palette))
	for key := range app.Config.Palette {
		if key == domain.OverrunColorKey {
			continue
		}
		colorOptions = append(colorOptions, huh.NewOption(key, key))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Job title").
				Validate(validateRequired).
				Value(&title),
			huh.NewInput().
				Title("Total hours").
				Validate(validatePositiveFloat).
				Value(&hours),
			huh.NewInput().
				Title("Hours per day").
				Placeholder(formatter.Hours(app.Config.Defaults.PerDayHours)).
				Validate(validateOptionalPositiveFloat).
				Value(&perDay),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD, empty = today").
				Validate(validateOptionalDate).
				Value(&start),
			huh.NewInput().
				Title("Shipping date").
				Placeholder("YYYY-MM-DD, optional").
				Validate(validateOptionalDate).
				Value(&ship),
			huh.NewInput().
				Title("In-hand date").
				Placeholder("YYYY-MM-DD, optional").
				Validate(validateOptionalDate).
				Value(&inHand),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&color),
			huh.NewInput().
				Title("Calendar group").
				Placeholder("optional").
				Value(&group),
		),
	).WithTheme(shopcalHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	params := service.CreateJobParams{
		Title:         title,
		TotalHours:    parseFloatOr(hours, 0),
		PerDayHours:   parseFloatOr(perDay, app.Config.Defaults.PerDayHours),
		CalendarGroup: group,
		ColorKey:      color,
	}
	if params.ColorKey == "" {
		params.ColorKey = app.Config.Defaults.ColorKey
	}

	params.StartDate = domain.Day(time.Now().UTC())
	if start != "" {
		d, _ := domain.ParseDate(start)
		params.StartDate = d
	}
	if ship != "" {
		d, _ := domain.ParseDate(ship)
		params.ShippingDate = &d
	}
	if inHand != "" {
		d, _ := domain.ParseDate(inHand)
		params.InHandDate = &d
	}

	job, err := app.Jobs.Create(ctx, params)
	if err != nil {
		return err
	}

	fmt.Printf("Created job %s (%d work days)\n", job.Title, len(job.Schedule))
	fmt.Println(formatter.FormatSchedule(job))
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(shopcalHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects empty input.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validatePositiveFloat requires a positive number.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalPositiveFloat accepts empty or a positive number.
func validateOptionalPositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	return validatePositiveFloat(s)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// parseFloatOr parses s as a float, returning fallback if s is empty or
// invalid. Used after huh form validation has already ensured the string
// is valid, so this is a safe conversion.
func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
