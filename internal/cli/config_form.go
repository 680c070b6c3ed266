package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mumpitzstuff/goodTimes/internal/cli/formatter"
	"github.com/mumpitzstuff/goodTimes/internal/config"
)

// goodtimesHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func goodtimesHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

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

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runConfigForm edits the tracking and check settings of cfg in place through
// an interactive form. Numeric fields are edited as text and parsed back,
// invalid input is rejected inline before the form can be submitted.
func runConfigForm(cfg *config.Config) error {
	t := &cfg.Tracking

	working := formatFloat(t.WorkingHours)
	maxHours := formatFloat(t.MaxHours)
	breakfast := formatFloat(t.BreakfastBreak)
	lunch := formatFloat(t.LunchBreak)
	precision := strconv.Itoa(t.Precision)
	history := strconv.Itoa(t.HistoryDays)
	mergeGap := strconv.Itoa(t.MergeGapMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			hoursInput("Working hours per day", &working),
			hoursInput("Maximum hours per day", &maxHours),
			hoursInput("Breakfast break (hours)", &breakfast),
			hoursInput("Lunch break (hours)", &lunch),
			huh.NewInput().
				Title("Rounding precision (sub-steps per hour)").
				Value(&precision).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("History (days)").
				Value(&history).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Merge gap (minutes)").
				Value(&mergeGap).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Join intervals").
				Description("Treat the day as one block from first start to last stop").
				Value(&t.JoinIntervals),
			huh.NewConfirm().
				Title("Track lock and unlock").
				Value(&t.ShowLogoff),
			huh.NewSelect[string]().
				Title("Notifier").
				Options(
					huh.NewOption("Desktop (notify-send)", "desktop"),
					huh.NewOption("Console", "console"),
					huh.NewOption("Log only", "log"),
				).
				Value(&cfg.Check.Notifier),
		),
	).WithTheme(goodtimesHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running config form: %w", err)
	}

	// Validated by the form, parse cannot fail.
	t.WorkingHours, _ = strconv.ParseFloat(working, 64)
	t.MaxHours, _ = strconv.ParseFloat(maxHours, 64)
	t.BreakfastBreak, _ = strconv.ParseFloat(breakfast, 64)
	t.LunchBreak, _ = strconv.ParseFloat(lunch, 64)
	t.Precision, _ = strconv.Atoi(precision)
	t.HistoryDays, _ = strconv.Atoi(history)
	t.MergeGapMinutes, _ = strconv.Atoi(mergeGap)

	return cfg.Validate()
}

func hoursInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("8.0").
		Value(value).
		Validate(validateHours)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func validateHours(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if f < 0 || f > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a whole number")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
