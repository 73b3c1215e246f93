package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/services"
)

const (
	defaultForecastWidth = 40
	maxForecastWidth     = 56
)

var (
	forecastJSON bool
	iconFlag     string
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Print the weekly forecast",
	Long:  `Print the current conditions, the seven day forecast and the summary tiles.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := app.forecast.GetForecast(cmd.Context())
		if err != nil {
			return err
		}
		if forecastJSON {
			return printForecastJSON(cmd.OutOrStdout(), f)
		}
		printForecast(cmd.OutOrStdout(), f, terminalWidth())
		return nil
	},
}

var forecastSetCmd = &cobra.Command{
	Use:   "set <day> <temperature>",
	Short: "Change one day of the cached forecast",
	Long: `Change the temperature (and optionally the icon) of one forecast day.
The day is a name such as "tue" or an index from 0 (Monday) to 6 (Sunday).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}

		f, err := app.forecast.UpdateDay(cmd.Context(), services.UpdateDayRequest{
			Index:       int(day),
			Temperature: args[1],
			Icon:        iconFlag,
		})
		if err != nil {
			return err
		}

		row, _ := f.Row(day)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s %s\n", day.Name(), row.Icon, row.Temperature)
		return nil
	},
}

var forecastResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in forecast",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.forecast.ResetForecast(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Forecast reset")
		return nil
	},
}

func init() {
	forecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "Output the forecast as JSON")
	forecastSetCmd.Flags().StringVar(&iconFlag, "icon", "", "Weather icon for the day, e.g. ☀")

	forecastCmd.AddCommand(forecastSetCmd)
	forecastCmd.AddCommand(forecastResetCmd)
}

// parseDayArg accepts a day index (0-6) or a case-insensitive day name prefix.
func parseDayArg(s string) (domain.Day, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return domain.ParseDay(n)
	}
	lower := strings.ToLower(s)
	if len(lower) >= 2 {
		for _, d := range domain.AllDays() {
			if strings.HasPrefix(strings.ToLower(d.Name()), lower) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDay, s)
}

func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultForecastWidth
	}
	return w
}

// printForecast writes a plain forecast. Only calendar day names are used.
func printForecast(w io.Writer, f domain.Forecast, width int) {
	if width > maxForecastWidth {
		width = maxForecastWidth
	}
	if width < 24 {
		width = 24
	}
	bold := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(w, f.Location)
	fmt.Fprintln(w, bold.Render(f.Current))
	fmt.Fprintln(w)
	fmt.Fprintln(w, muted.Render("DAILY FORECAST"))
	for _, row := range f.Days {
		left := row.Icon + "  " + row.Day.Name()
		pad := width - lipgloss.Width(left) - lipgloss.Width(row.Temperature)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "%s%s%s\n", left, strings.Repeat(" ", pad), row.Temperature)
	}
	if len(f.Tiles) > 0 {
		fmt.Fprintln(w)
		for _, t := range f.Tiles {
			fmt.Fprintf(w, "%s  %-14s %s\n", t.Icon, t.Title, t.Value)
		}
	}
}

type forecastDayJSON struct {
	Index       int    `json:"index"`
	Day         string `json:"day"`
	Icon        string `json:"icon"`
	Temperature string `json:"temperature"`
}

type forecastTileJSON struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type forecastJSONOutput struct {
	Location string             `json:"location"`
	Current  string             `json:"current"`
	Days     []forecastDayJSON  `json:"days"`
	Summary  []forecastTileJSON `json:"summary"`
}

func printForecastJSON(w io.Writer, f domain.Forecast) error {
	out := forecastJSONOutput{
		Location: f.Location,
		Current:  f.Current,
	}
	for _, row := range f.Days {
		out.Days = append(out.Days, forecastDayJSON{
			Index:       int(row.Day),
			Day:         row.Day.Name(),
			Icon:        row.Icon,
			Temperature: row.Temperature,
		})
	}
	for _, t := range f.Tiles {
		out.Summary = append(out.Summary, forecastTileJSON{Icon: t.Icon, Title: t.Title, Value: t.Value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
