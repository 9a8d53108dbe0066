// Package render turns tasks into terminal output: a detailed block view,
// a compact table, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/BuzzLyutic/todo-cli/internal/model"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	ruleWidth  = 50

	descWidth = 40
)

const (
	bold    = color.Bold
	red     = color.FgRed
	green   = color.FgGreen
	yellow  = color.FgYellow
	blue    = color.FgBlue
	magenta = color.FgMagenta
	cyan    = color.FgCyan
)

// Style controls how output looks. Color is decided by the caller and
// overrides the color package's own terminal and NO_COLOR detection.
type Style struct {
	Color    bool
	Location *time.Location
}

func (s Style) paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if s.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func (s Style) stamp(t time.Time) string {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(timeLayout)
}

// FormatDuration keeps the two largest units: days and hours, hours and
// minutes, or just minutes.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / (24 * 3600)
	hours := (total % (24 * 3600)) / 3600
	minutes := (total % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours", days, hours)
	case hours > 0:
		return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}

func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func Success(w io.Writer, s Style, message string) {
	fmt.Fprintln(w, s.paint(green, message))
}

func Notice(w io.Writer, s Style, message string) {
	fmt.Fprintln(w, s.paint(yellow, message))
}

func Warning(w io.Writer, s Style, message string) {
	fmt.Fprintln(w, s.paint(yellow, "Warning:"), message)
}

func Error(w io.Writer, s Style, message string) {
	fmt.Fprintln(w, s.paint(red, "Error:"), s.paint(red, message))
}

// Tasks writes the detailed block view. Pending tasks show how long they have
// been open as of now.
func Tasks(w io.Writer, s Style, tasks []model.Task, now time.Time) {
	fmt.Fprintf(w, "\n%s\n", s.paint(bold, "=== Tasks ==="))
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	for _, t := range tasks {
		fmt.Fprintf(w, "\n%s Task #%s\n", marker(s, t), s.paint(cyan, strconv.FormatInt(t.ID, 10)))
		fmt.Fprintf(w, "├─ Description: %s\n", t.Description)
		fmt.Fprintf(w, "├─ Status: %s\n", status(s, t))
		fmt.Fprintf(w, "├─ Created: %s\n", s.paint(blue, s.stamp(t.CreatedAt)))
		if t.CompletedAt != nil {
			fmt.Fprintf(w, "└─ Completed: %s\n", s.paint(green, s.stamp(*t.CompletedAt)))
		} else {
			fmt.Fprintf(w, "└─ Duration: %s\n", s.paint(magenta, FormatDuration(t.Elapsed(now))))
		}
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	}
}

// Table writes one line per task with fixed-width columns. Descriptions wider
// than the column are truncated by display width.
func Table(w io.Writer, s Style, tasks []model.Task, now time.Time) {
	idWidth := len("ID")
	for _, t := range tasks {
		if n := len(strconv.FormatInt(t.ID, 10)); n > idWidth {
			idWidth = n
		}
	}

	header := fmt.Sprintf("%s     %s  %s",
		runewidth.FillRight("ID", idWidth),
		runewidth.FillRight("DESCRIPTION", descWidth),
		"AGE / COMPLETED",
	)
	fmt.Fprintln(w, s.paint(bold, header))

	for _, t := range tasks {
		desc := runewidth.Truncate(t.Description, descWidth, "…")
		var when string
		if t.CompletedAt != nil {
			when = s.paint(green, s.stamp(*t.CompletedAt))
		} else {
			when = s.paint(magenta, FormatDuration(t.Elapsed(now)))
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			s.paint(cyan, runewidth.FillLeft(strconv.FormatInt(t.ID, 10), idWidth)),
			marker(s, t),
			runewidth.FillRight(desc, descWidth),
			when,
		)
	}
}

func Summary(w io.Writer, s Style, sum model.Summary) {
	fmt.Fprintf(w, "\n%s\n", s.paint(bold, "=== Summary ==="))
	fmt.Fprintf(w, "Total tasks: %s\n", s.paint(cyan, strconv.Itoa(sum.Total)))
	fmt.Fprintf(w, "Completed: %s\n", s.paint(green, strconv.Itoa(sum.Completed)))
	fmt.Fprintf(w, "Pending: %s\n", s.paint(yellow, strconv.Itoa(sum.Pending)))
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func marker(s Style, t model.Task) string {
	if t.Completed {
		return s.paint(green, "✓")
	}
	return s.paint(red, "○")
}

func status(s Style, t model.Task) string {
	if t.Completed {
		return s.paint(green, "Completed")
	}
	return s.paint(yellow, "Pending")
}
