package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
	// Now is the reference time for minute countdowns; zero means time.Now
	Now time.Time
	// ShowCodes prints full line and stop codes next to short names
	ShowCodes bool
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

func (o TableOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// RenderStopTimes renders the upcoming passages at a stop
func RenderStopTimes(w io.Writer, stop models.StopRef, times []models.StopTime, opts TableOptions) {
	c := opts.colors()

	if stop.Name != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n\n", c.Header(stop.Name), c.Muted("(%s)", stop.Code))
	}

	if len(times) == 0 {
		_, _ = fmt.Fprintln(w, "No stop times found.")
		return
	}

	now := opts.now()
	for i := range times {
		st := &times[i]

		timeStr := "--:--"
		if st.Time != nil {
			timeStr = st.Time.Format("15:04")
		}

		line := st.Line
		if len(line) > 8 {
			line = line[:8]
		}

		dest := c.Dest(st.Destination)
		if st.Issue != "" {
			dest += " " + c.Issue("[%s]", st.Issue)
		}

		_, _ = fmt.Fprintf(w, "%s %s  %s  %s\n",
			c.Time(timeStr),
			c.FormatMinutes(st.MinutesUntil(now)),
			c.Line("%-8s", line),
			dest,
		)

		if opts.ShowCodes {
			_, _ = fmt.Fprintf(w, "                         %s %s\n", c.Muted("Line:"), c.Code(st.LineCode))
		}
	}
}

// RenderStops renders stops as a formatted list
func RenderStops(w io.Writer, stops []models.Stop, opts TableOptions) {
	if len(stops) == 0 {
		_, _ = fmt.Fprintln(w, "No stops found.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Found stops:"))
	_, _ = fmt.Fprintln(w)

	for i := range stops {
		s := &stops[i]
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Line(s.Name), c.Code(s.Code))
		if s.Address != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Address:"), s.Address)
		}
		if lines := s.LineNames(); len(lines) > 0 {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Lines:"), strings.Join(lines, ", "))
		}
		if s.Coordinates != (models.Coordinates{}) {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Location:"), s.Coordinates)
		}
		if s.Code != "" {
			_, _ = fmt.Fprintf(w, "    %s crtm stops times %s\n", c.Muted("Use:"), s.Code)
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderLines renders lines, one per row
func RenderLines(w io.Writer, lines []models.Line, opts TableOptions) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "No lines found.")
		return
	}

	c := opts.colors()

	for i := range lines {
		l := &lines[i]
		name := c.Line("%-6s", l.ShortDescription)
		if l.IsNight() {
			name = c.Night("%-6s", l.ShortDescription)
		}
		_, _ = fmt.Fprintf(w, "%s %s  %s\n", name, c.Code("%-12s", l.Code), l.Description)
	}
}

// RenderLineInfo renders line details with their itineraries
func RenderLineInfo(w io.Writer, infos []models.LineInformation, opts TableOptions) {
	if len(infos) == 0 {
		_, _ = fmt.Fprintln(w, "No line information found.")
		return
	}

	c := opts.colors()

	for i := range infos {
		info := &infos[i]
		_, _ = fmt.Fprintf(w, "%s %s %s\n", c.Header("Line:"), c.Line(info.ShortDescription), c.Code("(%s)", info.Code))
		if info.Description != "" {
			_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Route:"), info.Description)
		}
		tp := info.LineTimePlanning
		if tp.StartService != "" || tp.EndService != "" {
			_, _ = fmt.Fprintf(w, "%s %s - %s\n", c.Muted("Service:"), tp.StartService, tp.EndService)
		}
		if m := info.Municipalities(); len(m) > 0 {
			_, _ = fmt.Fprintf(w, "%s %s\n", c.Muted("Municipalities:"), strings.Join(m, ", "))
		}

		its := info.Itineraries()
		if len(its) > 0 {
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, c.Header("Itineraries:"))
		}
		for _, it := range its {
			_, _ = fmt.Fprintf(w, "  %d  %s %s\n", it.Direction, it.Name, c.Muted("(%s)", it.Code))
			stops := it.Stops.StopInformation
			for j := range stops {
				symbol := "├"
				if j == 0 {
					symbol = "┌"
				} else if j == len(stops)-1 {
					symbol = "└"
				}
				_, _ = fmt.Fprintf(w, "     %s %s %s\n", c.Muted(symbol), stops[j].Name, c.Code(stops[j].Code))
			}
		}
		if i < len(infos)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

// RenderOffices renders customer service offices
func RenderOffices(w io.Writer, offices []models.Office, opts TableOptions) {
	if len(offices) == 0 {
		_, _ = fmt.Fprintln(w, "No offices found.")
		return
	}

	c := opts.colors()

	for i := range offices {
		o := &offices[i]
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Line(o.Name), c.Muted("[%s]", o.Type))
		if o.Address != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Address:"), o.Address)
		}
		if o.OpenTime != "" {
			_, _ = fmt.Fprintf(w, "    %s %s\n", c.Muted("Hours:"), o.OpenTime)
		}
		_, _ = fmt.Fprintln(w)
	}
}

// RenderRegistry renders identifier to code mappings in server order
func RenderRegistry(w io.Writer, reg *catalog.Registry, opts TableOptions) {
	if reg == nil || reg.Len() == 0 {
		_, _ = fmt.Fprintln(w, "No entries found.")
		return
	}

	c := opts.colors()

	ids := reg.Identifiers()
	width := 0
	for _, id := range ids {
		if len(id) > width {
			width = len(id)
		}
	}

	for _, id := range ids {
		code, _ := reg.Lookup(id)
		entry, _ := reg.Entry(id)
		_, _ = fmt.Fprintf(w, "%s %s  %s\n", c.Line("%-*s", width, id), c.Code("%6d", code), c.Muted(entry.Name))
	}

	for _, col := range reg.Collisions() {
		_, _ = fmt.Fprintf(w, "%s %s: %q (%s) replaced %q (%s)\n",
			c.Issue("collision"), col.Identifier,
			col.Current.Name, col.Current.Code,
			col.Previous.Name, col.Previous.Code,
		)
	}
}
