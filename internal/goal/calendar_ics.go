package goal

import (
	"fmt"
	"strings"
	"time"

	"goalforge/internal/model"
)

const icsStampLayout = "20060102T150405Z"

// BuildScheduleICS renders a goal's schedule as an iCalendar document, one
// timed event per scheduled task, so the surrounding calendar app (or any
// external client) can subscribe to the plan.
func BuildScheduleICS(g model.Goal, now time.Time) (string, error) {
	if g.Schedule == nil {
		return "", fmt.Errorf("goal has no schedule to export")
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Goalforge//Schedule Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + escapeICSText(calendarName(g)),
	}

	stamp := now.UTC().Format(icsStampLayout)
	for pi := range g.Schedule.Phases {
		p := &g.Schedule.Phases[pi]
		for ti := range p.Tasks {
			t := &p.Tasks[ti]

			summary := strings.TrimSpace(t.Title)
			if summary == "" {
				summary = "Goalforge session"
			}
			if t.Completed {
				summary = "[done] " + summary
			}

			dur := t.DurationMinutes
			if dur <= 0 {
				dur = 30
			}

			lines = append(lines,
				"BEGIN:VEVENT",
				"UID:"+escapeICSText(fmt.Sprintf("task-%s@goalforge", t.ID)),
				"DTSTAMP:"+stamp,
				"SUMMARY:"+escapeICSText(summary),
				"DTSTART:"+t.ScheduledDate.UTC().Format(icsStampLayout),
				fmt.Sprintf("DURATION:PT%dM", dur),
				"DESCRIPTION:"+escapeICSText(fmt.Sprintf("%s (%s)", g.Title, p.Title)),
				"END:VEVENT",
			)
		}
	}

	lines = append(lines, "END:VCALENDAR", "")
	return strings.Join(lines, "\r\n"), nil
}

func calendarName(g model.Goal) string {
	title := strings.TrimSpace(g.Title)
	if title == "" {
		return "Goalforge"
	}
	return "Goalforge: " + title
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
