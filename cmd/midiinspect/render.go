package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Garik-/midiparser/pkg/midi"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#626262")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#909090"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
	typeStyle  = lipgloss.NewStyle().Width(22)
)

var typeColors = map[midi.EventType]lipgloss.Color{
	midi.NoteOnEvent:               "#22C55E",
	midi.NoteOffEvent:              "#EF4444",
	midi.ControlChangeEvent:        "#3B82F6",
	midi.ProgramChangeEvent:        "#A855F7",
	midi.PitchBendEvent:            "#EAB308",
	midi.MetaEventType:             "#9CA3AF",
	midi.PolyphonicAftertouchEvent: "#6366F1",
	midi.ChannelAftertouchEvent:    "#EC4899",
	midi.SysexEventType:            "#F97316",
}

func typeLabel(t midi.EventType) string {
	c, ok := typeColors[t]
	if !ok {
		c = "#9CA3AF"
	}
	return typeStyle.Foreground(c).Render(string(t))
}

func renderHeader(name string, h midi.Header) string {
	ticks := "N/A"
	if !h.TimeDivision.IsSMPTE() {
		ticks = fmt.Sprint(h.TimeDivision.TicksPerBeat)
	}

	rows := []string{
		titleStyle.Render("MIDI Header"),
		labelStyle.Render("File          ") + name,
		labelStyle.Render("Format        ") + fmt.Sprint(h.Format),
		labelStyle.Render("Tracks        ") + fmt.Sprint(h.NumTracks),
		labelStyle.Render("Ticks/Beat    ") + ticks,
		labelStyle.Render("Division Raw  ") + fmt.Sprint(h.TimeDivision.Raw),
	}
	if h.TimeDivision.IsSMPTE() {
		rows = append(rows,
			labelStyle.Render("SMPTE         ")+fmt.Sprintf("%d fps, %d ticks/frame", h.TimeDivision.FramesPerSecond, h.TimeDivision.TicksPerFrame))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderEvent(i int, te midi.TimedEvent, metrical bool) string {
	delta := fmt.Sprintf("Δ%d", te.Event.Delta())
	if te.Simultaneous {
		delta = "Δ0*"
	}

	pos := ""
	if metrical {
		pos = fmt.Sprintf("beat %d.%d", te.Beat, te.BarPosition+1)
	}

	return fmt.Sprintf("%s  %-8s %-10s %-12s %s%s",
		mutedStyle.Render(fmt.Sprintf("%04d", i)),
		delta,
		fmt.Sprintf("T=%d", te.AbsTicks),
		pos,
		typeLabel(te.Event.Type()),
		midi.Describe(te.Event))
}

// render writes a human readable dump of data. maxEvents <= 0 prints every event.
func render(w io.Writer, name string, data *midi.ParsedMidiData, maxEvents int) error {
	var b strings.Builder

	b.WriteString(renderHeader(name, data.Header))
	b.WriteString("\n")

	division := data.Header.TimeDivision
	for i, track := range data.Tracks {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Track %d (%d events, %d bytes)", i+1, len(track.Events), track.ChunkSize)))
		b.WriteString("\n")

		for j, te := range midi.Timeline(track, division) {
			if maxEvents > 0 && j >= maxEvents {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d more", len(track.Events)-maxEvents)))
				b.WriteString("\n")
				break
			}
			b.WriteString(renderEvent(j, te, !division.IsSMPTE()))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
