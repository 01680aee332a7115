package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/justyntemme/blockfx/pkg/config"
	"github.com/justyntemme/blockfx/pkg/dsp/oscillator"
	"github.com/justyntemme/blockfx/pkg/framework/debug"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/host"
	"github.com/justyntemme/blockfx/pkg/plugins/surround"
)

const pollInterval = 50 * time.Millisecond

func runMonitor(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)
	layoutName := fs.String("layout", cfg.Surround.Layout, "channel layout (mono, stereo, lcr, 5.0, 5.1, 7.1 or a count)")
	dwell := fs.Float64("dwell", 2, "seconds the test burst stays on each channel")
	seconds := fs.Float64("seconds", 10, "run time when not attached to a terminal")
	probe := fs.Int("probe", 0, "channel for the probe tone when not attached to a terminal (1-based, 0 for none)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Surround.Layout = *layoutName
	layout, err := cfg.SurroundLayout()
	if err != nil {
		return err
	}

	mon := surround.New()
	h := host.New(mon)
	if err := h.Prepare(plugin.Config{
		SampleRate:   cfg.Audio.SampleRate,
		MaxBlockSize: cfg.Audio.BlockSize,
		Main:         layout,
	}); err != nil {
		return err
	}
	defer h.Release()

	ctx, cancel := context.WithCancel(context.Background())
	feed := newBurstFeeder(h, *dwell)
	done := make(chan struct{})
	go func() {
		defer close(done)
		feed.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if *probe > 0 {
			mon.Select(*probe - 1)
		}
		return printActivity(ctx, mon, time.Duration(*seconds*float64(time.Second)))
	}

	p := tea.NewProgram(newMonitorModel(mon), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// burstFeeder drives the monitor in real time with a tone burst that
// moves to the next channel every dwell seconds.
type burstFeeder struct {
	h     *host.Host
	dwell int
	osc   *oscillator.Oscillator
	input [][]float32
	log   *debug.Logger
}

func newBurstFeeder(h *host.Host, dwell float64) *burstFeeder {
	cfg := h.Config()
	return &burstFeeder{
		h:     h,
		dwell: max(1, int(dwell*cfg.SampleRate)),
		osc:   oscillator.New(cfg.SampleRate, 1000),
		input: channels(cfg.MainChannels(), cfg.MaxBlockSize),
		log:   debug.Default().With("monitor"),
	}
}

// burstChannel returns the channel carrying the burst at sample position.
func burstChannel(position int64, dwell, numChannels int) int {
	return int(position/int64(dwell)) % numChannels
}

func (f *burstFeeder) Run(ctx context.Context) {
	cfg := f.h.Config()
	n := cfg.MaxBlockSize
	period := time.Duration(float64(n) / cfg.SampleRate * float64(time.Second))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var position int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		target := burstChannel(position, f.dwell, len(f.input))
		for ch := range f.input {
			if ch == target {
				f.osc.FillSine(f.input[ch])
			} else {
				clear(f.input[ch])
			}
		}
		if err := f.h.ProcessBlock(f.input, nil, n, nil); err != nil {
			f.log.Error("process: %v", err)
			return
		}
		position += int64(n)
	}
}

func printActivity(ctx context.Context, mon *surround.Processor, d time.Duration) error {
	deadline := time.After(d)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	var activity []bool
	for {
		select {
		case <-deadline:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		activity = mon.Activity(activity)
		var sb strings.Builder
		for ch, on := range activity {
			mark := " "
			if on {
				mark = "*"
			}
			fmt.Fprintf(&sb, "%4s%s", mon.ChannelName(ch), mark)
		}
		fmt.Println(sb.String())
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF87"))
	idleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#585858"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

type monitorModel struct {
	mon      *surround.Processor
	activity []bool
	selected int
	quitting bool
}

func newMonitorModel(mon *surround.Processor) monitorModel {
	return monitorModel{
		mon:      mon,
		activity: make([]bool, mon.NumChannels()),
		selected: -1,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tick()
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			ch := int(msg.String()[0] - '1')
			if ch < len(m.activity) {
				m.mon.Select(ch)
				m.selected = ch
			}
		}
	case tickMsg:
		m.activity = m.mon.Activity(m.activity)
		return m, tick()
	}
	return m, nil
}

func (m monitorModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Surround monitor  %s", m.mon.Config().Main)))
	sb.WriteString("\n\n")

	for ch, on := range m.activity {
		label := fmt.Sprintf("%d %-4s", ch+1, m.mon.ChannelName(ch))
		if ch == m.selected {
			label = selectedStyle.Render(label)
		}
		dot := idleStyle.Render("○ idle")
		if on {
			dot = activeStyle.Render("● active")
		}
		fmt.Fprintf(&sb, "  %s %s\n", label, dot)
	}

	sb.WriteString("\n")
	if m.selected >= 0 {
		sb.WriteString(selectedStyle.Render(fmt.Sprintf("probe tone sent to %s", m.mon.ChannelName(m.selected))))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render(fmt.Sprintf("1-%d: probe tone  q: quit", len(m.activity))))
	sb.WriteString("\n")
	return sb.String()
}
