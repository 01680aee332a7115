package bus

import (
	"fmt"
	"strconv"
	"strings"
)

// ChannelType identifies a speaker position within a layout.
type ChannelType int

const (
	ChannelDiscrete ChannelType = iota
	ChannelMono
	ChannelLeft
	ChannelRight
	ChannelCentre
	ChannelLFE
	ChannelLeftSurround
	ChannelRightSurround
	ChannelLeftSurroundRear
	ChannelRightSurroundRear
)

// Abbrev returns the short speaker name used on meters and buttons.
func (c ChannelType) Abbrev() string {
	switch c {
	case ChannelMono:
		return "M"
	case ChannelLeft:
		return "L"
	case ChannelRight:
		return "R"
	case ChannelCentre:
		return "C"
	case ChannelLFE:
		return "Lfe"
	case ChannelLeftSurround:
		return "Ls"
	case ChannelRightSurround:
		return "Rs"
	case ChannelLeftSurroundRear:
		return "Lrs"
	case ChannelRightSurroundRear:
		return "Rrs"
	default:
		return "?"
	}
}

// Layout is an ordered set of channels, e.g. 5.1 = L R C Lfe Ls Rs.
// A Layout with no channels is disabled.
type Layout struct {
	Name     string
	Channels []ChannelType
}

// Predefined layouts
var (
	Disabled    = Layout{Name: "Disabled"}
	Mono        = Layout{Name: "Mono", Channels: []ChannelType{ChannelMono}}
	Stereo      = Layout{Name: "Stereo", Channels: []ChannelType{ChannelLeft, ChannelRight}}
	LCR         = Layout{Name: "LCR", Channels: []ChannelType{ChannelLeft, ChannelRight, ChannelCentre}}
	Surround5_0 = Layout{Name: "5.0 Surround", Channels: []ChannelType{
		ChannelLeft, ChannelRight, ChannelCentre, ChannelLeftSurround, ChannelRightSurround,
	}}
	Surround5_1 = Layout{Name: "5.1 Surround", Channels: []ChannelType{
		ChannelLeft, ChannelRight, ChannelCentre, ChannelLFE, ChannelLeftSurround, ChannelRightSurround,
	}}
	Surround7_1 = Layout{Name: "7.1 Surround", Channels: []ChannelType{
		ChannelLeft, ChannelRight, ChannelCentre, ChannelLFE,
		ChannelLeftSurround, ChannelRightSurround, ChannelLeftSurroundRear, ChannelRightSurroundRear,
	}}
)

// Discrete returns an unnamed layout of n channels.
func Discrete(n int) Layout {
	ch := make([]ChannelType, n)
	return Layout{Name: fmt.Sprintf("Discrete #%d", n), Channels: ch}
}

// Size returns the number of channels.
func (l Layout) Size() int {
	return len(l.Channels)
}

// IsDisabled reports whether the layout has no channels.
func (l Layout) IsDisabled() bool {
	return len(l.Channels) == 0
}

// IsDiscrete reports whether any channel lacks a speaker position.
func (l Layout) IsDiscrete() bool {
	for _, c := range l.Channels {
		if c == ChannelDiscrete {
			return true
		}
	}
	return false
}

// ChannelName returns the abbreviation of channel i, or its 1-based index
// for discrete channels.
func (l Layout) ChannelName(i int) string {
	if i < 0 || i >= len(l.Channels) {
		return ""
	}
	if l.Channels[i] == ChannelDiscrete {
		return strconv.Itoa(i + 1)
	}
	return l.Channels[i].Abbrev()
}

// Equal reports whether two layouts have the same channels in the same order.
func (l Layout) Equal(o Layout) bool {
	if len(l.Channels) != len(o.Channels) {
		return false
	}
	for i := range l.Channels {
		if l.Channels[i] != o.Channels[i] {
			return false
		}
	}
	return true
}

// String returns the layout name.
func (l Layout) String() string {
	return l.Name
}

// ParseLayout accepts "mono", "stereo", "lcr", "5.0", "5.1", "7.1",
// "disabled" or a channel count for a discrete layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "none":
		return Disabled, nil
	case "mono", "1.0":
		return Mono, nil
	case "stereo", "2.0":
		return Stereo, nil
	case "lcr", "3.0":
		return LCR, nil
	case "5.0":
		return Surround5_0, nil
	case "5.1":
		return Surround5_1, nil
	case "7.1":
		return Surround7_1, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > MaxChannels {
		return Layout{}, fmt.Errorf("unknown channel layout %q", s)
	}
	return Discrete(n), nil
}
