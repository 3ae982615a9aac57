package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/adminboard/internal/notify"
)

// Layout defaults.
const (
	defaultWidth  = 100
	defaultHeight = 24

	filterInputCharLimit = 64
	filterInputWidth     = 32
	formInputCharLimit   = 128
	formInputWidth       = 40
)

// Color palette.
const (
	colorAccent  = lipgloss.Color("57")
	colorHigh    = lipgloss.Color("229")
	colorSubtle  = lipgloss.Color("241")
	colorGreen   = lipgloss.Color("42")
	colorYellow  = lipgloss.Color("214")
	colorRed     = lipgloss.Color("196")
	colorBlue    = lipgloss.Color("39")
	colorNeutral = lipgloss.Color("250")
)

// Shared styles.
//
//nolint:gochecknoglobals // Style values are immutable and reused by every view.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorNeutral).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(colorSubtle)

	TableSelectedStyle = lipgloss.NewStyle().Foreground(colorHigh).Background(colorAccent)

	CurrentPageStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHigh).Background(colorAccent)

	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
)

// BadgeStyle returns the style for a status badge value.
func BadgeStyle(value string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch value {
	case "Active", "In Stock":
		return base.Foreground(colorGreen)
	case "Inactive", "Low Stock":
		return base.Foreground(colorYellow)
	case "Suspended", "Out of Stock":
		return base.Foreground(colorRed)
	default:
		return base.Foreground(colorNeutral)
	}
}

// ToastStyle returns the style for a notification of the given severity.
func ToastStyle(s notify.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch s {
	case notify.SeveritySuccess:
		return base.Foreground(colorGreen)
	case notify.SeverityWarning:
		return base.Foreground(colorYellow)
	case notify.SeverityError:
		return base.Foreground(colorRed)
	case notify.SeverityInfo:
		return base.Foreground(colorBlue)
	default:
		return base
	}
}
