package backend

import (
	"fmt"
	"regexp"

	"github.com/gdamore/tcell/v2/terminfo"
	// Registers the common terminal types (ansi, vt100, vt102, vt220, xterm).
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// Capabilities holds the control sequences the renderer emits.
type Capabilities struct {
	Name           string
	HideCursor     string
	ShowCursor     string
	ClearScreen    string
	ClearEOL       string
	EnterReverse   string
	ExitAttributes string

	ti *terminfo.Terminfo
}

// VT100 returns the built-in VT100 sequences. They are used for any
// capability the terminfo entry does not define.
func VT100() Capabilities {
	return Capabilities{
		Name:           "vt100",
		HideCursor:     "\x1b[?25l",
		ShowCursor:     "\x1b[?25h",
		ClearScreen:    "\x1b[2J",
		ClearEOL:       "\x1b[K",
		EnterReverse:   "\x1b[7m",
		ExitAttributes: "\x1b[m",
	}
}

// LookupCapabilities resolves the capabilities for the named terminal from
// the terminfo database. An unknown terminal yields the VT100 table together
// with the lookup error, so callers may log it and carry on.
func LookupCapabilities(name string) (Capabilities, error) {
	caps := VT100()
	if name == "" {
		return caps, nil
	}

	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return caps, fmt.Errorf("terminal %q: %w", name, err)
	}

	caps.Name = ti.Name
	caps.ti = ti
	override(&caps.HideCursor, ti.HideCursor)
	override(&caps.ShowCursor, ti.ShowCursor)
	override(&caps.ClearScreen, ti.Clear)
	override(&caps.EnterReverse, ti.Reverse)
	override(&caps.ExitAttributes, ti.AttrOff)
	return caps, nil
}

// MoveCursor returns the sequence placing the cursor at the 0-based screen
// position.
func (c Capabilities) MoveCursor(row, col int) string {
	if c.ti != nil && c.ti.SetCursor != "" {
		return stripPadding(c.ti.TGoto(col, row))
	}
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}

// Home returns the sequence placing the cursor at the top-left corner.
func (c Capabilities) Home() string {
	return c.MoveCursor(0, 0)
}

func override(dst *string, capability string) {
	if s := stripPadding(capability); s != "" {
		*dst = s
	}
}

var paddingRe = regexp.MustCompile(`\$<[0-9.]*[*/]*>`)

// stripPadding removes terminfo delay specifications such as "$<50>".
// The editor redraws whole frames and does not need them.
func stripPadding(s string) string {
	return paddingRe.ReplaceAllString(s, "")
}
