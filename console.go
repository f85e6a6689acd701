package filelog

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// mirror writes line to the console when mirroring is enabled and the last written
// level passes the console threshold. The line is colored with that level's color
// and the color is reset afterwards.
func (l *Logger) mirror(line string) {
	if !l.consoleEcho || l.console == nil || l.consoleLevel == nil {
		return
	}
	level := l.lastLevel
	if level == nil {
		level = l.registry.Default()
	}
	if !l.consoleLevel.GE(level) {
		return
	}

	c := color.New(level.Color)
	if l.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	if _, err := c.Fprintln(l.console, line); err != nil {
		l.diag.Debug("console write failed")
	}
}

// isTerminal reports whether w is a terminal that accepts color sequences.
func isTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
