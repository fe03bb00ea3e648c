// Package console is the in-window command line, toggled with ESC. When
// open it captures typing and draws the recent log lines above an input bar;
// when closed nothing is drawn and the camera gets the input.
package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/commands"
	"voxelview/internal/logger"
)

const (
	barHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	borderColor = rl.NewColor(80, 80, 80, 255)
	histBgColor = rl.NewColor(24, 24, 24, 240)
	textColor   = rl.NewColor(230, 230, 230, 255)
	histColor   = rl.NewColor(180, 180, 180, 255)
)

// Console reads command lines and runs them through the registry; input and
// errors both land in the logger, which doubles as the visible history.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed console. Press ESC to open it.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC (toggle), and while open: typing, paste, backspace,
// and enter (run the line). Call once per frame before the camera update.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
	}
	if !c.open {
		return
	}

	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS).
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			c.inputBuf += pasted
		}
	} else {
		for {
			ch := rl.GetCharPressed()
			if ch == 0 {
				break
			}
			c.inputBuf += string(rune(ch))
		}
	}

	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}

	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		args := commands.Parse(line)
		if len(args) == 0 {
			return
		}
		c.log.Log(prompt + line)
		if err := c.reg.Execute(args); err != nil {
			c.log.Log(err.Error())
		}
	}
}

// Draw draws the input bar at the bottom and the recent log lines above it.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - barHeight

	lines := c.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	histTop := barY - int32(len(lines))*lineHeight - padding
	rl.DrawRectangle(0, histTop, screenW, barY-histTop, histBgColor)
	for i, line := range lines {
		y := histTop + padding/2 + int32(i)*lineHeight
		rl.DrawText(line, padding, y, fontSize, histColor)
	}

	rl.DrawRectangle(0, barY, screenW, barHeight, barColor)
	rl.DrawLine(0, barY, screenW, barY, borderColor)
	rl.DrawText(prompt+c.inputBuf+"_", padding, barY+(barHeight-fontSize)/2, fontSize, textColor)
}
