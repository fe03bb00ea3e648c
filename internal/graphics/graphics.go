package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// background is a dark neutral so the lit voxel surface and grid read well.
var background = rl.NewColor(18, 18, 22, 255)

// Run opens the window and drives the main loop. Each frame it calls update
// (input, camera, pending results), then clears the screen and calls draw.
// This keeps the graphics layer separate from the console and scene content.
// ESC toggles the console, not quit; close via the window button.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
