// Package viz runs a provider and a text source inside a Bubble Tea
// program instead of the plain pacing loop.
//
// Frames advance on a tick every 1/fps. The text block is refreshed by a
// command on its own timer so a slow fetch never stalls rendering.
//
// # Key Bindings
//
//	Space - Pause/Resume the animation
//	S     - Toggle the population panel
//	R     - Refresh the text block now
//	Q     - Quit
package viz
