package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each color to a theme style.
type Color uint8

// Colors used by the stage scene, named after the jurassic palette:
// leaf for the dragon, rock for the ground, volcano for the game over box,
// glow for the invincible dragon and sky for the backdrop.
const (
	ColorDefault Color = iota
	ColorLeaf
	ColorRock
	ColorVolcano
	ColorGlow
	ColorSky
	ColorGray
)
