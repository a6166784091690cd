package ebiten

import (
	"image/color"

	"darkmaze/pkg/engine/world"
)

// Colors
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall       = color.RGBA{60, 60, 80, 255}    // Dark gray-blue
	colorPath       = color.RGBA{160, 160, 180, 255} // Light gray
	colorStart      = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnd        = color.RGBA{100, 150, 255, 255} // Bright blue
	colorTreasure   = color.RGBA{255, 200, 100, 255} // Orange
	colorEnemy      = color.RGBA{255, 80, 80, 255}   // Bright red
)

const (
	defaultTileSize = 24
	minTileSize     = 4
	hudHeight       = 20
	tileMargin      = 1
	maxWindowWidth  = 1280
	maxWindowHeight = 900
)

// colorFor returns the fill colour of a cell value
func colorFor(c world.Cell) color.RGBA {
	switch c {
	case world.Path:
		return colorPath
	case world.Start:
		return colorStart
	case world.End:
		return colorEnd
	case world.Treasure:
		return colorTreasure
	case world.Enemy:
		return colorEnemy
	default:
		return colorWall
	}
}

// tileSizeFor picks the largest tile size, up to the default, that keeps a
// width × height maze inside the maximum window
func tileSizeFor(width, height int) int {
	size := defaultTileSize
	for size > minTileSize && (height*size > maxWindowWidth || width*size+hudHeight > maxWindowHeight) {
		size--
	}
	return size
}
