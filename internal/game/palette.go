package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Background RGB // gap lines between tiles
	Empty      RGB
	Food       RGB
	Body       RGB
	Head       RGB
}{
	Background: RGB{R: 16, G: 20, B: 16},
	Empty:      RGB{R: 32, G: 40, B: 32},
	Food:       RGB{R: 220, G: 70, B: 55},
	Body:       RGB{R: 60, G: 180, B: 70},
	Head:       RGB{R: 120, G: 235, B: 110},
}

// TileColor maps a tile category to its rendered colour. All four head
// orientations share one colour; orientation stays visible in the category
// itself for consumers that want it.
func TileColor(k TileKind) RGB {
	switch k {
	case TileFood:
		return Palette.Food
	case TileBody:
		return Palette.Body
	case TileHeadUp, TileHeadDown, TileHeadLeft, TileHeadRight:
		return Palette.Head
	default:
		return Palette.Empty
	}
}
