package render

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD    FontName = "hud"
	Banner FontName = "banner"
)

var faces = map[FontName]text.Face{}

// LoadFonts builds the HUD faces from a TrueType font. With no font data the
// built-in 7x13 bitmap face is used for every size.
func LoadFonts(ttf []byte) error {
	if len(ttf) == 0 {
		fallback := text.NewGoXFace(basicfont.Face7x13)
		faces[HUD] = fallback
		faces[Banner] = fallback
		return nil
	}

	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	faces[HUD] = goXFace(fontData, 12)
	faces[Banner] = goXFace(fontData, 24)
	return nil
}

func goXFace(f *truetype.Font, size float64) text.Face {
	var face font.Face = truetype.NewFace(f, &truetype.Options{Size: size})
	return text.NewGoXFace(face)
}

func (f FontName) Get() text.Face {
	face, ok := faces[f]
	if !ok {
		// Fonts were never loaded
		face = text.NewGoXFace(basicfont.Face7x13)
		faces[f] = face
	}
	return face
}

func drawText(screen *ebiten.Image, s string, name FontName, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, name.Get(), op)
}
