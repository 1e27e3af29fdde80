package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads UIFontPath if present, then falls back to the embedded Go
// Regular face and finally to basicfont.Face7x13.
func LoadUIFont() text.Face {
	if data, err := os.ReadFile(UIFontPath); err == nil {
		face, err := newFace(data)
		if err == nil {
			log.Printf("[font] %s", UIFontPath)
			return text.NewGoXFace(face)
		}
		log.Printf("[font] %s: %v", UIFontPath, err)
	}

	face, err := newFace(goregular.TTF)
	if err != nil {
		log.Println("[font] Go Regular failed, using basic font:", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	log.Printf("[font] Go Regular (embedded)")
	return text.NewGoXFace(face)
}

func newFace(data []byte) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: UIFontSize, DPI: 72, Hinting: font.HintingFull})
}
