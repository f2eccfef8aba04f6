// Package style centralizes the console chrome's palette, fonts, and the
// drawing helpers the screen renderers share.
package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Console palette
var (
	Background  = color.NRGBA{0x14, 0x14, 0x19, 0xff} // console body
	HUD         = color.NRGBA{0x0a, 0x0a, 0x0a, 0xff} // top and bottom bars
	Divider     = color.NRGBA{0x3c, 0x3c, 0x3c, 0xff}
	Text        = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextDim     = color.NRGBA{0xc8, 0xc8, 0xc8, 0xff}
	Accent      = color.NRGBA{0x00, 0xc8, 0xff, 0xff} // cyan highlight
	JoyconLeft  = color.NRGBA{0x00, 0x78, 0xc8, 0xff}
	JoyconRight = color.NRGBA{0xff, 0x3b, 0x30, 0xff}
	PowerOn     = color.NRGBA{0x00, 0xdc, 0x64, 0xff}
	PowerOff    = color.NRGBA{0x64, 0x64, 0x64, 0xff}
	Bezel       = color.NRGBA{0x0f, 0x0f, 0x0f, 0xff}
	ScreenBase  = color.NRGBA{0x0a, 0x14, 0x1e, 0xff} // powered display
	ScreenDark  = color.NRGBA{0x05, 0x05, 0x05, 0xff} // display while off
	Track       = color.NRGBA{0x3c, 0x3c, 0x3c, 0xff} // slider troughs
	Highlight   = color.NRGBA{0xff, 0xff, 0xff, 0x50} // hover wash
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	titleFace text.Face
	bodyFace  text.Face
	labelFace text.Face
	glyphFace text.Face
	toastFace text.Face
)

func mustSource(ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Fatalf("parsing builtin font: %v", err)
	}
	return src
}

func regular() *text.GoTextFaceSource {
	if regularSource == nil {
		regularSource = mustSource(goregular.TTF)
	}
	return regularSource
}

func bold() *text.GoTextFaceSource {
	if boldSource == nil {
		boldSource = mustSource(gobold.TTF)
	}
	return boldSource
}

// TitleFace returns the bold face used for screen titles.
func TitleFace() text.Face {
	if titleFace == nil {
		titleFace = &text.GoTextFace{Source: bold(), Size: 22}
	}
	return titleFace
}

// BodyFace returns the face used for body rows on the info screens.
func BodyFace() text.Face {
	if bodyFace == nil {
		bodyFace = &text.GoTextFace{Source: regular(), Size: 16}
	}
	return bodyFace
}

// LabelFace returns the small face used under icons and on tiles.
func LabelFace() text.Face {
	if labelFace == nil {
		labelFace = &text.GoTextFace{Source: regular(), Size: 14}
	}
	return labelFace
}

// GlyphFace returns the large bold face used for tile glyphs.
func GlyphFace() text.Face {
	if glyphFace == nil {
		glyphFace = &text.GoTextFace{Source: bold(), Size: 32}
	}
	return glyphFace
}

// ToastFace returns the bitmap face used for notification toasts.
func ToastFace() text.Face {
	if toastFace == nil {
		toastFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return toastFace
}
