package ui

import "image/color"

// Board palette following the classic scheme: alternating box shading,
// black givens, green/red keystroke feedback.
var (
	whiteColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lightGrayColor = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	blackColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	greenColor     = color.NRGBA{R: 0, G: 140, B: 0, A: 255}
	redColor       = color.NRGBA{R: 220, G: 0, B: 0, A: 255}
	selectionColor = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	hintColor      = color.NRGBA{R: 255, G: 240, B: 150, A: 255}
	lineColor      = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	statusColor    = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	winColor       = color.NRGBA{R: 0, G: 110, B: 0, A: 255}
)
