package main

import "image/color"

const (
	// --- Frame timing ---
	MaxFrameTime = 0.25 // seconds; longer stalls are clamped

	// --- Camera ---
	ZoomButtonFactor = 1.25 // zoom factor per click on the +/- buttons

	// --- UI ---
	UIFontPath = "fonts/Roboto-Regular.ttf"
	UIFontSize = 14.0
)

var (
	// --- Colors ---
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
)
