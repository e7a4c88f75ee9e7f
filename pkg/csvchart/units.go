package csvchart

import "gonum.org/v1/plot/vg"

// DefaultDPI is the screen resolution used to convert pixel sizes.
const DefaultDPI = 96

// PixelsToLength converts a pixel count at the given DPI to a vg.Length.
// 1 inch = 72 points, and at 96 DPI, 1 inch = 96 pixels.
func PixelsToLength(px, dpi int) vg.Length {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return vg.Length(px) * vg.Inch / vg.Length(dpi)
}
