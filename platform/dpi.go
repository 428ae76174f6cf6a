package platform

// StandardDPI is the baseline density scale factors are computed against.
const StandardDPI = 96.0

// ScaleFactor returns the UI scale for a display reporting the given DPI.
func ScaleFactor(dpi float32) float32 {
	return dpi / StandardDPI
}

// ScaleValue scales a single dimension to the given DPI.
func ScaleValue(value, dpi float32) float32 {
	return value * ScaleFactor(dpi)
}

// ScalePoint scales a point to the given DPI.
func ScalePoint(x, y, dpi float32) (float32, float32) {
	f := ScaleFactor(dpi)
	return x * f, y * f
}

// ScaleSize scales a size to the given DPI.
func ScaleSize(width, height, dpi float32) (float32, float32) {
	f := ScaleFactor(dpi)
	return width * f, height * f
}
