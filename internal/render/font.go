package render

const (
	FontMin = 11
	FontMax = 48
)

// FontSize maps count linearly from [minCount,maxCount] onto [fontMin,fontMax], rounding down.
// When every selected word has the same count the range is empty and fontMax is returned.
func FontSize(count, minCount, maxCount, fontMin, fontMax int) int {
	if maxCount <= minCount {
		return fontMax
	}
	count = max(minCount, min(count, maxCount))
	return (fontMax-fontMin)*(count-minCount)/(maxCount-minCount) + fontMin
}

// DefaultFontSize is FontSize with the FontMin..FontMax class range of tagcloud.css.
func DefaultFontSize(count, minCount, maxCount int) int {
	return FontSize(count, minCount, maxCount, FontMin, FontMax)
}
