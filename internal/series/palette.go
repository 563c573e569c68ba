package series

// palette is indexed by insertion order; it wraps around after the last color.
var palette = []string{
	"#0382a8",
	"#e6553a",
	"#2ca02c",
	"#9467bd",
	"#f2a900",
	"#17becf",
	"#d62728",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
}

// PaletteColor returns the color for the i-th vehicle added to a comparison.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}
