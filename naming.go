package magplot

import (
	"path/filepath"
	"strings"
)

var unsafeChars = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_")

func component(s string) string {
	return unsafeChars.Replace(strings.TrimSpace(s))
}

func withExt(base, format string) string {
	if format == "" {
		format = "png"
	}
	return base + "." + strings.ToLower(format)
}

// GroupFileName is the output file of the figure of group label plotted
// over x, e.g. "z_shift[m]_VKICKERs.png".
func GroupFileName(dir, x, label, format string) string {
	return filepath.Join(dir, withExt(component(x)+"_"+component(label), format))
}

// MetricFileName is the output file of the figure of metric column mean
// plotted over x, e.g. "x_shift_Mean(d_x).png".
func MetricFileName(dir, x, mean, format string) string {
	return filepath.Join(dir, withExt(component(x)+"_"+component(mean), format))
}

// HistFileName is the output file of the histogram of metric column mean read
// from input: everything of the input's base name up to the first dot is
// kept, e.g. "RBEND_variants_Mean(d_x).png".
func HistFileName(dir, input, mean, format string) string {
	base := filepath.Base(input)
	if i := strings.Index(base, "."); i != -1 {
		base = base[:i]
	}
	return filepath.Join(dir, withExt(component(base)+"_"+component(mean), format))
}
