package magplot

import (
	"fmt"
	"strings"
)

// DeviceColumn is the default name of the column identifying the magnet.
const DeviceColumn = "Magnet"

// DeviceGroup is a set of devices plotted together in one figure.
type DeviceGroup struct {
	Label   string   `koanf:"label" yaml:"label,omitempty"`
	Devices []string `koanf:"devices" yaml:"devices"`
}

// Numbered returns the group {prefix(1), ..., prefix(n)}.
func Numbered(prefix string, n int) DeviceGroup {
	g := DeviceGroup{}
	for i := 1; i <= n; i++ {
		g.Devices = append(g.Devices, fmt.Sprintf("%s(%d)", prefix, i))
	}
	g.Label = GroupLabel(g.Devices)
	return g
}

// DefaultDeviceGroups are the correctors, bending magnets and quadrupoles
// of the beam line.
var DefaultDeviceGroups = []DeviceGroup{
	Numbered("VKICKER", 5),
	Numbered("HKICKER", 5),
	Numbered("RBEND", 7),
	Numbered("QUADRUPOLE", 7),
}

// GroupLabel derives a label from the first device: its numeric suffix is
// removed and the rest pluralized, "VKICKER(1)" gives "VKICKERs".
func GroupLabel(devices []string) string {
	if len(devices) == 0 {
		return ""
	}
	first := strings.TrimSpace(devices[0])
	if strings.HasSuffix(first, ")") {
		if i := strings.LastIndex(first, "("); i > 0 {
			first = first[:i]
		}
	}
	first = strings.TrimRight(first, "0123456789_- ")
	return first + "s"
}

// label returns the explicit or derived label of g.
func (g DeviceGroup) label() string {
	if g.Label != "" {
		return g.Label
	}
	return GroupLabel(g.Devices)
}
