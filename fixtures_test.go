package magplot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// groupCSV has two shifts for some of the devices of the default groups
// plus one device which belongs to no group.
var groupCSV = `Magnet,z_shift[m],Mean(d_x),RMS(d_x),Mean(d_y),RMS(d_y),Mean(d_sx),RMS(d_sx),Mean(d_sy),RMS(d_sy)
VKICKER(1),0.001,0.0001,0.00001,0.0002,0.00002,1.5,0.1,2.5,0.2
VKICKER(1),0.002,0.0002,0.00002,0.0004,0.00004,3.0,0.2,5.0,0.4
VKICKER(2),0.001,-0.0001,0.00001,0.0001,0.00001,-1.5,0.1,1.0,0.1
VKICKER(2),0.002,-0.0002,,0.0002,0.00002,-3.0,0.2,2.0,0.2
HKICKER(3),0.001,0.0003,0.00003,0,0,0.5,0.05,0,0
RBEND(1),0.001,0.001,0.0001,0.001,0.0001,10,1,10,1
QUADRUPOLE(7),0.001,nan,,0.0005,0.00005,4,0.4,4,0.4
MONITOR(1),0.001,0.1,0.1,0.1,0.1,100,10,100,10
`

// metricCSV has six identifier columns followed by metric columns; the
// d_y columns are all zero.
var metricCSV = `Magnet,Type,s,l,k1,x_shift,Mean(d_x),RMS(d_x),Mean(d_y),RMS(d_y),Mean(d_s),RMS(d_s)
RBEND(1),SBEND,1.0,2.0,0,0.001,0.01,0.001,0,0,0.5,0.01
RBEND(1),SBEND,1.0,2.0,0,0.002,0.02,0.002,0,0,1.0,0.02
QUADRUPOLE(1),QUAD,3.0,0.5,1.2,0.001,0.03,0.003,0,0,0,0.01
QUADRUPOLE(1),QUAD,3.0,0.5,1.2,0.002,0.06,0.006,0,0,0,0.02
VKICKER(1),KICK,5.0,0.2,0,0.001,0.005,,0,0,0.1,0.001
`

// histCSV has seven identifier columns; Mean(d_y) has missing values and
// Mean(d_z) has none at all.
var histCSV = `Magnet,Variant,Type,s,l,angle,seed,Mean(d_x),RMS(d_x),Mean(d_y),RMS(d_y),Mean(d_z),RMS(d_z)
RBEND(1),a,SBEND,1,2,0.1,1,0.0,0.1,1,0.1,nan,nan
RBEND(1),b,SBEND,1,2,0.1,2,1.0,0.1,,0.1,nan,nan
RBEND(2),a,SBEND,2,2,0.1,3,2.0,0.1,2,0.1,nan,nan
RBEND(2),b,SBEND,2,2,0.1,4,3.0,0.1,nan,0.1,nan,nan
RBEND(3),a,SBEND,3,2,0.1,5,3.0,0.1,3,0.1,nan,nan
`

func mustReadCSV(t *testing.T, name, data string) *DataFrame {
	t.Helper()
	df, err := ReadCSV(name, strings.NewReader(data))
	require.NoError(t, err)
	return df
}
