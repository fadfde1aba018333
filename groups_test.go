package magplot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smallTheme = Theme{Width: 4, Height: 3, DPI: 40}

func groupJob(dir string) GroupJob {
	return GroupJob{
		X:      "z_shift[m]",
		XLabel: "Shift in z [mm]",
		XScale: 1000,
		OutDir: dir,
		Theme:  smallTheme,
	}
}

func TestPlotGroups(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	dir := t.TempDir()

	files, err := PlotGroups(df, groupJob(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "z_shift[m]_VKICKERs.png"),
		filepath.Join(dir, "z_shift[m]_HKICKERs.png"),
		filepath.Join(dir, "z_shift[m]_RBENDs.png"),
		filepath.Join(dir, "z_shift[m]_QUADRUPOLEs.png"),
	}, files)
	for _, f := range files {
		assert.FileExists(t, f)
	}
}

func TestGroupFigure(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	job := groupJob("")

	fig, err := GroupFigure(df, job, DefaultDeviceGroups[0])
	require.NoError(t, err)
	assert.Equal(t, "z_shift[m] VKICKERs", fig.Title)
	assert.Equal(t, 2, fig.Rows)
	assert.Equal(t, 2, fig.Cols)
	require.Len(t, fig.Panels, 4)

	titles := []string{"Mean(d_x)", "Mean(d_y)", "Mean(d_sx)", "Mean(d_sy)"}
	for i, p := range fig.Panels {
		assert.Equal(t, titles[i], p.Title)
		assert.Equal(t, "Shift in z [mm]", p.XLabel)
		assert.Equal(t, i == 0, p.Legend, "legend only on the first panel")
		// VKICKER(3..5) are not in the data.
		assert.Equal(t, 2, p.NumSeries())
	}
	assert.Equal(t, "Difference in position [mm]", fig.Panels[1].YLabel)
	assert.Equal(t, "Difference in angle [urad]", fig.Panels[3].YLabel)

	// Same device, same style in every panel.
	for _, p := range fig.Panels[1:] {
		assert.Equal(t, fig.Panels[0].Layers[1].Style, p.Layers[1].Style)
		assert.Equal(t, "VKICKER(2)", p.Layers[1].Series.Name)
	}
	assert.NotEqual(t, fig.Panels[0].Layers[0].Style, fig.Panels[0].Layers[1].Style)

	keys := fig.Panels[0].Keys
	require.Len(t, keys, 2)
	for i, k := range keys {
		assert.Equal(t, fig.Panels[0].Layers[i].Series.Name, k.Name)
		assert.Equal(t, fig.Panels[0].Layers[i].Style, k.Style)
	}
	for _, p := range fig.Panels[1:] {
		assert.Empty(t, p.Keys)
	}

	// QUADRUPOLE(7) has no finite Mean(d_x).
	fig, err = GroupFigure(df, job, DefaultDeviceGroups[3])
	require.NoError(t, err)
	assert.Equal(t, 0, fig.Panels[0].NumSeries())
	assert.Equal(t, 1, fig.Panels[1].NumSeries())
}

func TestGroupFigureLegendListsAllPanels(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	job := groupJob("")

	// QUADRUPOLE(7) is drawn in the second panel only, yet the legend of
	// the first panel lists it.
	fig, err := GroupFigure(df, job, DefaultDeviceGroups[3])
	require.NoError(t, err)
	require.Equal(t, 0, fig.Panels[0].NumSeries())
	require.Len(t, fig.Panels[0].Keys, 1)
	k := fig.Panels[0].Keys[0]
	assert.Equal(t, "QUADRUPOLE(7)", k.Name)
	assert.Equal(t, fig.Panels[1].Layers[0].Style, k.Style)

	var buf bytes.Buffer
	require.NoError(t, fig.WriteTo(&buf, "png"))
	assert.NotZero(t, buf.Len())
}

func TestGroupFigureCustomGroup(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	group := DeviceGroup{Label: "mixed", Devices: []string{"RBEND(1)", "HKICKER(3)", "NOT_THERE(1)"}}

	fig, err := GroupFigure(df, groupJob(""), group)
	require.NoError(t, err)
	assert.Equal(t, "z_shift[m] mixed", fig.Title)
	assert.Equal(t, 2, fig.Panels[0].NumSeries())
	assert.InDelta(t, 1.0, fig.Panels[0].Layers[0].Series.XYs[0].X, 1e-9)
}

func TestPlotGroupsMissingColumn(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	dir := t.TempDir()

	job := groupJob(dir)
	job.X = "z_shift"
	files, err := PlotGroups(df, job)
	assert.True(t, pkgerrors.Is(err, ErrNoSuchColumn), "got %v", err)
	assert.Empty(t, files)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no figure for a failed group")

	// A group file without the angle columns fails too, even for devices
	// which are absent.
	short := mustReadCSV(t, "short.csv", "Magnet,z_shift[m],Mean(d_x),RMS(d_x),Mean(d_y),RMS(d_y)\nRBEND(1),0.1,1,1,1,1\n")
	_, err = GroupFigure(short, groupJob(dir), DefaultDeviceGroups[0])
	assert.True(t, pkgerrors.Is(err, ErrNoSuchColumn), "got %v", err)
	assert.Contains(t, err.Error(), "Mean(d_sx)")
}

func TestPlotGroupsIsIdempotent(t *testing.T) {
	df := mustReadCSV(t, "z_shift.csv", groupCSV)
	dir := t.TempDir()
	job := groupJob(dir)
	job.Groups = DefaultDeviceGroups[:1]

	files, err := PlotGroups(df, job)
	require.NoError(t, err)
	require.Len(t, files, 1)
	first, err := os.ReadFile(files[0])
	require.NoError(t, err)

	_, err = PlotGroups(df, job)
	require.NoError(t, err)
	second, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlotGroupsTestdata(t *testing.T) {
	df, err := ReadCSVFile(filepath.Join("testdata", "z_shift.csv"))
	require.NoError(t, err)
	for _, g := range DefaultDeviceGroups {
		fig, err := GroupFigure(df, groupJob(""), g)
		require.NoError(t, err)
		for _, p := range fig.Panels {
			assert.Equal(t, len(g.Devices), p.NumSeries(), "%s %s", g.Label, p.Title)
		}
	}
}
