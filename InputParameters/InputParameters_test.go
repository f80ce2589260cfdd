package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Kizildere Sensitivity
Dz: 5.
Dt: 0.05
FinalTime: 20.
Scheme: csr
BottomBC: gradient # Can be dirichlet
Unguarded: false
RecordEvery: 10
DataFile: data/geothermal_well_data.csv
Categories:
  - Hot Water
  - 2-Phase Low Enthalpy
Physical:
  Conductivity: 0.65
  TBottom: 260.
`)
	ip := NewReinjectionParameters()
	require.NoError(t, ip.Parse(fileInput))
	assert.Equal(t, "Kizildere Sensitivity", ip.Title)
	assert.Equal(t, 5., ip.Dz)
	assert.Equal(t, 0.05, ip.Dt)
	assert.Equal(t, 20., ip.FinalTime)
	assert.Equal(t, "csr", ip.Scheme)
	assert.Equal(t, "gradient", ip.BottomBC)
	assert.Equal(t, 10, ip.RecordEvery)
	assert.Equal(t, []string{"Hot Water", "2-Phase Low Enthalpy"}, ip.Categories)
	ip.Print()

	pc := ip.Constants()
	assert.Equal(t, 0.65, pc.Conductivity)
	assert.Equal(t, 260., pc.TBottom)
	// Untouched constants keep their stock values
	assert.Equal(t, 4.186, pc.SpecificHeat)
	assert.Equal(t, 0.5, pc.WellArea)
}

func TestDefaults(t *testing.T) {
	ip := NewReinjectionParameters()
	// The presets are the documented stable pairing
	assert.Equal(t, 10., ip.Dz)
	assert.Equal(t, 0.1, ip.Dt)
	assert.Equal(t, 10., ip.FinalTime)
	// An empty document leaves the presets alone
	require.NoError(t, ip.Parse([]byte("")))
	assert.Equal(t, 10., ip.Dz)
	assert.Equal(t, 0.1, ip.Dt)
	// Unknown physical keys are skipped without failing
	require.NoError(t, ip.Parse([]byte("Physical:\n  Porosity: 0.2\n")))
	pc := ip.Constants()
	assert.Equal(t, 0.6, pc.Conductivity)
}
