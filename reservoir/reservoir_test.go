package reservoir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	// Dataset spellings round-trip through the name map
	{
		for _, cat := range Categories() {
			parsed, err := ParseCategory(cat.String())
			assert.NoError(t, err)
			assert.Equal(t, cat, parsed)
		}
	}
	// Parsing is case-insensitive and trims whitespace
	{
		cat, err := ParseCategory("  HOT WATER ")
		assert.NoError(t, err)
		assert.Equal(t, HotWater, cat)
		cat, err = ParseCategory("two-phase high enthalpy")
		assert.NoError(t, err)
		assert.Equal(t, TwoPhaseHighEnthalpy, cat)
	}
	// Unknown categories are an error, not a silent default
	{
		_, err := ParseCategory("supercritical")
		assert.Error(t, err)
	}
	assert.Equal(t, NumCategories, len(Categories()))
}

func TestScenarioVelocity(t *testing.T) {
	// 360 tonne/hr through a 0.5 m2 wellhead is 0.2 m/s
	sc := Scenario{Field: "Test", Category: HotWater, Rate: 360, Temperature: 60}
	assert.InDelta(t, 0.2, sc.Velocity(0.5), 1.e-12)
	// Doubling the wellhead area halves the velocity
	assert.InDelta(t, 0.1, sc.Velocity(1.0), 1.e-12)
}

func TestConstants(t *testing.T) {
	pc := DefaultConstants()
	// alpha = D/(rho*cT)
	assert.InDelta(t, 0.6/4.186, pc.Diffusivity(), 1.e-12)
	// 100 degC over 500 m
	assert.InDelta(t, 0.2, pc.BackgroundSlope(), 1.e-12)
}

func createTempTableFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return tmpFile
}

func TestReadTable(t *testing.T) {
	content := `Field,Country,Reservoir Type,Production Wells,Reinjection Rate,Reinjection Temperature
,,,,tonne/hr,degC
Heber,USA,Hot Water,10,480,71
Wairakei,New Zealand,2-Phase Low Enthalpy,55,360,55
Ohaaki,New Zealand,2-Phase Medium Enthalpy,14,290,80
Rotokawa,New Zealand,2-Phase High Enthalpy,7,220,95
Momotombo,Nicaragua,Hot Water,8,n/a,60
Unknownfield,Nowhere,Supercritical,1,100,50
`
	tmpFile := createTempTableFile(t, content)
	scenarios, err := ReadTable(tmpFile)
	require.NoError(t, err)
	// The n/a rate row and the unknown category row are skipped
	require.Equal(t, 4, len(scenarios))
	assert.Equal(t, "Heber", scenarios[0].Field)
	assert.Equal(t, HotWater, scenarios[0].Category)
	assert.Equal(t, 480., scenarios[0].Rate)
	assert.Equal(t, 71., scenarios[0].Temperature)
	assert.Equal(t, TwoPhaseLowEnthalpy, scenarios[1].Category)
	assert.Equal(t, TwoPhaseMediumEnthalpy, scenarios[2].Category)
	assert.Equal(t, TwoPhaseHighEnthalpy, scenarios[3].Category)
	// Missing file is an error
	_, err = ReadTable(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadShippedTable(t *testing.T) {
	tablePath := filepath.Join("..", "data", "geothermal_well_data.csv")
	if _, err := os.Stat(tablePath); err != nil {
		t.Skip("skipping test - geothermal_well_data.csv not found")
	}
	scenarios, err := ReadTable(tablePath)
	require.NoError(t, err)
	// The shipped table covers all four categories
	seen := make(map[Category]int)
	for _, sc := range scenarios {
		seen[sc.Category]++
		assert.Greater(t, sc.Rate, 0.)
		assert.Greater(t, sc.Temperature, 0.)
	}
	for _, cat := range Categories() {
		assert.Greater(t, seen[cat], 0, "no scenario for category %s", cat)
	}
}
