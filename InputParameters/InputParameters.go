package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/geotherm/reservoir"
)

// Parameters obtained from the YAML input file
type ReinjectionParameters struct {
	Title       string             `yaml:"Title"`
	Dz          float64            `yaml:"Dz"`
	Dt          float64            `yaml:"Dt"`
	FinalTime   float64            `yaml:"FinalTime"`
	Scheme      string             `yaml:"Scheme"`
	BottomBC    string             `yaml:"BottomBC"`
	Unguarded   bool               `yaml:"Unguarded"`
	RecordEvery int                `yaml:"RecordEvery"`
	DataFile    string             `yaml:"DataFile"`
	Categories  []string           `yaml:"Categories"` // Restrict the sweep to these reservoir categories
	Physical    map[string]float64 `yaml:"Physical"`   // Overrides for the reservoir constants, keyed by field name
}

// NewReinjectionParameters carries the preset step sizes. Changing Dz or Dt
// away from these can leave the explicit scheme outside its stability bounds.
func NewReinjectionParameters() *ReinjectionParameters {
	return &ReinjectionParameters{
		Title:     "Geothermal Reinjection",
		Dz:        10,
		Dt:        0.1,
		FinalTime: 10,
		Scheme:    "dense",
		BottomBC:  "dirichlet",
		DataFile:  "data/geothermal_well_data.csv",
	}
}

func (ip *ReinjectionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Constants folds the Physical overrides over the stock reservoir constants.
// Unknown keys are reported and skipped, not errors.
func (ip *ReinjectionParameters) Constants() (pc reservoir.Constants) {
	pc = reservoir.DefaultConstants()
	fields := map[string]*float64{
		"Conductivity": &pc.Conductivity,
		"Density":      &pc.Density,
		"SpecificHeat": &pc.SpecificHeat,
		"WellArea":     &pc.WellArea,
		"DepthTop":     &pc.DepthTop,
		"DepthBottom":  &pc.DepthBottom,
		"TTop":         &pc.TTop,
		"TBottom":      &pc.TBottom,
	}
	for key, val := range ip.Physical {
		target, ok := fields[key]
		if !ok {
			fmt.Printf("unknown physical constant [%s], skipping\n", key)
			continue
		}
		*target = val
	}
	return
}

func (ip *ReinjectionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Dz\n", ip.Dz)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%s]\t\t= BottomBC\n", ip.BottomBC)
	fmt.Printf("[%v]\t\t\t= Unguarded\n", ip.Unguarded)
	fmt.Printf("[%s]\t= DataFile\n", ip.DataFile)
	keys := make([]string, len(ip.Physical))
	i := 0
	for k := range ip.Physical {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Physical[%s] = %v\n", key, ip.Physical[key])
	}
}
