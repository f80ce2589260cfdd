package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "long form profiles file written by geotherm run -o")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("%-16s %-24s %9s %8s %8s %8s %8s %8s %9s\n",
		"Field", "Category", "Rate", "Tinj", "Tmin", "Tmax", "Tnear", "maxDev", "@depth")
	for _, key := range keys {
		ps := studies[key]
		tMin, tMax, tNear, maxDev, devDepth := ps.Summary()
		fmt.Printf("%-16s %-24s %9.2f %8.2f %8.2f %8.2f %8.2f %8.2f %9.1f\n",
			ps.field, ps.category, ps.rate, ps.tInj, tMin, tMax, tNear, maxDev, devDepth)
	}
}

type ProfileStudy struct {
	field    string
	category string
	rate     float64
	tInj     float64
	Z, T     []float64
}

func NewProfileStudy(field, category string, rate, tInj float64) *ProfileStudy {
	return &ProfileStudy{
		field:    field,
		category: category,
		rate:     rate,
		tInj:     tInj,
	}
}

func (ps *ProfileStudy) Add(z, t float64) {
	ps.Z = append(ps.Z, z)
	ps.T = append(ps.T, t)
}

// Summary reduces one profile to the numbers worth comparing across
// scenarios. Tnear is the first node below the held injection pair, and
// maxDev locates the largest departure from the straight line between the
// profile's ends, the background gradient on a standard run.
func (ps *ProfileStudy) Summary() (tMin, tMax, tNear, maxDev, devDepth float64) {
	var (
		n = len(ps.T)
	)
	if n == 0 {
		return
	}
	tMin, tMax = ps.T[0], ps.T[0]
	for _, t := range ps.T {
		if t < tMin {
			tMin = t
		}
		if t > tMax {
			tMax = t
		}
	}
	if n > 3 {
		tNear = ps.T[3]
	}
	var (
		z0, z1 = ps.Z[0], ps.Z[n-1]
		t0, t1 = ps.T[0], ps.T[n-1]
	)
	for i, z := range ps.Z {
		lin := t0 + (t1-t0)*(z-z0)/(z1-z0)
		if dev := math.Abs(ps.T[i] - lin); dev > maxDev {
			maxDev = dev
			devDepth = z
		}
	}
	return
}

func readCSV(csvFile string) (studies map[string]*ProfileStudy) {
	var (
		records      [][]string
		err          error
		f            *os.File
		ok           bool
		ps           *ProfileStudy
		rate, tInj   float64
		depth, tNode float64
	)
	studies = make(map[string]*ProfileStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		field, category := rec[0], rec[1]
		_, _ = fmt.Sscanf(rec[2], "%f", &rate)
		_, _ = fmt.Sscanf(rec[3], "%f", &tInj)
		if ps, ok = studies[field]; !ok {
			ps = NewProfileStudy(field, category, rate, tInj)
			studies[field] = ps
		}
		_, _ = fmt.Sscanf(rec[4], "%f", &depth)
		_, _ = fmt.Sscanf(rec[5], "%f", &tNode)
		ps.Add(depth, tNode)
	}
	return
}
