package reservoir

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

/*
Layout of the literature table. The first row is column titles, the second
row units; both are skipped. Per data row the columns used are:

	0 - field name
	2 - reservoir category
	4 - reinjection rate (tonne/hr)
	5 - reinjection temperature (degC)

Data from Rivera Diaz, Kaya and Zarrouk, "Reinjection in Geothermal Fields -
A Worldwide Review Update", Renewable and Sustainable Energy Reviews 53
(2016) 105-162.
*/
const (
	colField       = 0
	colCategory    = 2
	colRate        = 4
	colTemperature = 5
)

// ReadTable loads the reinjection scenarios from csvFile. Rows whose
// category, rate or temperature do not parse are skipped with a printed
// notice, the review reports some fields incompletely.
func ReadTable(csvFile string) (scenarios []Scenario, err error) {
	var (
		records [][]string
		f       *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		return nil, fmt.Errorf("unable to open scenario table: %w", err)
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	if records, err = r.ReadAll(); err != nil {
		return nil, fmt.Errorf("unable to read scenario table %s: %w", csvFile, err)
	}
	for i, rec := range records {
		if i < 2 { // title row and units row
			continue
		}
		if len(rec) <= colTemperature {
			fmt.Printf("skipping row %d: %d columns, need %d\n", i+1, len(rec), colTemperature+1)
			continue
		}
		cat, catErr := ParseCategory(rec[colCategory])
		if catErr != nil {
			fmt.Printf("skipping row %d (%s): %v\n", i+1, rec[colField], catErr)
			continue
		}
		rate, rateErr := strconv.ParseFloat(rec[colRate], 64)
		if rateErr != nil {
			fmt.Printf("skipping row %d (%s): unparseable reinjection rate %q\n", i+1, rec[colField], rec[colRate])
			continue
		}
		temp, tempErr := strconv.ParseFloat(rec[colTemperature], 64)
		if tempErr != nil {
			fmt.Printf("skipping row %d (%s): unparseable reinjection temperature %q\n", i+1, rec[colField], rec[colTemperature])
			continue
		}
		scenarios = append(scenarios, Scenario{
			Field:       rec[colField],
			Category:    cat,
			Rate:        rate,
			Temperature: temp,
		})
	}
	return scenarios, nil
}
