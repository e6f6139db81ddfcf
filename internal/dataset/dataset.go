package dataset

import "sort"

type recordKey struct {
	company string
	year    int
}

// Dataset is the immutable, indexed collection of financial records the
// chatbot serves from. Build once at startup, read-only afterwards.
type Dataset struct {
	records    []FinancialRecord
	index      map[recordKey]int
	companies  []string
	companySet map[string]struct{}
	years      map[int]struct{}
	maxYear    int
}

func newDataset(records []FinancialRecord) *Dataset {
	ds := &Dataset{
		records:    records,
		index:      make(map[recordKey]int, len(records)),
		companySet: make(map[string]struct{}),
		years:      make(map[int]struct{}),
	}

	for i, rec := range records {
		ds.index[recordKey{rec.Company, rec.Year}] = i
		ds.years[rec.Year] = struct{}{}
		if rec.Year > ds.maxYear {
			ds.maxYear = rec.Year
		}
		if _, ok := ds.companySet[rec.Company]; !ok {
			ds.companySet[rec.Company] = struct{}{}
			ds.companies = append(ds.companies, rec.Company)
		}
	}
	sort.Strings(ds.companies)

	return ds
}

// Records returns all records in company/year order.
func (d *Dataset) Records() []FinancialRecord {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Companies returns the distinct company names, sorted.
func (d *Dataset) Companies() []string {
	return d.companies
}

// HasCompany reports whether the canonical company name exists.
func (d *Dataset) HasCompany(name string) bool {
	_, ok := d.companySet[name]
	return ok
}

// HasYear reports whether any record exists for the given year.
func (d *Dataset) HasYear(year int) bool {
	_, ok := d.years[year]
	return ok
}

// MaxYear returns the most recent year present anywhere in the data.
func (d *Dataset) MaxYear() int {
	return d.maxYear
}

// Lookup returns the record for (company, year), if present.
func (d *Dataset) Lookup(company string, year int) (*FinancialRecord, bool) {
	i, ok := d.index[recordKey{company, year}]
	if !ok {
		return nil, false
	}
	return &d.records[i], true
}

// Metric returns the metric value for (company, year), if present.
func (d *Dataset) Metric(company string, year int, m Metric) (float64, bool) {
	rec, ok := d.Lookup(company, year)
	if !ok {
		return 0, false
	}
	return rec.Value(m), true
}

// ForYear returns all records for the given year.
func (d *Dataset) ForYear(year int) []FinancialRecord {
	var out []FinancialRecord
	for _, rec := range d.records {
		if rec.Year == year {
			out = append(out, rec)
		}
	}
	return out
}
