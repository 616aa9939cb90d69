// Package refdata carries the static reference tables embedded into the
// binary: valid warehouse codes, VAT groups and the sales-employee lookup
// used by the entry template. Loaded once, read-only afterwards.
package refdata

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed refdata.yaml
var rawRefData []byte

// SalesEmployee is one row of the template's lookup sheet.
type SalesEmployee struct {
	Code int    `yaml:"code"`
	Name string `yaml:"name"`
}

type tables struct {
	Warehouses     []string        `yaml:"warehouses"`
	VatGroups      []string        `yaml:"vat_groups"`
	SalesEmployees []SalesEmployee `yaml:"sales_employees"`
}

var (
	loadOnce sync.Once
	loaded   tables
	loadErr  error
)

func load() (tables, error) {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(rawRefData, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded reference data: %w", err)
			return
		}
		if len(loaded.Warehouses) == 0 || len(loaded.VatGroups) == 0 {
			loadErr = fmt.Errorf("embedded reference data is incomplete")
		}
	})
	return loaded, loadErr
}

// Warehouses returns the warehouse codes offered by the template dropdown.
func Warehouses() ([]string, error) {
	t, err := load()
	return t.Warehouses, err
}

// VatGroups returns the VAT group codes offered by the template dropdown.
func VatGroups() ([]string, error) {
	t, err := load()
	return t.VatGroups, err
}

// SalesEmployees returns the code/name lookup table.
func SalesEmployees() ([]SalesEmployee, error) {
	t, err := load()
	return t.SalesEmployees, err
}
