package agridata

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Crops   []CropProfile      `yaml:"crops"`
	Regions map[string]float64 `yaml:"regions"`
	Rates   *Rates             `yaml:"rates"`
}

// LoadFile reads a YAML catalog override and merges it over the built-in
// defaults: listed crops replace or extend the default crop table, listed
// regions replace or extend the region table, and a rates block replaces the
// default rates wholesale.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "agridata: read catalog %s", path)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "agridata: parse catalog %s", path)
	}

	crops := make([]CropProfile, len(defaultCrops))
	copy(crops, defaultCrops)
	for _, c := range f.Crops {
		if c.ID == "" {
			return nil, eris.Errorf("agridata: catalog %s: crop entry missing id", path)
		}
		if c.Seed.PremiumQty <= 0 && c.Seed.BasicQty <= 0 {
			return nil, eris.Errorf("agridata: catalog %s: crop %q has no seed rate", path, c.ID)
		}
		if c.OptimalYield <= 0 {
			return nil, eris.Errorf("agridata: catalog %s: crop %q has no optimal yield", path, c.ID)
		}
		replaced := false
		for i := range crops {
			if crops[i].ID == c.ID {
				crops[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			crops = append(crops, c)
		}
	}

	regions := make(map[string]float64, len(defaultRegions))
	for k, v := range defaultRegions {
		regions[k] = v
	}
	for k, v := range f.Regions {
		if v < 0 || v > 1 {
			return nil, eris.Errorf("agridata: catalog %s: region %q irrigation need %v outside [0,1]", path, k, v)
		}
		regions[k] = v
	}

	rates := defaultRates
	if f.Rates != nil {
		rates = *f.Rates
	}

	return NewCatalog(crops, regions, rates), nil
}
