package config

// CityTable maps every supported city to the file that backs it. The zero value is an empty table.
// Once built it cannot change, so it can be shared between the loader and the raw data viewer.
type CityTable struct {
	names []string
	files map[string]string
}

// NewCityTable builds a table from the given cities. Order is kept as given
func NewCityTable(cities ...City) CityTable {
	ec := ExplorerConfig{Cities: cities}
	return ec.CityTable()
}

// File returns the file name of the given city
func (ct CityTable) File(city string) (string, bool) {
	file, ok := ct.files[city]
	return file, ok
}

// Contains returns true if the city is part of the table
func (ct CityTable) Contains(city string) bool {
	_, ok := ct.files[city]
	return ok
}

// Names returns the cities in configuration order
func (ct CityTable) Names() []string {
	names := make([]string, len(ct.names))
	copy(names, ct.names)
	return names
}
