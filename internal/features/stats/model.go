package stats

// CustomerCount is one row of the top-customers ranking.
type CustomerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CityCount is one row of the top-cities ranking.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

const (
	defaultTopLimit    = 10
	defaultByCityLimit = 20
)
