package directory

// Office places a location on the dashboard's stylised map. X and Y are
// percentages of the map width and height.
type Office struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Country string `json:"country"`
}

var unknownOffice = Office{X: 50, Y: 50, Country: "Unknown"}

var offices = map[string]Office{
	"Edinburgh":     {X: 45, Y: 25, Country: "Scotland"},
	"Tokyo":         {X: 85, Y: 40, Country: "Japan"},
	"San Francisco": {X: 15, Y: 45, Country: "USA"},
	"New York":      {X: 25, Y: 40, Country: "USA"},
	"London":        {X: 47, Y: 30, Country: "UK"},
	"Singapore":     {X: 78, Y: 60, Country: "Singapore"},
	"Sydney":        {X: 90, Y: 78, Country: "Australia"},
}

// OfficeFor returns map coordinates for an exact location name, or the
// centre of the map for unknown ones.
func OfficeFor(location string) Office {
	if office, ok := offices[location]; ok {
		return office
	}
	return unknownOffice
}
