package models

// Display field names. A page container whose ID equals one of these
// names shows the matching record value.
const (
	FieldObservationTime = "calculationTime"
	FieldDescription     = "weatherState"
	FieldTemperature     = "temperature"
	FieldPressure        = "pressure"
	FieldHumidity        = "humidity"
	FieldVisibility      = "visibility"
	FieldWindSpeed       = "windSpeed"
	FieldClouds          = "clouds"
	FieldBase            = "base"
	FieldLoaded          = "isDataLoaded"
)

// FieldNames lists every display field in page order
var FieldNames = []string{
	FieldObservationTime,
	FieldDescription,
	FieldTemperature,
	FieldPressure,
	FieldHumidity,
	FieldVisibility,
	FieldWindSpeed,
	FieldClouds,
	FieldBase,
	FieldLoaded,
}

// WeatherRecord is the normalized current-weather result for one search.
// All values are already formatted for display.
type WeatherRecord struct {
	Provider        string `json:"provider"`
	Location        string `json:"location"`
	ObservationTime string `json:"calculationTime"`
	Description     string `json:"weatherState"`
	Temperature     string `json:"temperature"`
	Pressure        string `json:"pressure"`
	Humidity        string `json:"humidity"`
	Visibility      string `json:"visibility"`
	WindSpeed       string `json:"windSpeed"`
	Clouds          string `json:"clouds"`
	Base            string `json:"base"`
	Loaded          bool   `json:"isDataLoaded"`
}

// Field returns the display value for a field name.
// ok is false when the name is unknown or the value is empty.
func (r WeatherRecord) Field(name string) (value string, ok bool) {
	switch name {
	case FieldObservationTime:
		value = r.ObservationTime
	case FieldDescription:
		value = r.Description
	case FieldTemperature:
		value = r.Temperature
	case FieldPressure:
		value = r.Pressure
	case FieldHumidity:
		value = r.Humidity
	case FieldVisibility:
		value = r.Visibility
	case FieldWindSpeed:
		value = r.WindSpeed
	case FieldClouds:
		value = r.Clouds
	case FieldBase:
		value = r.Base
	case FieldLoaded:
		if r.Loaded {
			value = "true"
		}
	}
	return value, value != ""
}
