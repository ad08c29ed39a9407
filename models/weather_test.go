package models

import "testing"

func TestWeatherRecordField(t *testing.T) {
	r := WeatherRecord{
		ObservationTime: "3/5/2024, 2:07:09 PM",
		Description:     "light rain",
		Temperature:     "15 °C",
		Pressure:        "1012hPa",
		Humidity:        "81%",
		Visibility:      "10km",
		WindSpeed:       "4.12m/s",
		Clouds:          "75%",
		Base:            "stations",
		Loaded:          true,
	}

	want := map[string]string{
		FieldObservationTime: "3/5/2024, 2:07:09 PM",
		FieldDescription:     "light rain",
		FieldTemperature:     "15 °C",
		FieldPressure:        "1012hPa",
		FieldHumidity:        "81%",
		FieldVisibility:      "10km",
		FieldWindSpeed:       "4.12m/s",
		FieldClouds:          "75%",
		FieldBase:            "stations",
		FieldLoaded:          "true",
	}

	for _, name := range FieldNames {
		got, ok := r.Field(name)
		if !ok {
			t.Errorf("Field(%q) not defined", name)
			continue
		}
		if got != want[name] {
			t.Errorf("Field(%q) = %q, want %q", name, got, want[name])
		}
	}
}

func TestWeatherRecordFieldUndefined(t *testing.T) {
	var r WeatherRecord

	if _, ok := r.Field(FieldTemperature); ok {
		t.Error("empty temperature should not be defined")
	}
	if _, ok := r.Field(FieldLoaded); ok {
		t.Error("unloaded record should not define isDataLoaded")
	}
	if _, ok := r.Field("sunrise"); ok {
		t.Error("unknown field should not be defined")
	}
}
