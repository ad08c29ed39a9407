package render

import (
	"testing"

	"weather-widget/models"
	"weather-widget/page"
)

func TestForecastWritesMatchingSlots(t *testing.T) {
	doc := page.NewWidget()
	record := models.WeatherRecord{
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

	if n := Forecast(doc, record); n != len(models.FieldNames) {
		t.Errorf("wrote %d slots, want %d", n, len(models.FieldNames))
	}

	snap := doc.Snapshot()
	if snap.Text(models.FieldTemperature) != "15 °C" {
		t.Errorf("temperature slot = %q", snap.Text(models.FieldTemperature))
	}
	if snap.Text(models.FieldDescription) != "light rain" {
		t.Errorf("weatherState slot = %q", snap.Text(models.FieldDescription))
	}
	if snap.Text(models.FieldLoaded) != "true" {
		t.Errorf("isDataLoaded slot = %q", snap.Text(models.FieldLoaded))
	}
}

func TestForecastLeavesUnmatchedSlots(t *testing.T) {
	doc := page.NewMemory("temperature", "sunrise", "base")
	doc.SetText("sunrise", "06:12")
	doc.SetText("base", "old base")

	// base is empty in the record, sunrise has no field at all
	n := Forecast(doc, models.WeatherRecord{Temperature: "3 °C"})
	if n != 1 {
		t.Errorf("wrote %d slots, want 1", n)
	}

	snap := doc.Snapshot()
	if snap.Text("temperature") != "3 °C" {
		t.Errorf("temperature = %q", snap.Text("temperature"))
	}
	if snap.Text("sunrise") != "06:12" {
		t.Errorf("sunrise slot was modified: %q", snap.Text("sunrise"))
	}
	if snap.Text("base") != "old base" {
		t.Errorf("base slot was cleared: %q", snap.Text("base"))
	}
}
