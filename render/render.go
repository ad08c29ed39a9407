package render

import (
	"weather-widget/models"
	"weather-widget/page"
)

// Forecast writes record values into the document's display slots.
// A slot is matched by its container ID; slots whose field is unknown or
// empty keep their current text. It returns the number of slots written.
func Forecast(doc page.Document, record models.WeatherRecord) int {
	written := 0
	for _, id := range doc.SlotContainers() {
		if value, ok := record.Field(id); ok {
			doc.SetText(id, value)
			written++
		}
	}
	return written
}
