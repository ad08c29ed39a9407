package api

import (
	"html/template"

	"weather-widget/models"
	"weather-widget/page"
)

// slotLabels are the captions shown next to each display slot
var slotLabels = map[string]string{
	models.FieldObservationTime: "Observed",
	models.FieldDescription:     "Conditions",
	models.FieldTemperature:     "Temperature",
	models.FieldPressure:        "Pressure",
	models.FieldHumidity:        "Humidity",
	models.FieldVisibility:      "Visibility",
	models.FieldWindSpeed:       "Wind",
	models.FieldClouds:          "Clouds",
	models.FieldBase:            "Base",
	models.FieldLoaded:          "Loaded",
}

type slotView struct {
	ID    string
	Label string
	Text  string
}

type pageView struct {
	ThemeClass    string
	Icon          string
	HasIcon       bool
	Input         string
	InputError    bool
	Banner        string
	BannerVisible bool
	BannerOpacity float64
	Slots         []slotView
}

func newPageView(snap page.Snapshot, input string) pageView {
	v := pageView{
		ThemeClass:    snap.ThemeClass,
		Icon:          snap.Icon,
		HasIcon:       snap.HasIcon,
		Input:         input,
		InputError:    snap.IsVisible(page.InputErrorID),
		Banner:        snap.Text(page.HTTPBannerID),
		BannerVisible: snap.IsVisible(page.HTTPBannerID),
		BannerOpacity: snap.Opacity[page.HTTPBannerID],
	}
	for _, id := range snap.Slots {
		label, ok := slotLabels[id]
		if !ok {
			label = id
		}
		v.Slots = append(v.Slots, slotView{ID: id, Label: label, Text: snap.Text(id)})
	}
	return v
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather</title>
{{if .HasIcon}}<link rel="icon" href="{{.Icon}}">{{end}}
<style>
.hide { display: none; }
body.night { background: #1d2230; color: #e8e8e8; }
</style>
</head>
<body class="{{.ThemeClass}}">
<form id="location-search-form" method="post" action="/">
  <input id="location-search-input" name="location" type="text" value="{{.Input}}" autocomplete="off">
  <button type="submit">Search</button>
  <p class="error-message{{if not .InputError}} hide{{end}}">Enter a city name, or a city and country separated by a space.</p>
</form>
<div class="http-error-message{{if not .BannerVisible}} hide{{end}}" style="opacity: {{.BannerOpacity}}">{{.Banner}}</div>
<section class="forecast">
{{range .Slots}}  <div id="{{.ID}}" class="forecast-item">
    <span class="forecast-label">{{.Label}}</span>
    <span class="forecast-description">{{.Text}}</span>
  </div>
{{end}}</section>
</body>
</html>
`))
