package units

import (
	"strconv"
	"time"
)

const (
	oneKMInMeters = 1000.0
	oneHourInSec  = 60.0 * 60.0

	// Switch points for the larger display unit
	speedThreshold    = 1000.0
	distanceThreshold = 1000.0
)

// ObservationLayout is the layout used for observation timestamps
const ObservationLayout = "1/2/2006, 3:04:05 PM"

// Speed renders a speed given in meters/second.
// Values at or above the threshold are scaled by 1000/3600 and shown as km/hr.
func Speed(speedInMS float64) string {
	if speedInMS >= speedThreshold {
		speedKMH := speedInMS * (oneKMInMeters / oneHourInSec)
		return Number(speedKMH) + "km/hr"
	}
	return Number(speedInMS) + "m/s"
}

// Distance renders a distance given in meters
func Distance(distanceInM float64) string {
	if distanceInM >= distanceThreshold {
		return Number(distanceInM/oneKMInMeters) + "km"
	}
	return Number(distanceInM) + "m"
}

// Temperature renders a Celsius temperature
func Temperature(celsius float64) string {
	return Number(celsius) + " °C"
}

// Pressure renders an atmospheric pressure in hPa
func Pressure(hpa float64) string {
	return Number(hpa) + "hPa"
}

// Percent renders a percentage value such as humidity or cloud coverage
func Percent(value float64) string {
	return Number(value) + "%"
}

// ObservationTime converts a unix timestamp to a readable local time string
func ObservationTime(unix int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(unix, 0).In(loc).Format(ObservationLayout)
}

// Number formats a float with the fewest digits that still round-trip,
// so 15 renders as "15" and 1.5 as "1.5".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
