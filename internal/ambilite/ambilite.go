// Package ambilite computes how bright the sky is for an observer, so the
// walker board can follow the owner's day and night.
package ambilite

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Night options
const (
	NightNever   = "never"
	NightAlways  = "always"
	NightReal    = "real"
	NightDefault = NightNever
)

// civil twilight altitude, degrees
const twilight = -6.0

// Observer is a place on Earth with its IANA timezone.
type Observer struct {
	Lat      float64
	Lon      float64
	Timezone string
}

// Known reports whether the observer carries a usable location.
func (o Observer) Known() bool {
	if o.Timezone == "" {
		return false
	}
	_, err := time.LoadLocation(o.Timezone)
	return err == nil
}

// Sky returns a light source for the given night option: a func reporting
// intensity in [0.0, 1.0] at a moment. Unknown options behave like NightNever.
func Sky(option string, o Observer) func(time.Time) float64 {
	switch option {
	case NightAlways:
		return func(time.Time) float64 { return 0.0 }
	case NightReal:
		return o.Intensity
	default:
		return func(time.Time) float64 { return 1.0 }
	}
}

// Intensity returns ambient light intensity [0.0, 1.0] at now.
// Polar day and night are detected against civil twilight.
func (o Observer) Intensity(now time.Time) float64 {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return 0.0
	}
	localNow := now.In(loc)
	date := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)

	dawn, dawnOk := o.solarEvent(date, twilight, false)
	sunrise, _ := o.solarEvent(date, 0, false)
	sunset, _ := o.solarEvent(date, 0, true)
	dusk, duskOk := o.solarEvent(date, twilight, true)

	if !dawnOk || !duskOk || dawn.After(dusk) {
		noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc)
		if solarAltitude(noon.UTC(), o.Lat, o.Lon) > twilight {
			return 1.0 // polar day
		}
		return 0.0 // polar night
	}

	switch {
	case localNow.Before(dawn):
		return 0.0
	case localNow.Before(sunrise):
		return interpolate(dawn, sunrise, localNow)
	case localNow.Before(sunset):
		return 1.0
	case localNow.Before(dusk):
		return 1.0 - interpolate(sunset, dusk, localNow)
	default:
		return 0.0
	}
}

// solarEvent finds when the sun crosses targetAlt on date, rising or
// setting. ok is false if it never does.
func (o Observer) solarEvent(date time.Time, targetAlt float64, setting bool) (at time.Time, ok bool) {
	loc := date.Location()
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc)

	midnightAlt := solarAltitude(start.UTC(), o.Lat, o.Lon)
	noonAlt := solarAltitude(noon.UTC(), o.Lat, o.Lon)
	if (midnightAlt-targetAlt)*(noonAlt-targetAlt) > 0 {
		return time.Time{}, false
	}

	const epsilon = time.Minute
	for end.Sub(start) > epsilon {
		mid := start.Add(end.Sub(start) / 2)
		if (solarAltitude(mid.UTC(), o.Lat, o.Lon) > targetAlt) == setting {
			start = mid
		} else {
			end = mid
		}
	}
	return start.Round(time.Minute), true
}

// solarAltitude returns solar altitude in degrees for UTC time t, lat and lon.
func solarAltitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t)
	θ := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(θ-ra.Rad()+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}

func interpolate(start, end, current time.Time) float64 {
	if !end.After(start) {
		return 1.0
	}
	total := end.Sub(start).Seconds()
	elapsed := current.Sub(start).Seconds()
	return max(0.0, min(1.0, elapsed/total))
}
