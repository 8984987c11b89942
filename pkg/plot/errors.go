package plot

import (
	"fmt"

	"github.com/accs-uaa/avdb/pkg/errcode"
	"github.com/gnames/gn"
)

// BoundsError creates an error for coordinates outside the survey
// region.
func BoundsError(lat, lon float64) error {
	msg := `Coordinates <em>%.5f, %.5f</em> fall outside the survey region

Latitude must be between %.1f and %.1f. Longitude must be between
%.2f and %.1f, or east of %.1f across the antimeridian.

<em>How to fix:</em>
  1. Check for swapped latitude and longitude in the source dataset
  2. Check the horizontal datum of the source coordinates`

	vars := []any{
		lat, lon,
		LatMin, LatMax,
		LonWestMin, LonWestMax, LonEastMin,
	}

	return &gn.Error{
		Code: errcode.LoadBoundsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"coordinates %f, %f out of bounds", lat, lon),
	}
}
