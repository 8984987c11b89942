// Package plot holds the ingested survey records and the pure rules
// that validate and reshape them before load.
package plot

import (
	"fmt"
	"time"
)

// Geographic bounds of the survey region in NAD83 decimal degrees.
// The longitude range is split because the Aleutian Islands cross the
// antimeridian.
const (
	LatMin = 50.4
	LatMax = 71.6

	LonWestMin = -179.99
	LonWestMax = -130.0
	LonEastMin = 172.0
)

// ProjectRecord is an ingested project metadata row.
type ProjectRecord struct {
	ProjectCode string
	ProjectName string
	Originator  string
	Funder      string
	Manager     string
	YearStart   int
	YearEnd     int
}

// SiteRecord is an ingested site row.
type SiteRecord struct {
	SiteCode                string
	EstablishingProjectCode string
	Perspective             string
	CoverMethod             string
	LatitudeDD              float64
	LongitudeDD             float64
	HDatum                  string
	LocationType            string
	PlotDimensions          string
}

// SiteVisitRecord is an ingested site visit row.
type SiteVisitRecord struct {
	SiteVisitCode   string
	ProjectCode     string
	SiteCode        string
	ObserveDate     time.Time
	VegObserver     string
	VegRecorder     string
	EnvObserver     string
	SoilsObserver   string
	StructuralClass string
	ScopeVascular   string
	ScopeBryophyte  string
	ScopeLichen     string
}

// CoverRecord is an ingested vegetation cover observation.
type CoverRecord struct {
	SiteVisitCode   string
	CoverType       string
	NameOriginal    string
	DeadStatus      bool
	CodeAdjudicated string
	CoverPercent    float64
}

// ValidateBounds checks that coordinates fall inside the survey
// region.
func ValidateBounds(lat, lon float64) error {
	if lat < LatMin || lat > LatMax {
		return BoundsError(lat, lon)
	}
	west := lon >= LonWestMin && lon <= LonWestMax
	east := lon > LonEastMin
	if !west && !east {
		return BoundsError(lat, lon)
	}
	return nil
}

// SiteVisitCode builds the canonical visit identifier from a site
// code and observation date.
func SiteVisitCode(siteCode string, date time.Time) string {
	return fmt.Sprintf("%s_%s", siteCode, date.Format("20060102"))
}

// MergeDuplicateCover sums cover percentages of records that share
// site visit, original name, cover type, and dead status. Input order
// is preserved; the merged record sits where the first duplicate
// appeared. Field splits of the same taxon recombine this way before
// name resolution.
func MergeDuplicateCover(records []CoverRecord) []CoverRecord {
	type key struct {
		visit, name, coverType string
		dead                   bool
	}

	idx := make(map[key]int)
	var res []CoverRecord

	for _, rec := range records {
		k := key{
			visit:     rec.SiteVisitCode,
			name:      rec.NameOriginal,
			coverType: rec.CoverType,
			dead:      rec.DeadStatus,
		}
		if i, ok := idx[k]; ok {
			res[i].CoverPercent += rec.CoverPercent
			continue
		}
		idx[k] = len(res)
		res = append(res, rec)
	}
	return res
}
