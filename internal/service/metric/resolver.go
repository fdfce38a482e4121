// Package metric maps the volunteering-type and statistic filters onto
// the column names used by the regional statistics table.
//
// Percentage columns are named after the volunteering type itself
// ("formal", "informal", "any"); hours columns are composed as
// "{kind}_hours_{prefix}" where the prefix for "any" is "vlntrs".
package metric

import (
	"fmt"

	"github.com/ougirez/ehrenamt/internal/domain"
)

const defaultPrefix = "vlntrs"

var prefixes = map[domain.VolunteeringType]string{
	domain.VolunteeringAny:      defaultPrefix,
	domain.VolunteeringFormal:   "formal",
	domain.VolunteeringInformal: "informal",
}

// Prefix returns the column prefix for vt. Unrecognized types get "vlntrs".
func Prefix(vt domain.VolunteeringType) string {
	if p, ok := prefixes[vt]; ok {
		return p
	}
	return defaultPrefix
}

// Resolve returns the column holding the requested statistic. It never
// fails: an unknown statistic is read as a percentage.
func Resolve(vt domain.VolunteeringType, kind domain.StatisticKind) string {
	switch kind {
	case domain.StatisticAverageHours, domain.StatisticMedianHours:
		return fmt.Sprintf("%s_hours_%s", kind, Prefix(vt))
	default:
		return string(vt)
	}
}

// Quartile columns only exist for hours.
func LowerQuartile(vt domain.VolunteeringType) string {
	return "25_hrs_" + Prefix(vt)
}

func UpperQuartile(vt domain.VolunteeringType) string {
	return "75_hrs_" + Prefix(vt)
}

func Median(vt domain.VolunteeringType) string {
	return Resolve(vt, domain.StatisticMedianHours)
}

func Mean(vt domain.VolunteeringType) string {
	return Resolve(vt, domain.StatisticAverageHours)
}

// Unit is the suffix used when a value of the given statistic is printed.
func Unit(kind domain.StatisticKind) string {
	switch kind {
	case domain.StatisticAverageHours, domain.StatisticMedianHours:
		return " h"
	default:
		return "%"
	}
}
