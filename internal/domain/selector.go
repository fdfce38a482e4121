package domain

type VolunteeringType string

const (
	VolunteeringAny      VolunteeringType = "any"
	VolunteeringFormal   VolunteeringType = "formal"
	VolunteeringInformal VolunteeringType = "informal"
)

var VolunteeringTypes = []VolunteeringType{VolunteeringAny, VolunteeringFormal, VolunteeringInformal}

type StatisticKind string

const (
	StatisticPercentage   StatisticKind = "percentage"
	StatisticAverageHours StatisticKind = "average"
	StatisticMedianHours  StatisticKind = "median"
)

var StatisticKinds = []StatisticKind{StatisticPercentage, StatisticAverageHours, StatisticMedianHours}

// Filters are the widget values delivered with every update cycle.
type Filters struct {
	VolunteeringType VolunteeringType
	Statistic        StatisticKind
	Year             Year
	Demographic      string
}
