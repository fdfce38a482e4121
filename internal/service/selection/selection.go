package selection

import "github.com/ougirez/ehrenamt/internal/domain"

// Event names what triggered an update cycle. The set is closed: Reset,
// RegionClicked and FilterChanged.
type Event interface {
	Trigger() string
	event()
}

type Reset struct{}

type RegionClicked struct {
	Region string
}

// FilterChanged covers every widget change (type, statistic, year,
// demographic). The new values arrive with the cycle's filters.
type FilterChanged struct{}

func (Reset) Trigger() string         { return "reset" }
func (RegionClicked) Trigger() string { return "region_clicked" }
func (FilterChanged) Trigger() string { return "filter_changed" }

func (Reset) event()         {}
func (RegionClicked) event() {}
func (FilterChanged) event() {}

// Catalog is the part of the dataset the transition rules consult.
type Catalog interface {
	IsKnownRegion(name string) bool
	HasRegion(year domain.Year, name string) bool
}

// State is one session's selection.
type State struct {
	Region string `json:"region"`
}

func Initial() State {
	return State{Region: domain.FallbackRegion}
}

// Rule identifies which precedence rule produced a transition.
type Rule int

const (
	RuleReset Rule = iota + 1
	RuleClick
	RuleCarry
	RuleFallback
)

func (r Rule) String() string {
	switch r {
	case RuleReset:
		return "reset"
	case RuleClick:
		return "click"
	case RuleCarry:
		return "carry"
	case RuleFallback:
		return "fallback"
	}
	return "unknown"
}

// Next applies the precedence rules in order: reset, valid click, carry
// the current region if the active year has it, otherwise fall back to
// the country aggregate.
func Next(cur State, ev Event, year domain.Year, cat Catalog) (State, Rule) {
	switch e := ev.(type) {
	case Reset:
		return Initial(), RuleReset
	case RegionClicked:
		if e.Region != "" && cat.IsKnownRegion(e.Region) {
			return State{Region: e.Region}, RuleClick
		}
	}

	if cur.Region != "" && cat.HasRegion(year, cur.Region) {
		return cur, RuleCarry
	}

	return Initial(), RuleFallback
}
