package datemath

import "time"

// Strategy names the rule that resolved a due-date expression.
type Strategy string

const (
	StrategyLiteral  Strategy = "literal"
	StrategyCalendar Strategy = "calendar"
	StrategyRelative Strategy = "relative"
	StrategyWeekday  Strategy = "weekday"
)

// ParseResult holds the resolved time and the strategy that produced it.
type ParseResult struct {
	AbsoluteTime time.Time
	Strategy     Strategy
}
