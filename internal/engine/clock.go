package engine

import "github.com/pwrsched/pwrsched/pkg/pwrlib"

// IsMatching reports whether current falls within the same clock-minute as
// target shifted by offsetSeconds, evaluated on the 24-hour wrapping clock.
// A negative offset applied near midnight wraps to the previous day's
// 23:xx range.
func IsMatching(current, target pwrlib.Clock, offsetSeconds int) bool {
	return current.MinuteOfDay() == target.AddSeconds(offsetSeconds).MinuteOfDay()
}
