package engine

import (
	"testing"

	"github.com/pwrsched/pwrsched/pkg/pwrlib"
)

func TestIsMatchingSameMinute(t *testing.T) {
	target := pwrlib.MakeClock(9, 0)
	for _, sec := range []int{0, 1, 30, 59} {
		cur := pwrlib.Clock{Hour: 9, Minute: 0, Second: sec}
		if !IsMatching(cur, target, 0) {
			t.Errorf("09:00:%02d should match 09:00", sec)
		}
	}
	if IsMatching(pwrlib.Clock{Hour: 9, Minute: 1}, target, 0) {
		t.Error("09:01 should not match 09:00")
	}
	if IsMatching(pwrlib.Clock{Hour: 8, Minute: 59, Second: 59}, target, 0) {
		t.Error("08:59:59 should not match 09:00")
	}
}

func TestIsMatchingNegativeOffset(t *testing.T) {
	// Target 09:00 with -30s offset lands in the 08:59 minute.
	target := pwrlib.MakeClock(9, 0)
	if !IsMatching(pwrlib.Clock{Hour: 8, Minute: 59, Second: 30}, target, -30) {
		t.Error("08:59:30 should match 09:00 shifted by -30s")
	}
	if IsMatching(pwrlib.Clock{Hour: 9, Minute: 0}, target, -30) {
		t.Error("09:00 should not match 09:00 shifted by -30s")
	}
}

func TestIsMatchingMidnightWrap(t *testing.T) {
	// 00:05 shifted by -600s wraps to the previous day's 23:55.
	target := pwrlib.MakeClock(0, 5)
	if !IsMatching(pwrlib.Clock{Hour: 23, Minute: 55, Second: 10}, target, -600) {
		t.Error("23:55 should match 00:05 shifted by -600s")
	}
	// 23:58 shifted by +600s wraps to 00:08.
	target = pwrlib.MakeClock(23, 58)
	if !IsMatching(pwrlib.Clock{Hour: 0, Minute: 8}, target, 600) {
		t.Error("00:08 should match 23:58 shifted by +600s")
	}
}
