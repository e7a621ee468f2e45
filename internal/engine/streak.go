// internal/engine/streak.go
package engine

import (
	"time"

	"go_5_tally_keep/internal/dateutil"
)

// CurrentStreak は連続学習日数を返します。
// 今日まだ記録がない場合は昨日を起点にします (その日のうちは連続が途切れない)。
func CurrentStreak(days DaySet, today time.Time) int {
	cursor := dateutil.StartOfDay(today)
	if !days.Contains(cursor) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days.Contains(cursor) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
