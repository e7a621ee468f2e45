// internal/engine/weekly.go
package engine

import (
	"time"

	"go_5_tally_keep/internal/dateutil"
)

// WeeklyStudyDays は今週 (月曜〜日曜) のうち学習した日数を返します。
// 今日より未来の曜日も判定対象に含めますが、記録がまだ無いだけなので結果は変わりません。
func WeeklyStudyDays(days DaySet, today time.Time) int {
	monday := dateutil.MondayOfWeek(today)
	count := 0
	for offset := 0; offset < 7; offset++ {
		if days.Contains(monday.AddDate(0, 0, offset)) {
			count++
		}
	}
	return count
}
