// internal/engine/heatmap.go
package engine

import (
	"time"

	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/model"
)

// Heatmap は直近 months ヶ月分の日別学習量を集計します。
// キーは dateutil.DayKey、値はその日の全教材合計です。
// 期間は [今日 - months ヶ月, 今日] の両端を含みます。
func Heatmap(logs []model.StudyLog, months int, today time.Time) map[string]int {
	end := dateutil.StartOfDay(today)
	start := end.AddDate(0, -months, 0)

	result := make(map[string]int)
	for _, log := range logs {
		day := dateutil.StartOfDay(log.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		result[dateutil.DayKey(day)] += log.Amount
	}
	return result
}
