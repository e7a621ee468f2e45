// internal/dateutil/dateutil.go
package dateutil

import "time"

// 日付計算のユーティリティ。週は月曜始まりとして扱います。

const dayKeyLayout = "2006-01-02"

// StartOfDay はそのタイムゾーンでの当日0時を返します
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween は暦日ベースの日数差 (b - a) を返します。
// 経過時間ではなく日付の差なので、夏時間等の影響を受けません。
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// MondayOfWeek は t が属する週 (月曜〜日曜) の月曜0時を返します
func MondayOfWeek(t time.Time) time.Time {
	sod := StartOfDay(t)
	// time.Weekday は日曜=0 なので月曜=0 に並べ替える
	offset := (int(sod.Weekday()) + 6) % 7
	return sod.AddDate(0, 0, -offset)
}

// DayKey は日単位の集計キー ("2006-01-02") を返します
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey は DayKey 形式の文字列を当日0時 (UTC) として解釈します
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}
