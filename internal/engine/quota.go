// internal/engine/quota.go
package engine

import (
	"math"
	"time"

	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/model"
)

// QuotaPlan は教材単位のノルマ設定です。
// Mode が Manual のときは ManualQuota のみ、Auto のときは締切と週目標の設定を使います。
// 文字列のモードフラグを直接分岐に使わず、この閉じた型に寄せています。
type QuotaPlan struct {
	Mode            model.QuotaMode
	ManualQuota     int
	Deadline        *time.Time // 未設定時は資格の試験日で代替
	UseWeeklyTarget bool
}

// GoalQuotaConfig は資格側のノルマ関連設定です
type GoalQuotaConfig struct {
	ExamDate         *time.Time
	WeeklyTargetDays int
	LegacyAutoMode   bool // 旧仕様: 資格単位の自動計算フラグ
}

// QuotaInput はノルマ計算の入力一式です
type QuotaInput struct {
	Remaining int // 残り学習量 (>= 0)
	Plan      QuotaPlan
	Goal      GoalQuotaConfig
	Today     time.Time
}

// PlanFromMaterial は教材モデルから QuotaPlan を組み立てます
func PlanFromMaterial(m *model.Material) QuotaPlan {
	return QuotaPlan{
		Mode:            m.QuotaMode,
		ManualQuota:     m.DailyQuota,
		Deadline:        m.Deadline,
		UseWeeklyTarget: m.UseWeeklyTarget,
	}
}

// GoalConfigFromQualification は資格モデルから GoalQuotaConfig を組み立てます
func GoalConfigFromQualification(q *model.Qualification) GoalQuotaConfig {
	if q == nil {
		return GoalQuotaConfig{WeeklyTargetDays: 7}
	}
	return GoalQuotaConfig{
		ExamDate:         q.ExamDate,
		WeeklyTargetDays: q.WeeklyTargetDays,
		LegacyAutoMode:   q.QuotaMode == model.QuotaModeAuto,
	}
}

// quotaStrategy は1つのノルマ決定ルールです。適用できない場合は ok=false を返します。
type quotaStrategy func(in QuotaInput) (quota int, ok bool)

// 評価順がそのまま優先順位になります:
// 教材単位の自動計算 → 旧仕様の資格単位自動計算 → 手動値。
var quotaStrategies = []quotaStrategy{
	materialAutoQuota,
	legacyGoalAutoQuota,
	manualQuota,
}

// DailyQuota は1日あたりのノルマを計算します。
// 設定が不足している場合はエラーにせず、次のルールへ順に委ねます (最後は必ず手動値)。
func DailyQuota(in QuotaInput) int {
	for _, strategy := range quotaStrategies {
		if quota, ok := strategy(in); ok {
			return quota
		}
	}
	return in.Plan.ManualQuota
}

// materialAutoQuota は教材単位の自動計算です。
// 締切が解決できなければ手動値に落とします (旧仕様パスへは進まない)。
func materialAutoQuota(in QuotaInput) (int, bool) {
	if in.Plan.Mode != model.QuotaModeAuto {
		return 0, false
	}
	deadline := in.Plan.Deadline
	if deadline == nil {
		deadline = in.Goal.ExamDate
	}
	if deadline == nil {
		return in.Plan.ManualQuota, true
	}

	daysLeft := dateutil.DaysBetween(in.Today, dateutil.StartOfDay(*deadline))
	if daysLeft <= 0 {
		// 締切当日以降は残り全量が今日のノルマ
		return in.Remaining, true
	}

	remaining := float64(in.Remaining)
	if in.Plan.UseWeeklyTarget {
		weeklyTarget := in.Goal.WeeklyTargetDays
		if weeklyTarget <= 0 {
			weeklyTarget = 7
		}
		effectiveDays := math.Max(1.0, float64(daysLeft)*float64(weeklyTarget)/7.0)
		return int(math.Ceil(remaining / effectiveDays)), true
	}
	return int(math.Ceil(remaining / float64(daysLeft))), true
}

// legacyGoalAutoQuota は旧仕様 (資格単位の自動計算) の互換パスです。
// 教材が手動モードのままで資格側だけが自動のときに使われます。
// 前提 (試験日あり・残日数が正・週目標が正) を満たさなければ適用しません。
func legacyGoalAutoQuota(in QuotaInput) (int, bool) {
	if in.Plan.Mode != model.QuotaModeManual || !in.Goal.LegacyAutoMode {
		return 0, false
	}
	if in.Goal.ExamDate == nil || in.Goal.WeeklyTargetDays <= 0 {
		return 0, false
	}
	daysLeft := dateutil.DaysBetween(in.Today, dateutil.StartOfDay(*in.Goal.ExamDate))
	if daysLeft <= 0 {
		return 0, false
	}
	effectiveDays := float64(daysLeft) * float64(in.Goal.WeeklyTargetDays) / 7.0
	if effectiveDays <= 0 {
		return 0, false
	}
	return int(math.Ceil(float64(in.Remaining) / effectiveDays)), true
}

func manualQuota(in QuotaInput) (int, bool) {
	return in.Plan.ManualQuota, true
}
