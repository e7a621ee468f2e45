// internal/model/dashboard.go
package model

// MaterialStatus はホーム画面1教材分の表示情報です
type MaterialStatus struct {
	Material        *Material `json:"material"`
	DailyQuota      int       `json:"daily_quota"`       // 今日のノルマ (自動計算込み)
	TodayAmount     int       `json:"today_amount"`      // 今日の記録済み量
	RemainingAmount int       `json:"remaining_amount"`
	ProgressRate    float64   `json:"progress_rate"`
}

// DashboardResponse は選択中の資格のホーム画面情報一式です
type DashboardResponse struct {
	Qualification    *Qualification   `json:"qualification"`
	CurrentStreak    int              `json:"current_streak"`
	WeeklyStudyDays  int              `json:"weekly_study_days"`
	WeeklyTargetDays int              `json:"weekly_target_days"`
	DaysUntilExam    *int             `json:"days_until_exam,omitempty"`
	Materials        []MaterialStatus `json:"materials"`
}

// HeatmapResponse は日別学習量のヒートマップです
type HeatmapResponse struct {
	Months int            `json:"months"`
	Days   map[string]int `json:"days"` // キーは "2006-01-02"
}
