// internal/engine/ledger.go
package engine

import (
	"time"

	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/model"

	"github.com/google/uuid"
)

// DaySet は学習した日の集合です。キーは dateutil.DayKey 形式。
type DaySet map[string]struct{}

// Contains はその日が集合に含まれるかを返します
func (s DaySet) Contains(t time.Time) bool {
	_, ok := s[dateutil.DayKey(t)]
	return ok
}

// Ledger は読み込み済みの学習記録のスナップショットです。
// 全ての集計関数は読み取り専用で、同じスナップショットに対して常に同じ結果を返します。
type Ledger struct {
	logs []model.StudyLog
}

func NewLedger(logs []model.StudyLog) *Ledger {
	return &Ledger{logs: logs}
}

// EntriesFor は指定教材の記録を返します
func (l *Ledger) EntriesFor(materialID uuid.UUID) []model.StudyLog {
	var entries []model.StudyLog
	for _, log := range l.logs {
		if log.MaterialID == materialID {
			entries = append(entries, log)
		}
	}
	return entries
}

// AmountOnDay は指定教材・指定日の記録量の合計を返します (なければ0)
func (l *Ledger) AmountOnDay(materialID uuid.UUID, day time.Time) int {
	key := dateutil.DayKey(day)
	total := 0
	for _, log := range l.logs {
		if log.MaterialID == materialID && dateutil.DayKey(log.Date) == key {
			total += log.Amount
		}
	}
	return total
}

// TotalOnDay は全教材をまたいだ指定日の合計を返します
func (l *Ledger) TotalOnDay(day time.Time) int {
	key := dateutil.DayKey(day)
	total := 0
	for _, log := range l.logs {
		if dateutil.DayKey(log.Date) == key {
			total += log.Amount
		}
	}
	return total
}

// DistinctStudyDays は指定教材のいずれかに量が正の記録がある日の集合を返します
func (l *Ledger) DistinctStudyDays(materialIDs []uuid.UUID) DaySet {
	ids := make(map[uuid.UUID]struct{}, len(materialIDs))
	for _, id := range materialIDs {
		ids[id] = struct{}{}
	}
	days := make(DaySet)
	for _, log := range l.logs {
		if _, ok := ids[log.MaterialID]; !ok {
			continue
		}
		if log.Amount <= 0 {
			continue
		}
		days[dateutil.DayKey(log.Date)] = struct{}{}
	}
	return days
}
