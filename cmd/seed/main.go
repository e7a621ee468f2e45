// cmd/seed/main.go
// 開発用のデモデータ投入スクリプト。
// DATABASE_URL が未設定ならローカルのSQLiteファイルに投入します。
package main

import (
	"log"
	"os"
	"time"

	"go_5_tally_keep/internal/dateutil"
	"go_5_tally_keep/internal/model"
	"go_5_tally_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	var db *gorm.DB
	var err error
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db, err = gorm.Open(postgres.Open(dbURL), gormConfig)
	} else {
		log.Println("DATABASE_URL not set, seeding local tally.db (sqlite)")
		db, err = gorm.Open(sqlite.Open("tally.db"), gormConfig)
	}
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	examDate := dateutil.StartOfDay(time.Now()).AddDate(0, 3, 0)
	qual := &model.Qualification{
		QualificationID:  uuid.New(),
		Name:             "基本情報技術者試験",
		ExamDate:         &examDate,
		WeeklyTargetDays: 5,
		QuotaMode:        model.QuotaModeManual,
		IsSelected:       true,
	}

	textbook := &model.Material{
		MaterialID:      uuid.New(),
		QualificationID: qual.QualificationID,
		Name:            "合格教本",
		Unit:            "ページ",
		UnitType:        model.UnitTypeCount,
		TotalAmount:     420,
		QuotaMode:       model.QuotaModeAuto,
		UseWeeklyTarget: true,
		Order:           0,
	}
	listening := &model.Material{
		MaterialID:      uuid.New(),
		QualificationID: qual.QualificationID,
		Name:            "講義動画",
		Unit:            "分",
		UnitType:        model.UnitTypeMinutes,
		TotalAmount:     1200,
		QuotaMode:       model.QuotaModeManual,
		DailyQuota:      30,
		Order:           1,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(qual).Error; err != nil {
			return err
		}
		if err := tx.Create(textbook).Error; err != nil {
			return err
		}
		if err := tx.Create(listening).Error; err != nil {
			return err
		}

		// 直近1週間ぶんの学習記録
		today := dateutil.StartOfDay(time.Now())
		amounts := []int{12, 8, 0, 15, 10, 6, 9} // 6日前〜今日
		total := 0
		for i, amount := range amounts {
			if amount == 0 {
				continue
			}
			total += amount
			log := &model.StudyLog{
				LogID:      uuid.New(),
				MaterialID: textbook.MaterialID,
				Date:       today.AddDate(0, 0, i-6),
				Amount:     amount,
			}
			if err := tx.Create(log).Error; err != nil {
				return err
			}
		}
		return tx.Model(textbook).Update("current_progress", total).Error
	})
	if err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Printf("Seeded qualification %s with 2 materials", qual.QualificationID)
}
