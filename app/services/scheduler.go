package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Mutiur03/School-sub002/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05)
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				if err := SendDailyAbsentSummary(db, now); err != nil {
					log.Printf("Error sending daily absent summary: %v", err)
				}

				if n, err := database.DeleteExpiredSessions(db); err != nil {
					log.Printf("Error purging expired sessions: %v", err)
				} else if n > 0 {
					log.Printf("Purged %d expired sessions", n)
				}
			}
		}
	}()
}

// SendDailyAbsentSummary logs absence notifications for every student
// recorded absent today. Days whose attendance was never saved produce no
// notifications; the default-absent rule only applies at save time.
func SendDailyAbsentSummary(db *sql.DB, date time.Time) error {
	absentees, err := database.GetAbsenteesByDate(db, date)
	if err != nil {
		return err
	}
	if len(absentees) == 0 {
		return nil
	}

	sent, failed := NotifyAbsentees(db, absentees, date.Format("2006-01-02"))
	log.Printf("Absent summary for %s: %d notified, %d failed", date.Format("2006-01-02"), sent, failed)
	return nil
}
