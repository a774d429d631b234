package services

import (
	"database/sql"
	"fmt"

	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
)

// NotifyAbsentees records an absence notification per student. Gateway
// delivery is outside this service: a student with a phone number is
// logged as sent, one without as failed, and the counts surface verbatim
// in the attendance save response.
func NotifyAbsentees(db *sql.DB, students []*models.Student, date string) (sent, failed int) {
	for _, s := range students {
		logEntry := &models.SMSLog{
			StudentID: &s.ID,
			Message:   fmt.Sprintf("%s (roll %d) was absent on %s.", s.Name, s.Roll, date),
		}

		if s.Phone != nil && *s.Phone != "" {
			logEntry.Phone = *s.Phone
			logEntry.Status = models.SMSSent
		} else {
			logEntry.Status = models.SMSFailed
		}

		if err := database.CreateSMSLog(db, logEntry); err != nil {
			failed++
			continue
		}
		if logEntry.Status == models.SMSSent {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}
