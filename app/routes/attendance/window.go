package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
)

// DayWindow tracks which day columns of a month's attendance grid are
// shown and which are interactive. Editable days are always visible;
// today is implicitly editable when viewing the current month, modeled as
// a derived predicate rather than set membership so the editable-subset-of
// -visible invariant stays mechanically checkable.
type DayWindow struct {
	Month int
	Year  int

	today    int // 0 unless viewing the current month
	visible  map[int]bool
	editable map[int]bool
}

// NewDayWindow builds the initial window for a month view: today's column
// visible when viewing the current month, nothing otherwise.
func NewDayWindow(month, year int, now time.Time) *DayWindow {
	w := &DayWindow{
		Month:    month,
		Year:     year,
		visible:  make(map[int]bool),
		editable: make(map[int]bool),
	}
	if now.Year() == year && int(now.Month()) == month {
		w.today = now.Day()
		w.visible[w.today] = true
	}
	return w
}

// IsCurrentMonth reports whether the window views the month containing
// today.
func (w *DayWindow) IsCurrentMonth() bool {
	return w.today != 0
}

func (w *DayWindow) daysInMonth() int {
	return time.Date(w.Year, time.Month(w.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (w *DayWindow) validDay(day int) bool {
	return day >= 1 && day <= w.daysInMonth()
}

// ToggleVisible flips a day column in or out of the grid. Hiding a day
// also drops it from the explicit editable set so the invariant holds.
func (w *DayWindow) ToggleVisible(day int) {
	if !w.validDay(day) {
		return
	}
	if w.visible[day] {
		delete(w.visible, day)
		delete(w.editable, day)
	} else {
		w.visible[day] = true
	}
}

// SelectAllVisible shows every day of the month.
func (w *DayWindow) SelectAllVisible() {
	for d := 1; d <= w.daysInMonth(); d++ {
		w.visible[d] = true
	}
}

// ResetVisible collapses the grid back to its initial state: today's
// column for the current month, empty otherwise.
func (w *DayWindow) ResetVisible() {
	w.visible = make(map[int]bool)
	w.editable = make(map[int]bool)
	if w.today != 0 {
		w.visible[w.today] = true
	}
}

// ToggleEditable flips a day's interactivity. A day made editable is also
// made visible: a day cannot be edited without being shown.
func (w *DayWindow) ToggleEditable(day int) {
	if !w.validDay(day) {
		return
	}
	if w.editable[day] {
		delete(w.editable, day)
	} else {
		w.editable[day] = true
		w.visible[day] = true
	}
}

func (w *DayWindow) IsVisible(day int) bool {
	return w.visible[day]
}

// IsEditable derives interactivity: explicitly editable, or today when
// viewing the current month.
func (w *DayWindow) IsEditable(day int) bool {
	return w.editable[day] || (w.today != 0 && day == w.today)
}

func sortedDays(set map[int]bool) []int {
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// VisibleDays returns the shown day columns in order.
func (w *DayWindow) VisibleDays() []int {
	return sortedDays(w.visible)
}

// EditableDays returns the explicit editable set in order, without the
// implicit today.
func (w *DayWindow) EditableDays() []int {
	return sortedDays(w.editable)
}

// SaveDays returns the days a save covers: the explicit editable set plus
// today when viewing the current month.
func (w *DayWindow) SaveDays() []int {
	set := make(map[int]bool, len(w.editable)+1)
	for d := range w.editable {
		set[d] = true
	}
	if w.today != 0 {
		set[w.today] = true
	}
	return sortedDays(set)
}

// BuildSaveBatch expands a save into one record per (student, save day).
// A cell with no explicit value is recorded absent: an admin who opened
// the editable window and left a box unchecked has marked that student
// absent, not left the day unset.
func BuildSaveBatch(w *DayWindow, studentIDs []int, marked map[int]map[int]models.AttendanceStatus) []models.Attendance {
	days := w.SaveDays()

	var batch []models.Attendance
	for _, studentID := range studentIDs {
		for _, day := range days {
			status := models.Absent
			if s, ok := marked[studentID][day]; ok {
				status = s
			}
			batch = append(batch, models.Attendance{
				StudentID: studentID,
				Date:      fmt.Sprintf("%04d-%02d-%02d", w.Year, w.Month, day),
				Status:    status,
			})
		}
	}
	return batch
}
