package attendance

import (
	"testing"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)

func TestNewDayWindow(t *testing.T) {
	t.Run("current month starts with today visible", func(t *testing.T) {
		w := NewDayWindow(3, 2024, now)
		assert.True(t, w.IsCurrentMonth())
		assert.Equal(t, []int{12}, w.VisibleDays())
		assert.Empty(t, w.EditableDays())
	})

	t.Run("other month starts empty", func(t *testing.T) {
		w := NewDayWindow(1, 2024, now)
		assert.False(t, w.IsCurrentMonth())
		assert.Empty(t, w.VisibleDays())
	})
}

func TestEditableSubsetOfVisible(t *testing.T) {
	w := NewDayWindow(1, 2024, now)

	// day 15 was not visible; making it editable must also show it
	w.ToggleEditable(15)

	assert.True(t, w.IsEditable(15))
	assert.True(t, w.IsVisible(15))

	// the invariant holds after arbitrary toggles
	w.ToggleVisible(20)
	w.ToggleEditable(20)
	w.ToggleVisible(15) // hiding drops editability too
	for _, d := range w.EditableDays() {
		assert.True(t, w.IsVisible(d), "editable day %d must be visible", d)
	}
	assert.False(t, w.IsEditable(15))
}

func TestTodayImplicitlyEditable(t *testing.T) {
	t.Run("today is editable without being in the explicit set", func(t *testing.T) {
		w := NewDayWindow(3, 2024, now)
		assert.True(t, w.IsEditable(12))
		assert.Empty(t, w.EditableDays())
	})

	t.Run("not on another month", func(t *testing.T) {
		w := NewDayWindow(1, 2024, now)
		assert.False(t, w.IsEditable(12))
	})
}

func TestVisibleTransitions(t *testing.T) {
	w := NewDayWindow(3, 2024, now)

	w.SelectAllVisible()
	assert.Len(t, w.VisibleDays(), 31)

	w.ResetVisible()
	assert.Equal(t, []int{12}, w.VisibleDays())

	// reset on a non-current month collapses to empty
	other := NewDayWindow(2, 2024, now)
	other.SelectAllVisible()
	assert.Len(t, other.VisibleDays(), 29) // 2024 is a leap year
	other.ResetVisible()
	assert.Empty(t, other.VisibleDays())
}

func TestOutOfRangeDaysIgnored(t *testing.T) {
	w := NewDayWindow(2, 2024, now)
	w.ToggleVisible(30)
	w.ToggleEditable(0)
	w.ToggleEditable(35)
	assert.Empty(t, w.VisibleDays())
	assert.Empty(t, w.EditableDays())
}

func TestBuildSaveBatch(t *testing.T) {
	t.Run("unset cells default to absent", func(t *testing.T) {
		w := NewDayWindow(1, 2024, now)
		w.ToggleEditable(5)

		marked := map[int]map[int]models.AttendanceStatus{
			1: {5: models.Present},
			// student 2 never touched
		}

		batch := BuildSaveBatch(w, []int{1, 2}, marked)
		require.Len(t, batch, 2)

		assert.Equal(t, models.Present, batch[0].Status)
		assert.Equal(t, "2024-01-05", batch[0].Date)
		assert.Equal(t, 2, batch[1].StudentID)
		assert.Equal(t, models.Absent, batch[1].Status)
	})

	t.Run("save covers explicit editable days plus today", func(t *testing.T) {
		w := NewDayWindow(3, 2024, now)
		w.ToggleEditable(5)

		batch := BuildSaveBatch(w, []int{1}, nil)
		require.Len(t, batch, 2)
		assert.Equal(t, "2024-03-05", batch[0].Date)
		assert.Equal(t, "2024-03-12", batch[1].Date)
		for _, rec := range batch {
			assert.Equal(t, models.Absent, rec.Status)
		}
	})

	t.Run("no editable days on another month saves nothing", func(t *testing.T) {
		w := NewDayWindow(1, 2024, now)
		assert.Empty(t, BuildSaveBatch(w, []int{1, 2}, nil))
	})
}
