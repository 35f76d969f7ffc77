package scheduling

import (
	"sort"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// Buckets is the day-relative view of an appointment list.
// Pending and Today are disjoint; every appointment lands in Pending or All.
type Buckets struct {
	Today   []*domain.Appointment
	Pending []*domain.Appointment
	Expired []*domain.Appointment
	All     []*domain.Appointment // non-pending, nearest first
}

// Classify partitions appointments relative to now. Calendar days are compared in the
// location of each appointment's ScheduledAt.
func Classify(appointments []*domain.Appointment, now time.Time) Buckets {
	b := Buckets{
		Today:   make([]*domain.Appointment, 0),
		Pending: make([]*domain.Appointment, 0),
		Expired: make([]*domain.Appointment, 0),
		All:     make([]*domain.Appointment, 0, len(appointments)),
	}

	for _, a := range appointments {
		if a == nil {
			continue
		}

		if a.IsPending() {
			b.Pending = append(b.Pending, a)
		} else {
			b.All = append(b.All, a)
			if isSameDay(a.ScheduledAt, now.In(a.ScheduledAt.Location())) {
				b.Today = append(b.Today, a)
			}
		}

		if a.ScheduledAt.Before(now) && !a.IsCompleted() {
			b.Expired = append(b.Expired, a)
		}
	}

	sort.SliceStable(b.All, func(i, j int) bool {
		return b.All[i].ScheduledAt.Before(b.All[j].ScheduledAt)
	})

	return b
}

// Localize returns copies of appointments with ScheduledAt moved to the business wall clock
func Localize(appointments []*domain.Appointment, hours domain.BusinessHours) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a == nil {
			continue
		}
		c := *a
		c.ScheduledAt = hours.Local(a.ScheduledAt)
		out = append(out, &c)
	}
	return out
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
