package model

import "time"

// ComputeStatus derives an event's display status from its scheduled time
// and the observation time. An event is upcoming while its scheduled time is
// in the future, ongoing from its scheduled time until 23:59 of the same
// calendar day, and past afterwards.
func ComputeStatus(scheduledAt, now time.Time) EventStatus {
	if scheduledAt.After(now) {
		return StatusUpcoming
	}
	endOfDay := time.Date(
		scheduledAt.Year(), scheduledAt.Month(), scheduledAt.Day(),
		23, 59, 0, 0, scheduledAt.Location(),
	)
	if !now.After(endOfDay) {
		return StatusOngoing
	}
	return StatusPast
}
