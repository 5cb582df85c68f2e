package domain

import "time"

// Announcement is a broadcast message shown on the dashboard.
type Announcement struct {
	AnnouncementID int64
	Title          string
	Body           string
	Audience       string
	CreatedAt      time.Time
}

// Notification is a per-driver message. Plan confirmation writes one
// notification per delivery leg summarizing the assignment.
type Notification struct {
	NotificationID int64
	DriverID       int64
	Title          string
	Body           string
	Read           bool
	CreatedAt      time.Time
}
