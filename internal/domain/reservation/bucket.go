package reservation

import "time"

type Bucket string

const (
	BucketPending Bucket = "pending"
	BucketOngoing Bucket = "ongoing"
	BucketPast    Bucket = "past"
)

// BucketFor places a reservation in the host dashboard. today is a UTC calendar date.
func BucketFor(status Status, checkOut, today time.Time) Bucket {
	if status.IsTerminal() || checkOut.Before(today) {
		return BucketPast
	}
	if status == StatusPending {
		return BucketPending
	}
	return BucketOngoing
}
