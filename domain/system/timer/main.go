//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package timer

import "time"

// ITimer clock used to measure configure/build durations
type ITimer interface {
	Now() time.Time
}
