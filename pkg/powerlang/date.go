// Package powerlang turns a walk-forward parameter schedule into
// PowerLanguage code: a vars: declaration followed by date-gated assignment
// blocks using the platform's compact seven-digit date encoding.
package powerlang

import (
	"fmt"
	"time"
)

// EncodeDate renders a calendar date in the compact PYYMMDD form consumed
// by the scripting environment: P is "1" for years >= 2000 and "0" before,
// followed by the two-digit year, month and day. 2024-03-05 encodes as
// "1240305", 1998-03-05 as "0980305".
func EncodeDate(t time.Time) string {
	prefix := "0"
	if t.Year() >= 2000 {
		prefix = "1"
	}
	return fmt.Sprintf("%s%02d%02d%02d", prefix, t.Year()%100, int(t.Month()), t.Day())
}
