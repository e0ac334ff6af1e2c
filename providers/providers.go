// Package providers holds helpers shared by the sport statistics gateways.
package providers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// APIDate translates a slip date ("DD/MM/YYYY HH:MM") into the "YYYY-MM-DD"
// convention the statistics providers use. A date that does not fit the slip
// shape defaults to today rather than failing the resolution.
func APIDate(raw string, now time.Time) string {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) > 0 {
		parts := strings.Split(fields[0], "/")
		if len(parts) == 3 {
			day, errD := strconv.Atoi(parts[0])
			month, errM := strconv.Atoi(parts[1])
			year, errY := strconv.Atoi(parts[2])
			if errD == nil && errM == nil && errY == nil {
				return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			}
		}
	}
	return now.Format("2006-01-02")
}
