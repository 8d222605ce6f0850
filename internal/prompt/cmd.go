package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/config"
	"github.com/cj3636/zprompt/internal/segment"
)

// MinDuration is the shortest elapsed time worth showing.
const MinDuration = 500 * time.Millisecond

// ExecutionInfo describes the previous command: a success or failure icon,
// its duration when started is known and long enough, and a non-zero exit
// status. started is a Unix timestamp in seconds.
func ExecutionInfo(status int, started *float64, now time.Time, theme config.Theme, override *color.Color) segment.Segment {
	icon, def := IconSuccess, theme.Success
	if status != 0 {
		icon, def = IconFailure, theme.Failure
	}

	parts := []string{icon}
	if started != nil {
		elapsed := now.Sub(unixSeconds(*started))
		if d := FormatDuration(elapsed); d != "" {
			parts = append(parts, d)
		}
	}
	if status != 0 {
		parts = append(parts, strconv.Itoa(status))
	}

	return segment.Colored(strings.Join(parts, " "), config.Resolve(def, override, nil))
}

// FormatDuration renders d as e.g. "1d2h3m4s", or with two decimals below one
// second. Durations under MinDuration render as "".
func FormatDuration(d time.Duration) string {
	if d < MinDuration {
		return ""
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	fmt.Fprintf(&b, "%ds", seconds)
	return b.String()
}

func unixSeconds(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}
