package utils

import (
	"time"

	"github.com/araddon/dateparse"
)

func TimeParser(datestr string) (time.Time, error) {
	t, err := dateparse.ParseAny(datestr)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ParseTimeRange parses optional start/end strings. An empty string leaves
// the corresponding bound zero-valued, meaning unbounded.
func ParseTimeRange(startstr, endstr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startstr != "" {
		if start, err = TimeParser(startstr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endstr != "" {
		if end, err = TimeParser(endstr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}
