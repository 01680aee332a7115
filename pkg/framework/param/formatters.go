package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PercentFormatter shows a 0-1 value as a percentage
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value*100)
}

// PercentParser parses "50%" or "50" into 0.5
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// LevelFormatter shows a linear amplitude with its dBFS equivalent
func LevelFormatter(value float64) string {
	if value <= 0 {
		return "0.000 (-∞ dB)"
	}
	return fmt.Sprintf("%.3f (%.1f dB)", value, 20*math.Log10(value))
}

// LevelParser accepts a linear value or a value suffixed with "dB"
func LevelParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	lower := strings.ToLower(str)
	if strings.HasSuffix(lower, "db") {
		db, err := strconv.ParseFloat(strings.TrimSpace(str[:len(str)-2]), 64)
		if err != nil {
			return 0, err
		}
		return math.Pow(10, db/20), nil
	}
	return strconv.ParseFloat(str, 64)
}
