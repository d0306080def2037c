package domain

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count the way the viewer labels payload sizes:
// "0 Bytes", "512 Bytes", "1.5 KB", "2.34 MB". Powers of 1024, at most two
// decimals, trailing zeros trimmed.
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i < 0 {
		i = 0
	}
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	v := float64(n) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}
