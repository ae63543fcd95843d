package transmission

import "fmt"

// FormatByteCount renders a byte count on a decimal 1000-base ladder with
// octet units: "500 o", "1.50 Ko", "2.00 Mo", "3.00 Go". Counts below one
// kilo-octet are printed whole; larger ones carry the requested number of
// decimal places.
func FormatByteCount(n int64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	f := float64(n)
	switch {
	case f < 1e3 && f > -1e3:
		return fmt.Sprintf("%d o", n)
	case f < 1e6 && f > -1e6:
		return fmt.Sprintf("%.*f Ko", decimals, f/1e3)
	case f < 1e9 && f > -1e9:
		return fmt.Sprintf("%.*f Mo", decimals, f/1e6)
	}
	return fmt.Sprintf("%.*f Go", decimals, f/1e9)
}
