package utils

import "strconv"

// FormatRupiah renders an amount in smallest currency units as a display
// string with thousands separators, e.g. 1234567 -> "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return sign + "Rp " + string(out)
}
