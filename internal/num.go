package internal

// Gcd returns the greatest common divisor of two non-negative integers.
func Gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of all values.
// The LCM of no values is 1.
func Lcm(values ...int) (lcm int) {
	lcm = 1
	for _, v := range values {
		if v <= 0 {
			continue
		}
		lcm = lcm / Gcd(lcm, v) * v
	}
	return
}
