package numberutils

import "strconv"

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ToUint parses the given string as an unsigned integer identifier.
// It returns 0 and false when the string is not a valid positive number.
func ToUint(s string) (uint, bool) {
	i, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(i), true
}

// ToBoolWithDefault converts the given string to a boolean.
// If the string cannot be converted, it returns the provided default value.
func ToBoolWithDefault(s string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultVal
}
