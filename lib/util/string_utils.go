package util

// FirstNonEmpty returns the first value that is not the empty string, or "" if all are empty
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
