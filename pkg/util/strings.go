package util

import "strings"

func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length] + "..."
}

func ContainsStringFold(s []string, str string) (string, bool) {
	for _, v := range s {
		if strings.EqualFold(v, str) {
			return v, true
		}
	}

	return "", false
}
