// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateString обрезает строку до указанной длины в символах, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// ContainsFold проверяет, есть ли в списке строка, равная s без учета регистра.
// Возвращает найденное написание.
func ContainsFold(list []string, s string) (string, bool) {
	needle := strings.TrimSpace(s)
	for _, item := range list {
		if strings.EqualFold(item, needle) {
			return item, true
		}
	}
	return "", false
}
