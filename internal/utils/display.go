package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a key such as "mining" or "deep_mining" into "Mining" or "Deep Mining"
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
