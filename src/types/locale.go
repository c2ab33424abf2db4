package types

import "strings"

// Label set locales.
const (
	LocaleEnglish = "en"
	LocaleChinese = "zh"
)

// CanonicalLocale maps an accepted locale spelling (case-insensitive, region suffix
// optional) to LocaleEnglish or LocaleChinese.
func CanonicalLocale(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us", "en_us", "en-gb", "en_gb":
		return LocaleEnglish, true
	case "zh", "zh-cn", "zh_cn", "zh-hans":
		return LocaleChinese, true
	}
	return "", false
}
