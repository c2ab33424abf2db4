package types

import "testing"

func TestCanonicalLocale(t *testing.T) {
	cases := map[string]string{"en": LocaleEnglish, "EN_us": LocaleEnglish, "zh": LocaleChinese, "zh-CN": LocaleChinese, " zh_CN ": LocaleChinese}
	for in, want := range cases {
		got, ok := CanonicalLocale(in)
		if !ok || got != want {
			t.Fatalf("CanonicalLocale(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "fr", "zh-TW"} {
		if _, ok := CanonicalLocale(in); ok {
			t.Fatalf("CanonicalLocale(%q) should be rejected", in)
		}
	}
}
