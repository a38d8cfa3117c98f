package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandLocale(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   []string
	}{
		{
			name:   "FullLocale_YieldsFallbackChain",
			locale: "sr_RS@latin",
			want:   []string{"sr_RS@latin", "sr_RS", "sr@latin", "sr"},
		},
		{
			name:   "LangCountry_DropsToLang",
			locale: "en_US",
			want:   []string{"en_US", "en"},
		},
		{
			name:   "EncodingSuffix_IsStripped",
			locale: "en_US.UTF-8",
			want:   []string{"en_US", "en"},
		},
		{
			name:   "BareLang_StaysAsIs",
			locale: "de",
			want:   []string{"de"},
		},
		{
			name:   "CLocale_YieldsNothing",
			locale: "C",
			want:   nil,
		},
		{
			name:   "PosixLocale_YieldsNothing",
			locale: "POSIX",
			want:   nil,
		},
		{
			name:   "Empty_YieldsNothing",
			locale: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandLocale(tt.locale))
		})
	}
}

func TestLocalesFromEnv_PrefersLanguageList(t *testing.T) {
	t.Setenv("LANGUAGE", "fr_FR:de")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	got := LocalesFromEnv()

	assert.Equal(t, []string{"fr_FR", "fr", "de", "en_US", "en"}, got)
}

func TestLocalesFromEnv_DeduplicatesAcrossVariables(t *testing.T) {
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	t.Setenv("LC_MESSAGES", "de_DE")
	t.Setenv("LANG", "de_DE")

	got := LocalesFromEnv()

	assert.Equal(t, []string{"de_DE", "de"}, got)
}
