package desktop

import (
	"os"
	"strings"
)

// LocalesFromEnv derives the locale preference list from the standard
// environment variables, most specific first. LANGUAGE (a colon-separated
// list) wins over LC_ALL, LC_MESSAGES and LANG. Each entry is expanded to
// its fallback chain, e.g. "sr_RS@latin" yields
// ["sr_RS@latin", "sr_RS", "sr@latin", "sr"].
func LocalesFromEnv() []string {
	var raw []string
	if v := os.Getenv("LANGUAGE"); v != "" {
		raw = append(raw, strings.Split(v, ":")...)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			raw = append(raw, v)
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, entry := range raw {
		for _, locale := range ExpandLocale(entry) {
			if !seen[locale] {
				seen[locale] = true
				out = append(out, locale)
			}
		}
	}
	return out
}

// ExpandLocale expands one locale string into its fallback chain, stripping
// any ".ENCODING" suffix. "C" and "POSIX" carry no language information and
// expand to nothing.
func ExpandLocale(locale string) []string {
	if dot := strings.Index(locale, "."); dot != -1 {
		// "en_US.UTF-8" keeps a possible "@mod" after the encoding
		rest := ""
		if at := strings.Index(locale[dot:], "@"); at != -1 {
			rest = locale[dot+at:]
		}
		locale = locale[:dot] + rest
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}

	var (
		lang    = locale
		country string
		mod     string
	)
	if at := strings.Index(lang, "@"); at != -1 {
		mod = lang[at+1:]
		lang = lang[:at]
	}
	if us := strings.Index(lang, "_"); us != -1 {
		country = lang[us+1:]
		lang = lang[:us]
	}

	var chain []string
	if country != "" && mod != "" {
		chain = append(chain, lang+"_"+country+"@"+mod)
	}
	if country != "" {
		chain = append(chain, lang+"_"+country)
	}
	if mod != "" {
		chain = append(chain, lang+"@"+mod)
	}
	chain = append(chain, lang)
	return chain
}
