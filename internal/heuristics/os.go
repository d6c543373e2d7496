package heuristics

import "regexp"

// Platform is an os.platform()-style operating system name.
type Platform string

const (
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Win32   Platform = "win32"
	FreeBSD Platform = "freebsd"
	OpenBSD Platform = "openbsd"
	SunOS   Platform = "sunos"
	AIX     Platform = "aix"
	Android Platform = "android"
)

type osRule struct {
	pattern  *regexp.Regexp
	platform Platform
}

// osRules are evaluated in order and the first match wins. The case-sensitive
// "Windows" rule precedes the case-insensitive word-bounded family rule, and
// all macOS spellings resolve through the single darwin rule so a title naming
// both macOS and Darwin yields one fact.
var osRules = []osRule{
	{regexp.MustCompile(`(?i)linux`), Linux},
	{regexp.MustCompile(`(?i)darwin|macos|ios`), Darwin},
	{regexp.MustCompile(`Windows`), Win32},
	{regexp.MustCompile(`(?i)\b(win32|win64|windows|win)\b`), Win32},
	{regexp.MustCompile(`(?i)freebsd`), FreeBSD},
	{regexp.MustCompile(`(?i)openbsd`), OpenBSD},
	{regexp.MustCompile(`(?i)sunos`), SunOS},
	{regexp.MustCompile(`(?i)aix`), AIX},
	{regexp.MustCompile(`(?i)android`), Android},
}

// DetectOS returns the platform of the first rule matching anywhere in title.
func DetectOS(title string) (Platform, bool) {
	for _, rule := range osRules {
		if rule.pattern.MatchString(title) {
			return rule.platform, true
		}
	}
	return "", false
}
