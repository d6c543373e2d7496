package heuristics

import "strings"

// containerTerms are matched as lowercase substrings of the title.
var containerTerms = []string{
	"docker", "container", "containerised", "containerized", "dockerised", "dockerized",
}

// IsContainerised reports whether the title mentions Docker or containers.
func IsContainerised(title string) bool {
	t := strings.ToLower(title)
	for _, term := range containerTerms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
