package git

import (
	"strings"
)

// DefaultRemote is the conventional name of the primary remote.
const DefaultRemote = "origin"

// Remote is one line of `git remote -v` output.
type Remote struct {
	Name      string
	URL       string
	Direction string // "fetch" or "push"
}

// ParseRemotes parses the output of `git remote -v`.
// Lines that do not have at least a name and a URL are skipped.
func ParseRemotes(output string) []Remote {
	var remotes []Remote
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		remote := Remote{Name: fields[0], URL: fields[1]}
		if len(fields) > 2 {
			remote.Direction = strings.Trim(fields[2], "()")
		}
		remotes = append(remotes, remote)
	}
	return remotes
}

// HasRemote reports whether a remote with exactly the given name is listed.
func HasRemote(remotes []Remote, name string) bool {
	for _, r := range remotes {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RemoteNames returns the distinct remote names in listing order.
func RemoteNames(remotes []Remote) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range remotes {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names
}
