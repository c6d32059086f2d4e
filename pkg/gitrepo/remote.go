// Copyright © 2025 Slipway Authors

package gitrepo

import (
	"regexp"
)

// Remote URL forms that resolve to a host repository:
//
//	git@host:owner/repo.git
//	ssh://git@host/owner/repo.git
//	https://host/owner/repo[.git]
var (
	scpURLRe   = regexp.MustCompile(`^(?:[\w.+-]+@)?[\w.-]+:([\w.-]+)/([\w.-]+?)(?:\.git)?/?$`)
	sshURLRe   = regexp.MustCompile(`^ssh://(?:[\w.+-]+@)?[\w.-]+(?::\d+)?/([\w.-]+)/([\w.-]+?)(?:\.git)?/?$`)
	httpsURLRe = regexp.MustCompile(`^https?://[\w.-]+(?::\d+)?/([\w.-]+)/([\w.-]+?)(?:\.git)?/?$`)
)

// ParseOwnerRepo resolves the host repository owner and name from a remote
// URL. Unresolvable URLs return ok=false; that is a legitimate outcome (the
// release simply skips host publication), not an error.
func ParseOwnerRepo(url string) (owner, repo string, ok bool) {
	for _, re := range []*regexp.Regexp{sshURLRe, httpsURLRe, scpURLRe} {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}
