package model

import (
	"testing"
)

func TestConventionalType(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{name: "feat", subject: "feat: add export command", want: "feat"},
		{name: "fix with scope", subject: "fix(parser): handle empty bodies", want: "fix"},
		{name: "breaking bang", subject: "feat!: drop v1 config format", want: "feat"},
		{name: "scoped bang", subject: "refactor(core)!: rework pipeline", want: "refactor"},
		{name: "uppercase type", subject: "Fix: typo", want: "fix"},
		{name: "no prefix", subject: "update readme", want: ""},
		{name: "colon in prose", subject: "note to self: do better", want: ""},
		{name: "unbalanced scope", subject: "feat(oops: broken", want: ""},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Commit{Subject: tt.subject}
			if got := c.ConventionalType(); got != tt.want {
				t.Errorf("ConventionalType(%q) = %q, want %q", tt.subject, got, tt.want)
			}
		})
	}
}

func TestHasBreakingMarker(t *testing.T) {
	tests := []struct {
		name   string
		commit Commit
		want   bool
	}{
		{name: "bang", commit: Commit{Subject: "feat!: new api"}, want: true},
		{name: "scoped bang", commit: Commit{Subject: "fix(auth)!: rotate keys"}, want: true},
		{name: "footer", commit: Commit{Subject: "feat: x", Body: "BREAKING CHANGE: removes y"}, want: true},
		{name: "hyphenated footer", commit: Commit{Subject: "fix: z", Body: "BREAKING-CHANGE: alters z"}, want: true},
		{name: "lowercase footer", commit: Commit{Subject: "fix: z", Body: "breaking change: alters z"}, want: true},
		{name: "plain feat", commit: Commit{Subject: "feat: add thing"}, want: false},
		{name: "no prefix", commit: Commit{Subject: "tidy up!"}, want: false},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.commit.HasBreakingMarker(); got != tt.want {
				t.Errorf("HasBreakingMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}
