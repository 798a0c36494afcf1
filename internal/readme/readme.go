// Package readme keeps a marker-delimited section of README.md in sync with
// the walker position.
package readme

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rotisserie/eris"
	"github.com/vinser/issuewalk/internal/move"
	"github.com/vinser/issuewalk/internal/state"
)

const (
	StartMarker = "<!-- issuewalk:start -->"
	EndMarker   = "<!-- issuewalk:end -->"
	DefaultPath = "README.md"

	issueBody = "👋 **Click 'Submit new issue' below to move the walker!**\n\n" +
		"A workflow picks up the issue title, updates the board and closes the issue shortly after."
)

var ErrMarkers = eris.New("readme: section markers not found")

// Splice replaces the text between the last StartMarker and the EndMarker
// that follows it. The markers themselves are kept.
func Splice(content, section string) (string, error) {
	start := strings.LastIndex(content, StartMarker)
	if start == -1 {
		return "", ErrMarkers
	}
	offset := strings.Index(content[start:], EndMarker)
	if offset == -1 {
		return "", ErrMarkers
	}
	end := start + offset

	var sb strings.Builder
	sb.WriteString(content[:start])
	sb.WriteString(StartMarker)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimSpace(section))
	sb.WriteString("\n")
	sb.WriteString(content[end:])
	return sb.String(), nil
}

// Section builds the markdown shown between the markers. repo is owner/name;
// without it the move link is omitted.
func Section(repo, svgPath string, pos state.Position) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "![walker](%s)\n\n", svgPath)
	fmt.Fprintf(&sb, "Walker is at **x=%d, y=%d**.\n", pos.X, pos.Y)
	if repo != "" {
		fmt.Fprintf(&sb, "\n| Move |\n|:---:|\n| [⬆️ up](%s) |\n", IssueLink(repo, move.Up))
	}
	return sb.String()
}

// IssueLink returns a new-issue URL on repo with the title preset to mv.
func IssueLink(repo, mv string) string {
	return fmt.Sprintf("https://github.com/%s/issues/new?title=%s&body=%s",
		repo, url.QueryEscape(mv), url.QueryEscape(issueBody))
}

// Updater rewrites the README section on every render.
type Updater struct {
	Path    string
	Repo    string
	SVGPath string
}

func (u *Updater) Render(ctx context.Context, pos state.Position) error {
	commit, err := u.Stage(ctx, pos)
	if err != nil {
		return err
	}
	return commit()
}

// Stage reads and splices the README in memory. Nothing is written until
// commit runs.
func (u *Updater) Stage(ctx context.Context, pos state.Position) (func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "readme update cancelled")
	}
	path := u.Path
	if path == "" {
		path = DefaultPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reading %s", path)
	}
	out, err := Splice(string(raw), Section(u.Repo, u.SVGPath, pos))
	if err != nil {
		return nil, eris.Wrapf(err, "updating %s", path)
	}
	commit := func() error {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return eris.Wrapf(err, "writing %s", path)
		}
		return nil
	}
	return commit, nil
}

// Preview renders markdown for a terminal of the given width.
func Preview(markdown string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("pink"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown //noop
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown //noop
	}
	return out
}
