package domain

import "strings"

// Dockerfile is the immutable, ordered text produced by resolving a conf.
type Dockerfile struct {
	content string
}

// DockerfileBuilder accumulates fragments into a Dockerfile.
type DockerfileBuilder struct {
	sb strings.Builder
}

// AppendLine appends a single line terminated by a line break.
func (b *DockerfileBuilder) AppendLine(line string) {
	b.sb.WriteString(line)
	b.sb.WriteByte('\n')
}

// AppendFragment appends a fragment verbatim, terminating it with exactly one
// line break if it does not already end with one. Empty fragments are skipped.
func (b *DockerfileBuilder) AppendFragment(fragment string) {
	if fragment == "" {
		return
	}
	b.sb.WriteString(fragment)
	if !strings.HasSuffix(fragment, "\n") {
		b.sb.WriteByte('\n')
	}
}

// Build freezes the accumulated text.
func (b *DockerfileBuilder) Build() *Dockerfile {
	return &Dockerfile{content: b.sb.String()}
}

// NewDockerfile wraps existing Dockerfile text, e.g. read back from disk.
func NewDockerfile(content string) *Dockerfile {
	return &Dockerfile{content: content}
}

// String returns the full Dockerfile text.
func (d *Dockerfile) String() string {
	return d.content
}

// Bytes returns the Dockerfile text as bytes, passing any non-ASCII bytes through unchanged.
func (d *Dockerfile) Bytes() []byte {
	return []byte(d.content)
}

// Lines returns the Dockerfile split into lines without their terminators.
// Line i of the result is source line i+1, matching linter line numbers.
func (d *Dockerfile) Lines() []string {
	if d.content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(d.content, "\n"), "\n")
}
