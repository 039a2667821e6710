// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-portal/internal/config"
	"github.com/MKhiriev/go-portal/internal/service"
	"github.com/MKhiriev/go-portal/internal/store"
	"github.com/MKhiriev/go-portal/models"
)

type portalctl struct {
	t      *testing.T
	dbPath string
	extra  []string
}

func newPortalctl(t *testing.T, extra ...string) *portalctl {
	t.Helper()
	return &portalctl{
		t:      t,
		dbPath: filepath.Join(t.TempDir(), "db", "database.db"),
		extra:  extra,
	}
}

// run executes one command against the test database and returns its
// standard output.
func (p *portalctl) run(args ...string) (string, error) {
	p.t.Helper()

	cmd := NewRootCommand(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)

	base := []string{"--db", p.dbPath, "--bcrypt-cost", "4"}
	cmd.SetArgs(append(append(args, base...), p.extra...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (p *portalctl) mustRun(args ...string) string {
	p.t.Helper()
	out, err := p.run(args...)
	require.NoError(p.t, err, "portalctl %s", strings.Join(args, " "))
	return out
}

func TestInit_SeedsOnce(t *testing.T) {
	p := newPortalctl(t)

	out := p.mustRun("init")
	assert.Contains(t, out, `seed:     "root" created`)
	assert.Contains(t, out, "users, announcements, articles, messages")
	assert.Contains(t, out, "run:      ")

	out = p.mustRun("init")
	assert.Contains(t, out, `"root" already present`)

	out = p.mustRun("user", "list")
	assert.Equal(t, "root (root)\n", out)

	out = p.mustRun("verify")
	assert.Equal(t, "ok    users\nok    announcements\nok    articles\nok    messages\n", out)
}

func TestInit_ModerncDriverAndPlaintextSeed(t *testing.T) {
	p := newPortalctl(t,
		"--driver", config.DriverModernc,
		"--credential-policy", config.PolicyPlaintext,
		"--seed-password", "hunter2")

	p.mustRun("init")

	out := p.mustRun("user", "check", "root", "--password", "hunter2")
	assert.Equal(t, "ok root (root)\n", out)

	_, err := p.run("user", "check", "root", "--password", "wrong")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)
}

func TestInit_InvalidConfig(t *testing.T) {
	p := newPortalctl(t, "--credential-policy", config.PolicyPlaintext)

	_, err := p.run("init")
	assert.ErrorIs(t, err, config.ErrInvalidAppConfigs)
}

func TestVerify_MissingDatabase(t *testing.T) {
	p := newPortalctl(t)

	out, err := p.run("verify")
	assert.ErrorIs(t, err, store.ErrSchemaMismatch)
	assert.Contains(t, out, "FAIL  users")
	assert.Contains(t, out, "database file is missing")
}

func TestUserLifecycle(t *testing.T) {
	p := newPortalctl(t)
	p.mustRun("init")

	out := p.mustRun("user", "add", "--username", "editor", "--name", "Editor", "--password", "pw1")
	assert.Equal(t, "created Editor (editor)\n", out)

	_, err := p.run("user", "add", "--username", "editor", "--name", "Other", "--password", "x")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	p.mustRun("user", "check", "editor", "--password", "pw1")

	out = p.mustRun("user", "edit", "editor", "--name", "Chief Editor")
	assert.Equal(t, "updated Chief Editor (editor)\n", out)
	p.mustRun("user", "check", "editor", "--password", "pw1")

	p.mustRun("user", "edit", "editor", "--new-username", "chief", "--password", "pw2")
	_, err = p.run("user", "check", "chief", "--password", "pw1")
	assert.ErrorIs(t, err, service.ErrWrongCredentials)
	p.mustRun("user", "check", "chief", "--password", "pw2")

	out = p.mustRun("user", "list")
	assert.Equal(t, "root (root)\nChief Editor (chief)\n", out)

	p.mustRun("user", "delete", "chief")
	_, err = p.run("user", "delete", "chief")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = p.run("user", "edit", "ghost", "--name", "Ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostsAndMessages(t *testing.T) {
	p := newPortalctl(t)
	p.mustRun("init")

	for _, title := range []string{"First", "Second", "Third"} {
		p.mustRun("post", "add", "articles",
			"--image", "img.png", "--title", title, "--content", "Body",
			"--date", "2024-01-01", "--author", "root")
	}

	out := p.mustRun("list", "articles", "--page-size", "2")
	assert.Equal(t, "#3  2024-01-01  Third  (root)\n#2  2024-01-01  Second  (root)\npage 1 of 2 (3 total)\n", out)

	out = p.mustRun("list", "articles", "--page", "2", "--page-size", "2")
	assert.Equal(t, "#1  2024-01-01  First  (root)\npage 2 of 2 (3 total)\n", out)

	_, err := p.run("list", "articles", "--page-size", "9223372036854775807")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	out = p.mustRun("list", "announcements")
	assert.Equal(t, "page 1 of 0 (0 total)\n", out)

	p.mustRun("post", "edit", "articles", "2", "--title", "Second, edited")
	out = p.mustRun("post", "get", "articles", "2")
	assert.Contains(t, out, "#2  2024-01-01  Second, edited  (root)")
	assert.Contains(t, out, "image: img.png")

	_, err = p.run("post", "add", "articles", "--title", "Incomplete")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = p.run("post", "get", "pages", "1")
	assert.Error(t, err)

	p.mustRun("post", "delete", "articles", "2")
	_, err = p.run("post", "get", "articles", "2")
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	p.mustRun("message", "add", "--text", "Hello there", "--email", "jane@example.com")
	out = p.mustRun("list", "messages")
	assert.Equal(t, "#1  - <jane@example.com> [-]\n    Hello there\n", out)
}

func TestVersion(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-01-01\nBuild commit: abc123\n", out.String())
}

func TestVersion_FallsBackToSemver(t *testing.T) {
	cmd := NewRootCommand(models.NewAppBuildInfo("", "", ""))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: "+version.String())
}
