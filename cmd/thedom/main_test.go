package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string) {
	cmd := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errout.String()
}

func TestParseCommand(t *testing.T) {
	out, errout := run(t, "<ul><li>a<li>b</ul>", "parse")
	assert.Equal(t, "<ul>\n <li>\n  a\n </li>\n <li>\n  b\n </li>\n</ul>\n", out)
	assert.Equal(t, 2, strings.Count(errout, "warning:"))
	out, _ = run(t, "<p>\n x \n</p>", "parse", "--minify")
	assert.Equal(t, "<p>x</p>\n", out)
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "form.shpaml")
	require.NoError(t, os.WriteFile(tmpl, []byte("field#f text=Name\n  textbox#user\n"), 0644))
	vars := filepath.Join(dir, "vars.yaml")
	require.NoError(t, os.WriteFile(vars, []byte("p-user: alice\n"), 0644))
	out, _ := run(t, "", "build", tmpl, "--vars", vars, "--prefix", "p-")
	assert.Contains(t, out, `<label for="p-user">`)
	assert.Contains(t, out, `value="alice"`)
}

func TestDumpCommand(t *testing.T) {
	src := `<ul id="m"><li>a</li><li class="x">b</li></ul>`
	out, _ := run(t, src, "dump", "--select", "li.x")
	assert.Equal(t, `<li class="x">b</li>`+"\n", out)
	out, _ = run(t, src, "dump")
	assert.Contains(t, out, "<ul> #m")
	out, _ = run(t, src, "dump", "--dot")
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
}
