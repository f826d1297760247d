package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/megastore/internal/config"
	"github.com/dmitrijs2005/megastore/internal/logging"
	"github.com/dmitrijs2005/megastore/internal/models"
	"github.com/dmitrijs2005/megastore/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct{ h, p uint64 }

func (n node) Handle() uint64       { return n.h }
func (n node) ParentHandle() uint64 { return n.p }

type api struct{}

func (api) Fingerprint(models.RemoteNode) string { return "fp" }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), store.Options{
		Path:        filepath.Join(t.TempDir(), "cli.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// run feeds input to a fresh App over s and returns everything it printed.
func run(t *testing.T, s *store.Store, input string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp(s, logging.Discard(), strings.NewReader(input), &out)
	app.Run(context.Background())
	return out.String()
}

func TestNewApp_OpensStore(t *testing.T) {
	prev := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = prev })

	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "sub", "app.db"),
		BusyTimeout:  time.Second,
		LogLevel:     "error",
	}
	app, err := NewApp(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.False(t, app.interactive)
	assert.NotEmpty(t, app.store.ID())
	require.NoError(t, app.Close())
}

func TestNewApp_Unavailable(t *testing.T) {
	cfg := &config.Config{DatabasePath: ""}
	_, err := NewApp(context.Background(), cfg, logging.Discard())
	require.Error(t, err)
}

func TestRun_IDAndHelp(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "help\nid\n")
	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, s.ID())
	assert.Contains(t, out, s.Path())
}

func TestRun_UnknownCommandAndBlankLines(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "\n   \nfrobnicate\n")
	assert.Equal(t, "Unknown command: frobnicate\n", out)
}

func TestRun_ExitStopsProcessing(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "exit\nhelp\n")
	assert.Empty(t, out)

	out = run(t, s, "quit\nhelp\n")
	assert.Empty(t, out)
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "help")
	assert.Contains(t, out, "Available commands")
}

func TestRun_CancelledContext(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	app := newApp(s, logging.Discard(), strings.NewReader("help\n"), &out)
	app.Run(ctx)
	assert.Empty(t, out.String())
}

func TestRun_InteractivePrompt(t *testing.T) {
	s := openStore(t)
	var out bytes.Buffer
	app := newApp(s, logging.Discard(), strings.NewReader("exit\n"), &out)
	app.interactive = true
	app.Run(context.Background())
	assert.Contains(t, out.String(), "type 'help' for commands")
	assert.Contains(t, out.String(), "storectl> ")
}

func TestRun_Nodes(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	out := run(t, s, "nodes\n")
	assert.Equal(t, "No offline nodes\n", out)

	require.NoError(t, s.InsertOfflineNode(ctx, node{h: 1}, api{}, "/b.txt"))
	require.NoError(t, s.InsertOfflineNode(ctx, node{h: 2}, api{}, "/a.txt"))

	out = run(t, s, "nodes\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "/a.txt\t"))
	assert.True(t, strings.HasPrefix(lines[1], "/b.txt\t"))
	assert.Contains(t, lines[0], "fingerprint=fp")
	assert.Contains(t, lines[0], "handle="+models.NodeHandleToBase64(2)+"(0x2)")
	assert.Contains(t, lines[0], "parent="+models.NodeHandleToBase64(0)+"(0x0)")

	out = run(t, s, "node /a.txt\nnode /missing\nnode\n")
	assert.Contains(t, out, "/a.txt\thandle=")
	assert.Contains(t, out, "Not found\n")
	assert.Contains(t, out, "Error: usage: node <path>\n")
}

func TestRun_RemoveNodes(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.InsertOfflineNode(ctx, node{h: 1}, api{}, "/a.txt"))
	require.NoError(t, s.InsertOfflineNode(ctx, node{h: 2}, api{}, "/b.txt"))

	out := run(t, s, "rmnode /a.txt\nrmnode /a.txt\n")
	assert.Equal(t, "Removed /a.txt\nNot found\n", out)

	n, err := s.FetchOfflineNode(ctx, "/a.txt")
	require.NoError(t, err)
	assert.Nil(t, n)

	out = run(t, s, "clearnodes\n")
	assert.Equal(t, "All offline nodes removed\n", out)

	all, err := s.ListOfflineNodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRun_AddAndShowUser(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	out := run(t, s, "adduser\n0x10\nAda\nLovelace\nada@example.com\nuser 16\n")
	assert.Contains(t, out, "User saved\n")
	assert.Contains(t, out, `16	first="Ada" last="Lovelace" email="ada@example.com"`)

	u, err := s.FetchUser(ctx, 16)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Lovelace", u.LastName)
}

func TestRun_AddUserBadHandle(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "adduser\nnope\n")
	assert.Contains(t, out, `Error: invalid handle "nope"`)
}

func TestRun_ShowUserErrors(t *testing.T) {
	s := openStore(t)
	out := run(t, s, "user 42\nuser\nuser x\n")
	assert.Contains(t, out, "Not found\n")
	assert.Contains(t, out, "Error: usage: user <handle>\n")
	assert.Contains(t, out, `Error: invalid handle "x"`)
}

func TestRun_SetUserField(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.InsertUser(ctx, 7, "Grace", "Hopper", "grace@example.com"))

	out := run(t, s, "setname 7 first Rear Admiral\nsetname 7 email g@navy.mil\n")
	assert.Equal(t, "User updated\nUser updated\n", out)

	u, err := s.FetchUser(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Rear Admiral", u.FirstName)
	assert.Equal(t, "Hopper", u.LastName)
	assert.Equal(t, "g@navy.mil", u.Email)

	out = run(t, s, "setname 7 middle X\nsetname 8 last Y\nsetname 7\n")
	assert.Contains(t, out, `Error: unknown field "middle"`)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "Error: usage: setname")
}

func TestRun_Drafts(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	out := run(t, s, "draft 5\nsetdraft 5 hello   there\ndraft 5\n")
	assert.Equal(t, "Not found\nDraft saved\n5\thello there\n", out)

	out = run(t, s, "setdraft 5\n")
	assert.Equal(t, "Draft cleared\n", out)

	d, err := s.FetchChatDraft(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, d)

	out = run(t, s, "setdraft\ndraft\ndraft -1\n")
	assert.Contains(t, out, "Error: usage: setdraft")
	assert.Contains(t, out, "Error: usage: draft <chatid>")
	assert.Contains(t, out, `Error: invalid handle "-1"`)
}
