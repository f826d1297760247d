package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/megastore/internal/models"
)

// handleLabel renders a base64 node handle with its numeric value.
func handleLabel(b64 string) string {
	h, err := models.Base64ToNodeHandle(b64)
	if err != nil {
		return b64
	}
	return fmt.Sprintf("%s(%#x)", b64, h)
}

func (a *App) printNode(n *models.OfflineNode) {
	fmt.Fprintf(a.out, "%s\thandle=%s parent=%s fingerprint=%s downloaded=%s\n",
		n.LocalPath, handleLabel(n.Base64Handle), handleLabel(n.ParentBase64Handle), n.Fingerprint,
		n.DownloadedAt.UTC().Format(time.RFC3339))
}

func (a *App) listNodes(ctx context.Context) error {
	nodes, err := a.store.ListOfflineNodes(ctx)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		fmt.Fprintln(a.out, "No offline nodes")
		return nil
	}
	for _, n := range nodes {
		a.printNode(n)
	}
	return nil
}

func (a *App) showNode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: node <path>", errUsage)
	}
	n, err := a.store.FetchOfflineNode(ctx, args[0])
	if err != nil {
		return err
	}
	if n == nil {
		fmt.Fprintln(a.out, "Not found")
		return nil
	}
	a.printNode(n)
	return nil
}

func (a *App) removeNode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rmnode <path>", errUsage)
	}
	n, err := a.store.FetchOfflineNode(ctx, args[0])
	if err != nil {
		return err
	}
	if n == nil {
		fmt.Fprintln(a.out, "Not found")
		return nil
	}
	if err := a.store.RemoveOfflineNode(ctx, n); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Removed", n.LocalPath)
	return nil
}

func (a *App) clearNodes(ctx context.Context) error {
	if err := a.store.RemoveAllOfflineNodes(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All offline nodes removed")
	return nil
}

func (a *App) showUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: user <handle>", errUsage)
	}
	h, err := parseKey(args[0])
	if err != nil {
		return err
	}
	u, err := a.store.FetchUser(ctx, h)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not found")
		return nil
	}
	fmt.Fprintf(a.out, "%d\tfirst=%q last=%q email=%q\n", u.Handle, u.FirstName, u.LastName, u.Email)
	return nil
}

func (a *App) addUser(ctx context.Context) error {
	raw, err := GetSimpleText(a.reader, "Handle:", a.out)
	if err != nil {
		return err
	}
	h, err := parseKey(raw)
	if err != nil {
		return err
	}

	first, err := GetSimpleText(a.reader, "First name:", a.out)
	if err != nil {
		return err
	}
	last, err := GetSimpleText(a.reader, "Last name:", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		return err
	}

	if err := a.store.InsertUser(ctx, h, first, last, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User saved")
	return nil
}

func (a *App) setUserField(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: setname <handle> first|last|email <value>", errUsage)
	}
	h, err := parseKey(args[0])
	if err != nil {
		return err
	}
	value := strings.Join(args[2:], " ")

	var patch models.UserPatch
	switch args[1] {
	case "first":
		patch.FirstName = &value
	case "last":
		patch.LastName = &value
	case "email":
		patch.Email = &value
	default:
		return fmt.Errorf("unknown field %q", args[1])
	}

	if err := a.store.UpdateUser(ctx, h, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User updated")
	return nil
}

func (a *App) showDraft(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: draft <chatid>", errUsage)
	}
	id, err := parseKey(args[0])
	if err != nil {
		return err
	}
	d, err := a.store.FetchChatDraft(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Fprintln(a.out, "Not found")
		return nil
	}
	fmt.Fprintf(a.out, "%d\t%s\n", d.ChatID, d.Text)
	return nil
}

func (a *App) setDraft(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: setdraft <chatid> [text...]", errUsage)
	}
	id, err := parseKey(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if err := a.store.UpsertChatDraft(ctx, id, text); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(a.out, "Draft cleared")
	} else {
		fmt.Fprintln(a.out, "Draft saved")
	}
	return nil
}
