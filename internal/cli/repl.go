package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("usage")

func (a *App) runREPL(ctx context.Context) {
	if a.interactive {
		fmt.Fprintln(a.out, "megastore inspector (type 'help' for commands)")
	}

	for ctx.Err() == nil {
		if a.interactive {
			fmt.Fprint(a.out, "storectl> ")
		}

		line, err := a.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			a.log.Error(ctx, "error reading input", "error", err)
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) > 0 {
			if !a.dispatch(ctx, parts[0], parts[1:]) {
				return
			}
		}
		if eof {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should continue.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	var err error

	switch cmd {
	case "help":
		a.help()
	case "id":
		fmt.Fprintf(a.out, "%s %s\n", a.store.ID(), a.store.Path())
	case "nodes":
		err = a.listNodes(ctx)
	case "node":
		err = a.showNode(ctx, args)
	case "rmnode":
		err = a.removeNode(ctx, args)
	case "clearnodes":
		err = a.clearNodes(ctx)
	case "user":
		err = a.showUser(ctx, args)
	case "adduser":
		err = a.addUser(ctx)
	case "setname":
		err = a.setUserField(ctx, args)
	case "draft":
		err = a.showDraft(ctx, args)
	case "setdraft":
		err = a.setDraft(ctx, args)
	case "exit", "quit":
		return false
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return true
	}

	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return true
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands: id, nodes, node, rmnode, clearnodes, user, adduser, setname, draft, setdraft, exit")
}
