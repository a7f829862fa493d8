package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `usage: client [-a address] [-t token] <command> [arguments]

commands:
  register <name> <email> <password>
  login <email> <password>
  profile
  list
  add <title> <description> [tag]
  update [-title t] [-description d] [-tag g] <id>
  delete <id>
  version`

type command struct {
	args int // exact number of positional arguments, -1 when variable
	run  func(ctx context.Context, args []string) (any, error)
}

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register": {args: 3, run: a.register},
		"login":    {args: 2, run: a.login},
		"profile":  {args: 0, run: a.profile},
		"list":     {args: 0, run: a.list},
		"add":      {args: -1, run: a.add},
		"update":   {args: -1, run: a.update},
		"delete":   {args: 1, run: a.delete},
		"version":  {args: 0, run: a.version},
	}
	return a
}

// Run executes args[0] with the remaining arguments and writes its result
// to the output.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if cmd.args >= 0 && len(rest) != cmd.args {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, name, cmd.args, len(rest))
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	result, err := cmd.run(ctx, rest)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return a.print(result)
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	return a.adapter.Register(ctx, models.RegisterRequest{Name: args[0], Email: args[1], Password: args[2]})
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	return a.adapter.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
}

func (a *App) profile(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Profile(ctx)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.adapter.ListNotes(ctx)
}

func (a *App) add(ctx context.Context, args []string) (any, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: add takes a title, a description and an optional tag", ErrUsage)
	}

	req := models.CreateNoteRequest{Title: args[0], Description: args[1]}
	if len(args) == 3 {
		req.Tag = &args[2]
	}
	return a.adapter.AddNote(ctx, req)
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	var req models.UpdateNoteRequest

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Func("title", "new title", func(s string) error { req.Title = &s; return nil })
	fs.Func("description", "new description", func(s string) error { req.Description = &s; return nil })
	fs.Func("tag", "new tag", func(s string) error { req.Tag = &s; return nil })
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return nil, fmt.Errorf("%w: update takes exactly one note id", ErrUsage)
	}

	return a.adapter.UpdateNote(ctx, fs.Arg(0), req)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	return a.adapter.DeleteNote(ctx, args[0])
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}
