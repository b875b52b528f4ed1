package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"os/signal"
	"strings"

	"noteboard-be/internal/config"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/repository/implementation"
	"noteboard-be/internal/service"
	"noteboard-be/pkg/events"
	"noteboard-be/pkg/gesture"
	pktNats "noteboard-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	idColor   = color.New(color.FgCyan)
	dimColor  = color.New(color.Faint)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

type board struct {
	notes service.INoteService
	close func() error
}

// openBoard loads the collection from the configured store. Writes go
// straight to the store; running servers pick them up on their next load.
func openBoard(ctx context.Context, cfg *config.Config) (*board, error) {
	store, err := implementation.NewNoteStore(cfg)
	if err != nil {
		return nil, err
	}
	notes := service.NewNoteService(store, mapper.NewNoteMapper(nil), nil, logger.NewFileLogger(cfg.App.LogFilePath), service.NoteServiceOptions{
		Key:          cfg.Store.Key,
		WriteTimeout: cfg.Store.WriteTimeout,
	})
	notes.Load(ctx)
	return &board{notes: notes, close: store.Close}, nil
}

func newRootCommand() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect and edit the note board from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addList(root, cfg)
	addAdd(root, cfg)
	addEdit(root, cfg)
	addMove(root, cfg)
	addReorder(root, cfg)
	addLogs(root, cfg)
	addWatch(root, cfg)
	return root
}

func withBoard(cfg *config.Config, fn func(ctx context.Context, b *board) error) error {
	ctx := context.Background()
	b, err := openBoard(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()
	return fn(ctx, b)
}

func printNotes(w io.Writer, notes []entity.Note) {
	if len(notes) == 0 {
		dimColor.Fprintln(w, "no notes")
		return
	}
	for i, n := range notes {
		fmt.Fprintf(w, "%3d  %s  %s  %s\n",
			i+1,
			idColor.Sprint(n.Id),
			mapper.Preview(n.Content),
			dimColor.Sprint(n.CreatedAt.Format("2006-01-02 15:04")),
		)
	}
}

func addList(root *cobra.Command, cfg *config.Config) {
	var query string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes in board order",
		Example: `
boardctl list
boardctl list --query milk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cfg, func(ctx context.Context, b *board) error {
				printNotes(cmd.OutOrStdout(), b.notes.Search(query))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "only notes whose text contains query")
	root.AddCommand(cmd)
}

// paragraph turns terminal text into a single paragraph of markup.
func paragraph(args []string) string {
	return "<p>" + html.EscapeString(strings.Join(args, " ")) + "</p>"
}

func addAdd(root *cobra.Command, cfg *config.Config) {
	root.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a note to the top of the board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cfg, func(ctx context.Context, b *board) error {
				note := b.notes.Create(ctx, paragraph(args))
				if note == nil {
					warnColor.Fprintln(cmd.OutOrStdout(), "empty note ignored")
					return nil
				}
				okColor.Fprintf(cmd.OutOrStdout(), "added %s\n", note.Id)
				return nil
			})
		},
	})
}

func addEdit(root *cobra.Command, cfg *config.Config) {
	root.AddCommand(&cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace the content of a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cfg, func(ctx context.Context, b *board) error {
				if err := b.notes.UpdateContent(ctx, args[0], paragraph(args[1:])); err != nil {
					return err
				}
				okColor.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[0])
				return nil
			})
		},
	})
}

func addMove(root *cobra.Command, cfg *config.Config) {
	root.AddCommand(&cobra.Command{
		Use:       "move <id> up|down",
		Short:     "Swap a note with its neighbour",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(gesture.Up), string(gesture.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := gesture.Direction(args[1])
			if dir != gesture.Up && dir != gesture.Down {
				return fmt.Errorf("direction must be up or down, got %q", args[1])
			}
			return withBoard(cfg, func(ctx context.Context, b *board) error {
				if !b.notes.Move(ctx, args[0], dir) {
					warnColor.Fprintln(cmd.OutOrStdout(), "nothing moved")
					return nil
				}
				printNotes(cmd.OutOrStdout(), b.notes.List())
				return nil
			})
		},
	})
}

func addReorder(root *cobra.Command, cfg *config.Config) {
	root.AddCommand(&cobra.Command{
		Use:   "reorder <id> <target-id>",
		Short: "Move a note to the position another note holds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cfg, func(ctx context.Context, b *board) error {
				if !b.notes.Reorder(ctx, args[0], args[1]) {
					warnColor.Fprintln(cmd.OutOrStdout(), "nothing moved")
					return nil
				}
				printNotes(cmd.OutOrStdout(), b.notes.List())
				return nil
			})
		},
	})
}

func addLogs(root *cobra.Command, cfg *config.Config) {
	var (
		level  string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show server log entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := logger.ReadLogs(cfg.App.LogFilePath, level, limit, offset)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				dimColor.Fprintf(cmd.OutOrStdout(), "no log entries in %s\n", cfg.App.LogFilePath)
				return nil
			}
			for _, e := range entries {
				levelColor := dimColor
				switch e.Level {
				case "ERROR":
					levelColor = color.New(color.FgRed)
				case "WARN":
					levelColor = warnColor
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s] %s\n",
					dimColor.Sprint(e.Timestamp), levelColor.Sprintf("%-5s", e.Level), e.Module, e.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "only entries at this level (INFO, WARN, ERROR)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum entries to show")
	cmd.Flags().IntVar(&offset, "offset", 0, "entries to skip")
	root.AddCommand(cmd)
}

func addWatch(root *cobra.Command, cfg *config.Config) {
	root.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Print board events as the server publishes them (needs NATS_URL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.App.NatsURL == "" {
				return errors.New("NATS_URL is not set")
			}
			sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			err = sub.Subscribe(ctx, pktNats.SubjectPrefix+">", "", func(ctx context.Context, e events.Event) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					dimColor.Sprint(e.Timestamp().Format("15:04:05")), okColor.Sprint(e.EventType()), idColor.Sprint(events.NoteID(e)))
				return nil
			})
			if err != nil {
				return err
			}
			<-ctx.Done()
			return nil
		},
	})
}
