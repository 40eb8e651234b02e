package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"notes-calendar/internal/client"
	"notes-calendar/internal/converter"
	"notes-calendar/internal/query"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

const (
	defaultAddress = "localhost:50051"
	requestTimeout = 10 * time.Second
)

type options struct {
	address  string
	token    string
	timezone string
	verbose  bool

	email    string
	password string

	dateFilter   string
	specificDate string
	search       string
	sort         string
	month        string
	prev, next   int

	title    string
	content  string
	noteDate string

	// Заданы ли флаги явно: update не трогает поля без флага
	titleSet, contentSet bool
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: client [flags] <command> [id]

Commands:
  signup      register with --email and --password
  signin      open a session and print its token (export it as AUTH_TOKEN)
  signout     close the session of AUTH_TOKEN
  list        print notes (--filter, --date, --search, --sort)
  calendar    print a month grid (--month YYYY-MM, default current; --prev/--next shift it)
  create      create a note (--title, --content, --note-date)
  update ID   change the title and/or content of a note
  delete ID   delete a note
  watch       print the list again after every change

Flags:
`)
	pflag.PrintDefaults()
}

func main() {
	var opts options
	pflag.StringVar(&opts.address, "addr", envOr("SERVER_ADDRESS", defaultAddress), "gRPC server address")
	pflag.StringVar(&opts.token, "token", os.Getenv("AUTH_TOKEN"), "session token")
	pflag.StringVar(&opts.timezone, "tz", "", "IANA timezone for dates (default: local)")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	pflag.StringVar(&opts.email, "email", "", "account email")
	pflag.StringVar(&opts.password, "password", os.Getenv("NOTES_PASSWORD"), "account password")
	pflag.StringVarP(&opts.dateFilter, "filter", "f", "all", "date filter: all, today, yesterday, last7, last30, thisMonth, specific")
	pflag.StringVar(&opts.specificDate, "date", "", "date for the specific filter (YYYY-MM-DD)")
	pflag.StringVarP(&opts.search, "search", "s", "", "search in title and content")
	pflag.StringVar(&opts.sort, "sort", "newest", "sort: newest, oldest, title-asc, title-desc")
	pflag.StringVar(&opts.month, "month", "", "calendar month (YYYY-MM)")
	pflag.CountVar(&opts.prev, "prev", "months back from --month (repeatable)")
	pflag.CountVar(&opts.next, "next", "months forward from --month (repeatable)")
	pflag.StringVar(&opts.title, "title", "", "note title")
	pflag.StringVar(&opts.content, "content", "", "note content")
	pflag.StringVar(&opts.noteDate, "note-date", "", "explicit calendar date of the note (YYYY-MM-DD)")
	pflag.Usage = usage
	pflag.Parse()
	opts.titleSet = pflag.CommandLine.Changed("title")
	opts.contentSet = pflag.CommandLine.Changed("content")

	if pflag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, pflag.Args(), log); err != nil {
		if st, ok := status.FromError(err); ok {
			fmt.Fprintf(os.Stderr, "error: %s: %s\n", st.Code(), st.Message())
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, args []string, log *logrus.Logger) error {
	loc, err := converter.Location(opts.timezone, time.Local)
	if err != nil {
		return err
	}

	log.WithField("addr", opts.address).Debug("connecting")
	conn, err := grpc.NewClient(opts.address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer conn.Close()

	command, rest := args[0], args[1:]
	switch command {
	case "signup", "signin", "signout":
		return runAuth(ctx, notesv1.NewAuthServiceClient(conn), command, opts)
	}

	if opts.token == "" {
		return errors.New("no session: run signin and export AUTH_TOKEN")
	}
	ctx = client.WithToken(ctx, opts.token)
	nb := client.NewNotebook(conn, loc, log)

	filter, err := query.ParseFilter(opts.dateFilter, opts.specificDate, opts.search, opts.sort)
	if err != nil {
		return err
	}
	if err := nb.SetFilter(filter); err != nil {
		return err
	}

	switch command {
	case "list":
		if err := refresh(ctx, nb); err != nil {
			return err
		}
		return printList(os.Stdout, nb, time.Now())

	case "calendar":
		if err := refresh(ctx, nb); err != nil {
			return err
		}
		now := time.Now().In(loc)
		year, month, err := calendarMonth(now, opts.month, opts.next-opts.prev)
		if err != nil {
			return err
		}
		return printCalendar(os.Stdout, nb.Calendar(year, month, now))

	case "create":
		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		note, err := nb.Create(callCtx, opts.title, opts.content, opts.noteDate)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "created %s (%s)\n", note.ID, query.Resolve(note, loc))
		return nil

	case "update":
		id, err := single(rest)
		if err != nil {
			return err
		}
		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		title, content := updateFields(opts)
		note, err := nb.Patch(callCtx, id, title, content)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "updated %s\n", note.ID)
		return nil

	case "delete":
		id, err := single(rest)
		if err != nil {
			return err
		}
		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		if err := nb.Delete(callCtx, id); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "deleted %s\n", id)
		return nil

	case "watch":
		fmt.Fprintln(os.Stderr, "watching for changes, Ctrl+C to stop")
		return nb.Watch(ctx, func(ev *notesv1.ChangeEvent) {
			fmt.Fprintln(os.Stdout, strings.Repeat("─", 40))
			if err := printList(os.Stdout, nb, time.Now()); err != nil {
				log.WithError(err).Warn("render failed")
			}
		})

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// calendarMonth выбирает месяц сетки: --month или текущий, сдвинутый на shift
func calendarMonth(now time.Time, month string, shift int) (int, time.Month, error) {
	year, m := now.Year(), now.Month()
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return 0, 0, fmt.Errorf("--month: %w", err)
		}
		year, m = t.Year(), t.Month()
	}
	year, m = query.ShiftMonth(year, m, shift)
	return year, m, nil
}

// updateFields возвращает только явно заданные поля update
func updateFields(opts options) (title, content *string) {
	if opts.titleSet {
		title = &opts.title
	}
	if opts.contentSet {
		content = &opts.content
	}
	return title, content
}

func refresh(ctx context.Context, nb *client.Notebook) error {
	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return nb.Refresh(callCtx)
}

func single(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected exactly one note id")
	}
	return args[0], nil
}

func runAuth(ctx context.Context, auth notesv1.AuthServiceClient, command string, opts options) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	switch command {
	case "signup":
		resp, err := auth.SignUp(ctx, &notesv1.SignUpRequest{Email: opts.email, Password: opts.password})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "registered %s\n", resp.User.Email)
	case "signin":
		resp, err := auth.SignIn(ctx, &notesv1.SignInRequest{Email: opts.email, Password: opts.password})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, resp.Token)
		fmt.Fprintf(os.Stderr, "session expires %s\n", resp.ExpiresAt.AsTime().Local().Format(time.RFC1123))
	case "signout":
		if opts.token == "" {
			return errors.New("no session to close")
		}
		if _, err := auth.SignOut(client.WithToken(ctx, opts.token), &notesv1.SignOutRequest{}); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "signed out")
	}
	return nil
}
