package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jeanpaul/rolodex/internal/book"
	"github.com/jeanpaul/rolodex/internal/config"
	"github.com/jeanpaul/rolodex/internal/store"
)

// Renderer turns query results into display text. The default is plain
// text; the TUI swaps in a styled table.
type Renderer interface {
	Table(recs []*book.Record) string
}

type plainRenderer struct{}

func (plainRenderer) Table(recs []*book.Record) string {
	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(rec.String())
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Session holds one interactive run: the live book, the file store and the
// configuration. Any error leaves the session usable; only the good-bye
// commands end it.
type Session struct {
	cfg      *config.Config
	store    *store.Store
	book     *book.AddressBook
	renderer Renderer
	now      func() time.Time
	closed   bool
}

func NewSession(cfg *config.Config, st *store.Store) *Session {
	return &Session{
		cfg:      cfg,
		store:    st,
		book:     book.New(),
		renderer: plainRenderer{},
		now:      time.Now,
	}
}

func (s *Session) SetRenderer(r Renderer) { s.renderer = r }

func (s *Session) Book() *book.AddressBook { return s.book }

// Closed reports whether a good-bye command ended the session.
func (s *Session) Closed() bool { return s.closed }

// Execute resolves and runs one command line.
func (s *Session) Execute(line string) (string, error) {
	op, args := Resolve(line)
	return op(s, args)
}

// Message maps every core error kind to a distinct, stable user-facing
// message. The session continues after any of them.
func Message(err error) string {
	switch {
	case errors.Is(err, book.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, book.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, book.ErrDuplicate):
		return "Already exists: " + err.Error()
	case errors.Is(err, book.ErrFormat):
		return "Unreadable file: " + err.Error()
	default:
		return err.Error()
	}
}

func opHello(s *Session, args []string) (string, error) {
	return "How can I help you?", nil
}

func opUndefined(s *Session, args []string) (string, error) {
	return "What do you mean? Try 'help'.", nil
}

// opAdd adds a phone to a contact, creating the record on first use of
// the name.
func opAdd(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: add <name> <phone>")
	}
	name, phone := args[0], args[1]
	if _, err := s.book.Find(name); err == nil {
		if err := s.book.AddPhone(name, phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added phone %s to contact %s", phone, name), nil
	}
	rec, err := book.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if err := s.book.Add(rec); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added contact %s with phone %s", name, phone), nil
}

func opChange(s *Session, args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("usage: change <name> <old phone> <new phone>")
	}
	if err := s.book.EditPhone(args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated %s: %s is now %s", args[0], args[1], args[2]), nil
}

func opRemove(s *Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: remove <name>")
	}
	if err := s.book.Remove(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s was removed", args[0]), nil
}

func opRemovePhone(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: remove phone <name> <phone>")
	}
	if err := s.book.RemovePhone(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed phone %s from %s", args[1], args[0]), nil
}

func opRename(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: rename <old name> <new name>")
	}
	if err := s.book.Rename(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Renamed %s to %s", args[0], args[1]), nil
}

func opPhones(s *Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: phones of <name>")
	}
	rec, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phones", rec.Name()), nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = string(p)
	}
	return fmt.Sprintf("%s: %s", rec.Name(), strings.Join(parts, ", ")), nil
}

func opSetBirthday(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: set birthday <name> <DD.MM.YYYY>")
	}
	if err := s.book.SetBirthday(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added birthday %s to contact %s", args[1], args[0]), nil
}

func opBirthdayOf(s *Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: birthday of <name>")
	}
	rec, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}
	b, ok := rec.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set", rec.Name()), nil
	}
	days := b.DaysUntilNext(s.now())
	return fmt.Sprintf("%s: %s (%d days to the next one)", rec.Name(), b, days), nil
}

func opBirthdays(s *Session, args []string) (string, error) {
	within := 7
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", fmt.Errorf("usage: birthdays [days]")
		}
		within = n
	}
	recs := s.book.Upcoming(s.now(), within)
	if len(recs) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days", within), nil
	}
	return s.renderer.Table(recs), nil
}

func opShowAll(s *Session, args []string) (string, error) {
	size := s.cfg.PageSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "", fmt.Errorf("usage: show all [page size]")
		}
		size = n
	}
	if s.book.Len() == 0 {
		return "Address book is empty", nil
	}
	var pages []string
	page := 1
	for recs := range s.book.Pages(size) {
		pages = append(pages, fmt.Sprintf("Page %d\n%s", page, s.renderer.Table(recs)))
		page++
	}
	return strings.Join(pages, "\n"), nil
}

func opSearch(s *Session, args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: search <query>")
	}
	recs := s.book.Search(strings.Join(args, " "))
	if len(recs) == 0 {
		return "Nothing found", nil
	}
	return s.renderer.Table(recs), nil
}

func (s *Session) bookName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.cfg.DefaultBook
}

func opSave(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	if err := s.store.SaveJSON(name, s.book); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %s.json", name), nil
}

// opLoad replaces the in-memory book only when the whole file loads
// cleanly; a corrupt file leaves the current book untouched.
func opLoad(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	loaded, err := s.store.LoadJSON(name)
	if err != nil {
		return "", err
	}
	s.book = loaded
	return fmt.Sprintf("Loaded %s.json (%d contacts)", name, loaded.Len()), nil
}

func opExport(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	if err := s.store.ExportCSV(name, s.book); err != nil {
		return "", err
	}
	return fmt.Sprintf("Exported %s.csv", name), nil
}

func opImport(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	loaded, err := s.store.ImportCSV(name)
	if err != nil {
		return "", err
	}
	s.book = loaded
	return fmt.Sprintf("Imported %s.csv (%d contacts)", name, loaded.Len()), nil
}

func opExportXLSX(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	if err := s.store.ExportXLSX(name, s.book); err != nil {
		return "", err
	}
	return fmt.Sprintf("Exported %s.xlsx", name), nil
}

func opImportXLSX(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	loaded, err := s.store.ImportXLSX(name)
	if err != nil {
		return "", err
	}
	s.book = loaded
	return fmt.Sprintf("Imported %s.xlsx (%d contacts)", name, loaded.Len()), nil
}

func opBooks(s *Session, args []string) (string, error) {
	names, err := s.store.Books()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "No saved books in " + s.store.Dir(), nil
	}
	return strings.Join(names, "\n"), nil
}

func opDiff(s *Session, args []string) (string, error) {
	name := s.bookName(args)
	diff, err := s.store.Diff(name, s.book)
	if err != nil {
		return "", err
	}
	if diff == "" {
		return fmt.Sprintf("No changes against %s.json", name), nil
	}
	return diff, nil
}

func opHelp(s *Session, args []string) (string, error) {
	return HelpText, nil
}

// opGoodbye saves the default book and ends the session.
func opGoodbye(s *Session, args []string) (string, error) {
	if err := s.store.SaveJSON(s.cfg.DefaultBook, s.book); err != nil {
		return "", err
	}
	s.closed = true
	return "Good bye!", nil
}
