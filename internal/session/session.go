package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/contact-book/internal/addressbook"
	"github.com/username/contact-book/pkg/dateutil"
	"go.uber.org/zap"
)

// Fixed user-facing replies for core error kinds. The REPL never surfaces
// raw error text.
const (
	msgInvalidPhone    = "Invalid phone number."
	msgInvalidParams   = "Invalid parameters."
	msgContactMissing  = "A contact with that name doesn't exist."
	msgInvalidCommand  = "Invalid command."
	msgContactAdded    = "Contact added."
	msgContactChanged  = "Contact changed."
	msgContactDeleted  = "Contact deleted."
	msgBirthdayAdded   = "Birthday added."
	msgGreeting        = "Welcome to the assistant bot!"
	msgHello           = "How can I help you?"
	msgGoodbye         = "Good bye!"
)

// weekdayNames is indexed Monday=0 .. Sunday=6.
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Session drives the interactive command loop over an address book.
// All output goes through out so tests can capture it.
type Session struct {
	book        *addressbook.AddressBook
	out         io.Writer
	prompt      string
	columnWidth int
	logger      *zap.Logger
	now         func() time.Time
}

// New creates a session around the given book.
func New(book *addressbook.AddressBook, out io.Writer, prompt string, columnWidth int, logger *zap.Logger) *Session {
	return &Session{
		book:        book,
		out:         out,
		prompt:      prompt,
		columnWidth: columnWidth,
		logger:      logger,
		now:         dateutil.Today,
	}
}

// Run reads commands from in until close/exit, EOF or context cancellation.
// Command errors are rendered as replies and never stop the loop.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, msgGreeting)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, msgGoodbye)
			s.logger.Info("Session interrupted")
			return nil

		case line, ok := <-lines:
			if !ok {
				// EOF behaves like exit
				fmt.Fprintln(s.out, msgGoodbye)
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			reply, done := s.Dispatch(line)
			if reply != "" {
				fmt.Fprintln(s.out, reply)
			}
			if done {
				return nil
			}
		}
	}
}

// Dispatch executes a single command line and returns the reply and whether
// the session should end. Blank lines produce no reply.
func (s *Session) Dispatch(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]

	s.logger.Debug("Dispatching command",
		zap.String("command", command),
		zap.Int("args", len(args)))

	switch command {
	case "close", "exit":
		return msgGoodbye, true
	case "hello":
		return msgHello, false
	case "add":
		return s.reply(s.addContact(args)), false
	case "change":
		return s.reply(s.changeContact(args)), false
	case "phone":
		return s.reply(s.showPhone(args)), false
	case "delete":
		return s.reply(s.deleteContact(args)), false
	case "all":
		return s.renderAll(), false
	case "add-birthday":
		return s.reply(s.addBirthday(args)), false
	case "show-birthday":
		return s.reply(s.showBirthday(args)), false
	case "birthdays":
		return s.renderBirthdays(), false
	default:
		return msgInvalidCommand, false
	}
}

// reply maps core errors onto their fixed user-facing strings.
func (s *Session) reply(message string, err error) string {
	if err == nil {
		return message
	}

	s.logger.Info("Command failed", zap.Error(err))

	switch {
	case errors.Is(err, addressbook.ErrInvalidPhoneNumber):
		return msgInvalidPhone
	case errors.Is(err, addressbook.ErrContactNotFound):
		return msgContactMissing
	case errors.Is(err, addressbook.ErrInvalidDate),
		errors.Is(err, addressbook.ErrInvalidArguments):
		return msgInvalidParams
	default:
		return msgInvalidParams
	}
}

func (s *Session) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: add expects a name and a phone", addressbook.ErrInvalidArguments)
	}

	record, err := addressbook.NewRecord(args[0], args[1])
	if err != nil {
		return "", err
	}

	s.book.AddRecord(record)
	return msgContactAdded, nil
}

func (s *Session) changeContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: change expects a name and a phone", addressbook.ErrInvalidArguments)
	}

	record, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.UpdatePhone(args[1]); err != nil {
		return "", err
	}

	return msgContactChanged, nil
}

func (s *Session) showPhone(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: phone expects a name", addressbook.ErrInvalidArguments)
	}

	record, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}

	return record.Phone, nil
}

func (s *Session) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: delete expects a name", addressbook.ErrInvalidArguments)
	}

	if err := s.book.Delete(args[0]); err != nil {
		return "", err
	}

	return msgContactDeleted, nil
}

func (s *Session) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: add-birthday expects a name and a date", addressbook.ErrInvalidArguments)
	}

	record, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}

	return msgBirthdayAdded, nil
}

func (s *Session) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: show-birthday expects a name", addressbook.ErrInvalidArguments)
	}

	record, err := s.book.Find(args[0])
	if err != nil {
		return "", err
	}
	if record.Birthday == nil {
		return fmt.Sprintf("No birthday set for %s.", record.Name), nil
	}

	return record.Birthday.Format(addressbook.BirthdayLayout), nil
}

// renderAll produces the fixed-width contact table.
func (s *Session) renderAll() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "|%s|%s|\n",
		center("Contact name", s.columnWidth),
		center("Phone number", s.columnWidth))

	for _, record := range s.book.All() {
		fmt.Fprintf(&sb, "|%s|%s|\n",
			center(record.Name, s.columnWidth),
			center(record.Phone, s.columnWidth))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// renderBirthdays lists upcoming congratulation days starting from
// tomorrow's weekday and walking one week forward.
func (s *Session) renderBirthdays() string {
	today := s.now()
	upcoming := s.book.UpcomingBirthdays(today)

	s.logger.Info("Birthday query",
		zap.Time("today", today),
		zap.Int("contacts", s.book.Len()),
		zap.Int("buckets", len(upcoming)))

	var lines []string
	weekday := dateutil.MondayIndex(today)
	for i := 0; i < 7; i++ {
		weekday = (weekday + 1) % 7
		names, ok := upcoming[weekday]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", weekdayNames[weekday], strings.Join(names, ", ")))
	}

	if len(lines) == 0 {
		return "No upcoming birthdays."
	}
	return strings.Join(lines, "\n")
}

// center pads the string to width with the extra space on the right,
// matching "{:^20}" formatting.
func center(value string, width int) string {
	if len(value) >= width {
		return value
	}
	padding := width - len(value)
	left := padding / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", padding-left)
}
