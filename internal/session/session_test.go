package session

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap"
)

func newTestSession() (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := New(addressbook.New(), &out, "Enter a command: ", 20, zap.NewNop())
	s.now = func() time.Time {
		return time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) // Monday
	}
	return s, &out
}

func dispatchAll(t *testing.T, s *Session, lines ...string) string {
	t.Helper()
	var last string
	for _, line := range lines {
		reply, done := s.Dispatch(line)
		if done {
			t.Fatalf("Dispatch(%q) unexpectedly ended the session", line)
		}
		last = reply
	}
	return last
}

func TestDispatchReplies(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		line  string
		want  string
	}{
		{"Hello", nil, "hello", "How can I help you?"},
		{"Hello is case-insensitive", nil, "HELLO", "How can I help you?"},
		{"Add contact", nil, "add Ann 0501234567", "Contact added."},
		{"Add with bad phone", nil, "add Ann 123", "Invalid phone number."},
		{"Add missing phone", nil, "add Ann", "Invalid parameters."},
		{"Add with extra args", nil, "add Ann 0501234567 extra", "Invalid parameters."},
		{"Change existing", []string{"add Ann 0501234567"}, "change Ann 0677654321", "Contact changed."},
		{"Change missing contact", nil, "change Ghost 0501234567", "A contact with that name doesn't exist."},
		{"Change with bad phone", []string{"add Ann 0501234567"}, "change Ann nope", "Invalid phone number."},
		{"Phone lookup", []string{"add Ann 0501234567"}, "phone Ann", "0501234567"},
		{"Phone missing contact", nil, "phone Ghost", "A contact with that name doesn't exist."},
		{"Delete existing", []string{"add Ann 0501234567"}, "delete Ann", "Contact deleted."},
		{"Delete missing contact", nil, "delete Ghost", "A contact with that name doesn't exist."},
		{"Add birthday", []string{"add Ann 0501234567"}, "add-birthday Ann 17.03.1990", "Birthday added."},
		{"Add birthday bad date", []string{"add Ann 0501234567"}, "add-birthday Ann 1990-03-17", "Invalid parameters."},
		{"Add birthday missing contact", nil, "add-birthday Ghost 17.03.1990", "A contact with that name doesn't exist."},
		{"Show birthday", []string{"add Ann 0501234567", "add-birthday Ann 17.03.1990"}, "show-birthday Ann", "17.03.1990"},
		{"Show birthday when unset", []string{"add Ann 0501234567"}, "show-birthday Ann", "No birthday set for Ann."},
		{"Unknown command", nil, "frobnicate", "Invalid command."},
		{"Blank line", nil, "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession()
			dispatchAll(t, s, tt.setup...)

			got, done := s.Dispatch(tt.line)
			if done {
				t.Fatalf("Dispatch(%q) ended the session", tt.line)
			}
			if got != tt.want {
				t.Errorf("Dispatch(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDispatchClose(t *testing.T) {
	for _, command := range []string{"close", "exit"} {
		t.Run(command, func(t *testing.T) {
			s, _ := newTestSession()

			reply, done := s.Dispatch(command)
			if !done {
				t.Errorf("Dispatch(%q) did not end the session", command)
			}
			if reply != "Good bye!" {
				t.Errorf("Dispatch(%q) = %q, want %q", command, reply, "Good bye!")
			}
		})
	}
}

func TestDispatchErrorKeepsState(t *testing.T) {
	s, _ := newTestSession()
	dispatchAll(t, s, "add Ann 0501234567")

	// Failed change must not alter the stored phone
	dispatchAll(t, s, "change Ann garbage")

	if got := dispatchAll(t, s, "phone Ann"); got != "0501234567" {
		t.Errorf("phone after failed change = %q, want 0501234567", got)
	}
}

func TestRenderAll(t *testing.T) {
	s, _ := newTestSession()
	dispatchAll(t, s, "add Ann 0501234567", "add Bob 0677654321")

	got, _ := s.Dispatch("all")

	want := strings.Join([]string{
		"|    Contact name    |    Phone number    |",
		"|        Ann         |     0501234567     |",
		"|        Bob         |     0677654321     |",
	}, "\n")
	if got != want {
		t.Errorf("all table mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBirthdays(t *testing.T) {
	s, _ := newTestSession()
	// today pinned to Monday 2024-06-10
	dispatchAll(t, s,
		"add Ann 0501111111", "add-birthday Ann 15.06.1990", // Saturday -> Monday bucket
		"add Bob 0502222222", "add-birthday Bob 12.06.1985", // Wednesday
		"add Cara 0503333333", "add-birthday Cara 20.06.1995", // outside window
	)

	got, _ := s.Dispatch("birthdays")

	// Listing starts at tomorrow (Tuesday), so Wednesday precedes Monday
	want := "Wednesday: Bob\nMonday: Ann"
	if got != want {
		t.Errorf("birthdays = %q, want %q", got, want)
	}
}

func TestRenderBirthdaysEmpty(t *testing.T) {
	s, _ := newTestSession()

	if got, _ := s.Dispatch("birthdays"); got != "No upcoming birthdays." {
		t.Errorf("birthdays = %q, want %q", got, "No upcoming birthdays.")
	}
}

func TestRunGreetsAndExits(t *testing.T) {
	s, out := newTestSession()
	in := strings.NewReader("hello\nexit\n")

	if err := s.Run(context.Background(), in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Welcome to the assistant bot!",
		"How can I help you?",
		"Good bye!",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunEOFEndsSession(t *testing.T) {
	s, out := newTestSession()
	in := strings.NewReader("add Ann 0501234567\n")

	if err := s.Run(context.Background(), in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Good bye!") {
		t.Errorf("output missing farewell on EOF:\n%s", out.String())
	}
}

func TestRunContextCancellation(t *testing.T) {
	s, out := newTestSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never produces a line
	in := blockingReader{}

	if err := s.Run(ctx, in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Good bye!") {
		t.Errorf("output missing farewell on cancellation:\n%s", out.String())
	}
}

type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {} // blocks forever; the session must not depend on this returning
}
