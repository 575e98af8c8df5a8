package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func newTestMailer(sender Sender) *Mailer {
	return New(sender, NewRenderer(testFS()), Config{
		FallbackSubject: "Notification",
		DefaultTemplate: "message.md",
		DefaultLayout:   "base.html",
	})
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := newTestMailer(mockSender)

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return len(email.To) == 1 &&
			email.To[0] == "ada@example.com" &&
			email.Subject == "Hello Ada" &&
			email.Header(HeaderMessageID) == "msg-1" &&
			email.Text == "Welcome\n\nHello Ada"
	})).Return(nil)

	err := m.Send(context.Background(), SendParams{
		To:      "ada@example.com",
		Title:   "Welcome",
		Subject: "Hello Ada",
		Content: "<p>Hello <strong>Ada</strong></p>",
		Headers: map[string]string{HeaderMessageID: "msg-1"},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Build_Validation(t *testing.T) {
	t.Parallel()

	m := newTestMailer(&MockSender{})

	_, err := m.Build(SendParams{Content: "<p>x</p>"})
	require.ErrorIs(t, err, ErrNoRecipient)

	_, err = m.Build(SendParams{To: "ada@example.com"})
	require.ErrorIs(t, err, ErrNoContent)

	noFallback := New(&MockSender{}, nil, Config{})
	_, err = noFallback.Build(SendParams{To: "ada@example.com", Content: "<p>x</p>"})
	require.ErrorIs(t, err, ErrNoSubject)
}

func TestMailer_Build_SubjectResolution(t *testing.T) {
	t.Parallel()

	fs := testFS()
	fs["plain.md"] = &fstest.MapFile{Data: []byte("{{ .Content }}")}
	m := New(&MockSender{}, NewRenderer(fs), Config{FallbackSubject: "Notification", DefaultLayout: "base.html"})

	tests := []struct {
		name     string
		template string
		subject  string
		want     string
	}{
		{name: "explicit subject wins", template: "message.md", subject: "Explicit", want: "Explicit"},
		{name: "template metadata", template: "message.md", want: "Receipt"},
		{name: "config fallback", template: "plain.md", want: "Notification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := m.Build(SendParams{
				To:       "ada@example.com",
				Subject:  tt.subject,
				Template: tt.template,
				Content:  "<p>x</p>",
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, email.Subject)
		})
	}
}

func TestMailer_Build_OptionalFields(t *testing.T) {
	t.Parallel()

	m := newTestMailer(&MockSender{})
	headers := map[string]string{"X-Campaign": "spring"}

	email, err := m.Build(SendParams{
		To:          "ada@example.com",
		Subject:     "Hi",
		Content:     "<p>x</p>",
		Headers:     headers,
		Tags:        SimpleTags("news"),
		From:        "Team <team@example.com>",
		ReplyTo:     "support@example.com",
		CC:          []string{"ops@example.com"},
		BCC:         []string{"archive@example.com"},
		Attachments: []Attachment{{Filename: "a.txt", Content: []byte("a")}},
	})
	require.NoError(t, err)

	require.Equal(t, "Team <team@example.com>", email.From)
	require.Equal(t, "support@example.com", email.ReplyTo)
	require.Equal(t, []string{"ops@example.com"}, email.CC)
	require.Equal(t, []string{"archive@example.com"}, email.BCC)
	require.Len(t, email.Attachments, 1)
	require.Contains(t, email.Tags, "news")

	email.Headers["X-Other"] = "1"
	require.NotContains(t, headers, "X-Other", "headers are copied per email")
}

func TestMailer_Build_WithoutRenderer(t *testing.T) {
	t.Parallel()

	m := New(&MockSender{}, nil, Config{FallbackSubject: "Notification"})

	email, err := m.Build(SendParams{
		To:      "ada@example.com",
		Content: "<p>Hello <u>Ada</u></p><script>x()</script>",
	})
	require.NoError(t, err)
	require.Equal(t, "Notification", email.Subject)
	require.Equal(t, "<p>Hello <u>Ada</u></p>", email.HTML)
	require.Equal(t, "Hello Ada", email.Text)
}

func TestMailer_Build_CustomLayout(t *testing.T) {
	t.Parallel()

	fs := testFS()
	fs["layouts/plain.html"] = &fstest.MapFile{Data: []byte(`<section>{{.Content}}</section>`)}
	m := New(&MockSender{}, NewRenderer(fs), Config{FallbackSubject: "N", DefaultTemplate: "message.md", DefaultLayout: "base.html"})

	email, err := m.Build(SendParams{To: "ada@example.com", Title: "T", Content: "<p>x</p>", Layout: "plain.html"})
	require.NoError(t, err)
	require.Contains(t, email.HTML, "<section>")
	require.NotContains(t, email.HTML, "<html>")
}

func TestMailer_Send_RenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, NewRenderer(fstest.MapFS{}), Config{DefaultTemplate: "missing.md"})

	err := m.Send(context.Background(), SendParams{To: "ada@example.com", Content: "<p>x</p>"})

	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := newTestMailer(mockSender)

	senderErr := errors.New("provider unavailable")
	mockSender.On("Send", mock.Anything, mock.Anything).Return(senderErr)

	err := m.Send(context.Background(), SendParams{To: "ada@example.com", Content: "<p>x</p>"})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, senderErr)
	mockSender.AssertExpectations(t)
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email *Email
		want  error
	}{
		{name: "no recipient", email: &Email{Subject: "s", HTML: "h"}, want: ErrNoRecipient},
		{name: "no subject", email: &Email{To: []string{"a@example.com"}, HTML: "h"}, want: ErrNoSubject},
		{name: "no content", email: &Email{To: []string{"a@example.com"}, Subject: "s"}, want: ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockSender := &MockSender{}
			err := newTestMailer(mockSender).SendRaw(context.Background(), tt.email)
			require.ErrorIs(t, err, tt.want)
			mockSender.AssertNotCalled(t, "Send")
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got *Email
	sender := SenderFunc(func(_ context.Context, email *Email) error {
		got = email
		return nil
	})

	email := &Email{To: []string{"ada@example.com"}, Subject: "s", HTML: "<p>h</p>"}
	require.NoError(t, New(sender, nil, Config{}).SendRaw(context.Background(), email))
	require.Same(t, email, got)
}
