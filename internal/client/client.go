// Package client submits contact forms to the site's backend the same way the
// browser form does: field checks first, then a JSON POST.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"gitlab.com/contact-site.net/internal/domain"
)

const (
	DefaultEndpoint = "http://localhost:3000/api/contact"

	FormSummary    = "Please fix the errors in the form before submitting."
	GenericFailure = "Sorry, there was an error sending your message. Please try again later."
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// FieldError is one field-level problem shown next to an input
type FieldError struct {
	Field   string
	Message string
}

// FormError collects every field problem found before submitting
type FormError struct {
	Fields []FieldError
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return FormSummary + " (" + strings.Join(parts, "; ") + ")"
}

// ServerError carries the backend's failure envelope
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return e.Message
}

// Result is what the form shows after a successful send
type Result struct {
	SubmissionID string
	Message      string
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ValidateForm applies the browser form's checks and returns all failures.
func ValidateForm(form domain.ContactForm) error {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	message := strings.TrimSpace(form.Message)

	var fields []FieldError
	if domain.TextLength(name) < 2 {
		fields = append(fields, FieldError{Field: "name", Message: "Name must be at least 2 characters long"})
	} else if !namePattern.MatchString(name) {
		fields = append(fields, FieldError{Field: "name", Message: "Name can only contain letters and spaces"})
	}
	if !emailPattern.MatchString(email) {
		fields = append(fields, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if domain.TextLength(message) < 10 {
		fields = append(fields, FieldError{Field: "message", Message: "Message must be at least 10 characters long"})
	}
	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}
	return nil
}

// Submit validates and posts the form.
func (c *Client) Submit(ctx context.Context, form domain.ContactForm) (*Result, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}

	payload := domain.ContactForm{
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Message:   strings.TrimSpace(form.Message),
		Timestamp: c.now().UTC().Format(domain.TimestampLayout),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send form: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		SubmissionID string `json:"submissionId"`
	}
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	return &Result{
		SubmissionID: env.SubmissionID,
		Message: fmt.Sprintf("Thank you, %s! Your message has been received. We'll get back to you soon at %s.",
			payload.Name, payload.Email),
	}, nil
}

// IsFormError reports whether err came from local validation
func IsFormError(err error) bool {
	var fe *FormError
	return errors.As(err, &fe)
}
