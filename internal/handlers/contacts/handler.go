package contacts

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/zeebo/blake3"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/services/contact"
	"gitlab.com/contact-site.net/internal/domain"
	"gitlab.com/contact-site.net/internal/handlers/response"
	"gitlab.com/contact-site.net/internal/static/errs"
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON body")

// ContactHandler handles contact-form API requests
type ContactHandler struct {
	contactService contact.IContactService
	logger         primary.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService contact.IContactService, logger primary.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for ContactHandler.
// listGuard wraps the submissions listing.
func (h *ContactHandler) RegisterRoutes(router *mux.Router, listGuard mux.MiddlewareFunc) {
	router.HandleFunc("/api/contact", h.SubmitContact).Methods(http.MethodPost)

	var list http.Handler = http.HandlerFunc(h.ListSubmissions)
	if listGuard != nil {
		list = listGuard(list)
	}
	router.Handle("/api/submissions", list).Methods(http.MethodGet, http.MethodHead)
}

// SubmitContact handles contact-form submissions
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(w, r)
	if err != nil {
		h.logger.Warn("Failed to decode contact request", "error", err)
		response.WriteError(w, response.NewError(http.StatusBadRequest, errs.InvalidRequestBody.Error()))
		return
	}

	submission, err := h.contactService.Submit(r.Context(), form)
	if err != nil {
		if errs.IsValidation(err) {
			response.WriteError(w, response.NewError(http.StatusBadRequest, err.Error()))
			return
		}
		h.logger.Error("Error processing contact form", "error", err)
		response.WriteError(w, response.NewError(http.StatusInternalServerError, errs.SaveFailed.Error()))
		return
	}

	response.WriteJSON(w, http.StatusOK, SubmitContactResponse{
		Success:      true,
		Message:      SubmitSuccessMessage,
		SubmissionID: submission.ID,
	})
}

// ListSubmissions returns every stored submission. The body is tagged with a
// content hash so pollers can revalidate with If-None-Match.
func (h *ContactHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contactService.ListSubmissions(r.Context())
	if err != nil {
		h.logger.Error("Error fetching submissions", "error", err)
		response.WriteError(w, response.NewError(http.StatusInternalServerError, errs.FetchFailed.Error()))
		return
	}

	body, err := json.Marshal(ListSubmissionsResponse{
		Success:     true,
		Count:       len(submissions),
		Submissions: submissions,
	})
	if err != nil {
		h.logger.Error("Failed to encode submissions", "error", err)
		response.WriteError(w, response.NewError(http.StatusInternalServerError, errs.FetchFailed.Error()))
		return
	}

	etag := ETag(body)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Values("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	response.WriteRaw(w, http.StatusOK, body)
}

// ETag returns a strong entity tag for body
func ETag(body []byte) string {
	sum := blake3.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// etagMatches reports whether any If-None-Match value names etag, using the
// weak comparison; "*" matches any current representation.
func etagMatches(values []string, etag string) bool {
	for _, value := range values {
		for _, candidate := range strings.Split(value, ",") {
			candidate = strings.TrimSpace(candidate)
			if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
				return true
			}
		}
	}
	return false
}

// decodeForm accepts JSON bodies and urlencoded form posts.
func decodeForm(w http.ResponseWriter, r *http.Request) (domain.ContactForm, error) {
	var form domain.ContactForm
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return form, err
		}
		form.Name = r.PostForm.Get("name")
		form.Email = r.PostForm.Get("email")
		form.Message = r.PostForm.Get("message")
		form.Timestamp = r.PostForm.Get("timestamp")
		return form, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		return form, err
	}
	// a single JSON value only; whitespace may follow
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return form, errTrailingData
	}
	return form, nil
}
