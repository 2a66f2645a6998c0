package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/presenter"
)

type definitionService interface {
	Resolve(ctx context.Context, word string, lang domain.Language, opts domain.Options) (*domain.Definition, error)
	Section(ctx context.Context, word string, lang domain.Language, kind domain.SectionKind) (*domain.Section, error)
}

// DefinitionHandler serves the lookup API.
type DefinitionHandler struct {
	svc         definitionService
	defaultLang domain.Language
	log         *slog.Logger
}

// NewDefinitionHandler creates a DefinitionHandler. Requests without a lang
// parameter use defaultLang.
func NewDefinitionHandler(svc definitionService, defaultLang domain.Language, logger *slog.Logger) *DefinitionHandler {
	return &DefinitionHandler{
		svc:         svc,
		defaultLang: defaultLang,
		log:         logger.With("handler", "definition"),
	}
}

// DefinitionResponse is the JSON body of a successful definition lookup.
type DefinitionResponse struct {
	Word       string `json:"word"`
	Category   string `json:"category"`
	Definition string `json:"definition"`
	Gender     string `json:"gender,omitempty"`
	Formatted  string `json:"formatted"`
}

// SectionResponse is the JSON body of a successful section lookup.
type SectionResponse struct {
	Word      string `json:"word"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Formatted string `json:"formatted"`
}

// Definition handles GET /api/v1/definitions?word=&lang=&links=.
func (h *DefinitionHandler) Definition(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := h.language(q.Get("lang"))

	style, err := domain.ParseHyperlinkStyle(q.Get("links"))
	if err != nil {
		writeError(w, err, lang)
		return
	}

	def, err := h.svc.Resolve(r.Context(), q.Get("word"), lang, domain.Options{Hyperlinks: style})
	if err != nil {
		h.logFailure(r, err)
		writeError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, DefinitionResponse{
		Word:       def.Word,
		Category:   def.Category,
		Definition: def.Definition,
		Gender:     def.Gender.String(),
		Formatted:  presenter.FormatDefinition(def),
	})
}

// Section handles GET /api/v1/sections?word=&lang=&kind=.
func (h *DefinitionHandler) Section(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := h.language(q.Get("lang"))

	sec, err := h.svc.Section(r.Context(), q.Get("word"), lang, domain.SectionKind(q.Get("kind")))
	if err != nil {
		h.logFailure(r, err)
		writeError(w, err, lang)
		return
	}

	writeJSON(w, http.StatusOK, SectionResponse{
		Word:      sec.Word,
		Kind:      sec.Kind.String(),
		Text:      sec.Text,
		Formatted: presenter.FormatSection(sec, lang),
	})
}

func (h *DefinitionHandler) language(raw string) domain.Language {
	if lang := domain.ParseLanguage(raw); lang != "" {
		return lang
	}
	return h.defaultLang
}

// logFailure records upstream failures. Lookups that simply found nothing
// are not worth a log line.
func (h *DefinitionHandler) logFailure(r *http.Request, err error) {
	switch domain.Kind(err) {
	case domain.KindRequestFailed:
		h.log.ErrorContext(r.Context(), "lookup failed", slog.String("error", err.Error()))
	case domain.KindUnknown:
		h.log.ErrorContext(r.Context(), "unexpected lookup error", slog.String("error", err.Error()))
	}
}
