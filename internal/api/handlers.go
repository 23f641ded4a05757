package api

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/valyala/fasthttp"

	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
	"github.com/koushikbethu/aud-isl-convo/internal/core/tables"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// MaxTextLength is the request contract limit on input text, in characters.
const MaxTextLength = 500

// TextRequest is the conversion request body.
type TextRequest struct {
	Text string `json:"text"`
}

// GifResponse is returned when the text matches a known phrase.
type GifResponse struct {
	Type string `json:"type"`
	Src  string `json:"src"`
	Alt  string `json:"alt"`
}

// SequenceResponse is returned when the text is spelled out letter by letter.
type SequenceResponse struct {
	Type         string   `json:"type"`
	Data         []string `json:"data"`
	OriginalText string   `json:"original_text"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	PhrasesCount int    `json:"phrases_count"`
	LettersCount int    `json:"letters_count"`
}

// PhrasesResponse lists every phrase with a GIF mapping.
type PhrasesResponse struct {
	Phrases []string `json:"phrases"`
	Count   int      `json:"count"`
}

// ErrorResponse is the error body for all non-2xx JSON responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleRoot responds with service information.
func (s *Server) handleRoot(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.logger, map[string]interface{}{
		"message": "Audio to ISL API",
		"version": Version,
		"health":  "/health",
		"phrases": "/api/phrases",
	})
}

// handleHealth responds to health check requests.
func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.logger, HealthResponse{
		Status:       "healthy",
		Version:      Version,
		PhrasesCount: tables.PhraseCount(),
		LettersCount: tables.LetterCount(),
	})
}

// handlePhrases lists all phrases that have a GIF mapping, sorted.
func (s *Server) handlePhrases(ctx *fasthttp.RequestCtx) {
	phrases := tables.Phrases()
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.logger, PhrasesResponse{
		Phrases: phrases,
		Count:   len(phrases),
	})
}

// handleProcess converts text to its visual representation: a phrase GIF on
// an exact match, a letter image sequence otherwise.
func (s *Server) handleProcess(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, s.logger, "Method not allowed")
		return
	}

	var req TextRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.logger, "Invalid request: "+err.Error())
		return
	}

	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.logger, "Text is required")
		return
	}
	if utf8.RuneCountInString(req.Text) > MaxTextLength {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.logger, "Text exceeds maximum length of 500 characters")
		return
	}

	result, err := s.converter.Convert(ctx, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyText):
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, s.logger, "Text cannot be empty after processing")
		case errors.Is(err, domain.ErrNoRenderableChars):
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, s.logger, "No valid characters found to convert")
		default:
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			s.logger.Error("Conversion failed", "error", err)
			writeJSONError(ctx, s.logger, "Internal server error")
		}
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	switch result.Kind {
	case domain.KindGif:
		writeJSONResponse(ctx, s.logger, GifResponse{
			Type: string(domain.KindGif),
			Src:  result.Src,
			Alt:  result.Alt,
		})
	default:
		writeJSONResponse(ctx, s.logger, SequenceResponse{
			Type:         string(domain.KindSequence),
			Data:         result.Assets,
			OriginalText: result.OriginalText,
		})
	}
}

// writeJSONResponse writes a JSON response to the context.
func writeJSONResponse(ctx *fasthttp.RequestCtx, logger ports.Logger, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, logger, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context.
func writeJSONError(ctx *fasthttp.RequestCtx, logger ports.Logger, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
