// Package api exposes the conversion service over HTTP using fasthttp:
// the conversion endpoints, health and phrase listing, CORS handling and
// static asset serving.
package api

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/koushikbethu/aud-isl-convo/internal/core/domain"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// Version reported by the root and health endpoints.
const Version = "1.0.0"

// Static asset mounts.
const (
	gifsPrefix    = "/static/gifs"
	lettersPrefix = "/static/letters"
)

// Converter is the conversion service the API exposes.
type Converter interface {
	Convert(ctx context.Context, raw string) (domain.Result, error)
}

// Config holds the API server configuration.
type Config struct {
	// AllowedOrigins for CORS. A single "*" allows any origin.
	AllowedOrigins []string
	// GifsDir and LettersDir are the on-disk asset directories.
	GifsDir    string
	LettersDir string
}

// Server routes requests to the conversion service and static assets.
type Server struct {
	converter      Converter
	logger         ports.Logger
	allowedOrigins []string
	allowAll       bool
	gifsHandler    fasthttp.RequestHandler
	lettersHandler fasthttp.RequestHandler
}

// NewServer creates a new API server.
func NewServer(converter Converter, logger ports.Logger, cfg Config) *Server {
	s := &Server{
		converter:      converter,
		logger:         logger,
		allowedOrigins: cfg.AllowedOrigins,
		gifsHandler:    staticHandler(cfg.GifsDir, gifsPrefix),
		lettersHandler: staticHandler(cfg.LettersDir, lettersPrefix),
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			s.allowAll = true
		}
	}
	return s
}

// Handler returns the root fasthttp request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		startTime := time.Now()

		s.applyCORS(ctx)
		if ctx.IsOptions() {
			// Preflight is answered before routing.
			ctx.SetStatusCode(fasthttp.StatusNoContent)
		} else {
			s.route(ctx)
		}

		duration := time.Since(startTime)
		s.logger.Info("Request processed",
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"ip", ctx.RemoteIP().String(),
			"duration", duration,
		)
	}
}

// route dispatches by path. Static asset requests bypass the JSON content
// type set for API responses.
func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case strings.HasPrefix(path, gifsPrefix+"/"):
		s.gifsHandler(ctx)
		return
	case strings.HasPrefix(path, lettersPrefix+"/"):
		s.lettersHandler(ctx)
		return
	}

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch path {
	case "/":
		s.handleRoot(ctx)
	case "/health":
		s.handleHealth(ctx)
	case "/api/phrases":
		s.handlePhrases(ctx)
	case "/process", "/api/convert":
		s.handleProcess(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, s.logger, "Not found")
	}
}

// applyCORS mirrors the allowed-origin list onto the response. Credentials
// stay enabled, so a matching origin is echoed back rather than "*" unless
// the configuration explicitly allows every origin.
func (s *Server) applyCORS(ctx *fasthttp.RequestCtx) {
	origin := string(ctx.Request.Header.Peek("Origin"))
	if origin == "" {
		return
	}

	allowed := s.allowAll
	if !allowed {
		for _, o := range s.allowedOrigins {
			if o == origin {
				allowed = true
				break
			}
		}
	}
	if !allowed {
		return
	}

	if s.allowAll {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	} else {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
		ctx.Response.Header.Set("Vary", "Origin")
		ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
	}
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "*")
}

// staticHandler serves read-only files from dir under the given URL prefix.
func staticHandler(dir, prefix string) fasthttp.RequestHandler {
	fs := &fasthttp.FS{
		Root:               dir,
		PathRewrite:        fasthttp.NewPathPrefixStripper(len(prefix)),
		AcceptByteRange:    true,
		GenerateIndexPages: false,
	}
	return fs.NewRequestHandler()
}
