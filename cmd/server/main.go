package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	logadapter "github.com/koushikbethu/aud-isl-convo/internal/adapters/logger"
	"github.com/koushikbethu/aud-isl-convo/internal/api"
	"github.com/koushikbethu/aud-isl-convo/internal/config"
	"github.com/koushikbethu/aud-isl-convo/pkg/isl"
)

// Default configuration
const (
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB, requests carry at most 500 chars of text
	DefaultConcurrency    = 0           // 0 means use fasthttp's default
)

func main() {
	cfg := config.Load()

	// Command-line flags override the environment.
	host := flag.String("host", cfg.Host, "HTTP server host")
	port := flag.Int("port", cfg.Port, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = default)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	gifsDir := flag.String("gifs-dir", cfg.GifsDir, "Directory holding phrase GIF assets")
	lettersDir := flag.String("letters-dir", cfg.LettersDir, "Directory holding letter image assets")
	logFile := flag.String("log-file", cfg.LogFile, "Log file path (empty = stdout)")
	flag.Parse()

	logger, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting Audio to ISL API server",
		"version", api.Version,
		"host", *host,
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"dotenv_loaded", cfg.DotEnvLoaded,
		"allowed_origins", cfg.AllowedOrigins,
	)

	converter, err := isl.New(
		isl.WithLogger(logger),
		isl.WithOptimizedNormalizer(),
		isl.WithWarmUp(*warmUp),
	)
	if err != nil {
		logger.Error("Failed to initialize converter", "error", err)
		os.Exit(1)
	}

	apiServer := api.NewServer(converter, logadapter.FromExisting(logger), api.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		GifsDir:        *gifsDir,
		LettersDir:     *lettersDir,
	})

	server := &fasthttp.Server{
		Handler:               apiServer.Handler(),
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown.
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf("%s:%d", *host, *port)
	logger.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger creates and configures a logger.
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
