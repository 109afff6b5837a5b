// CLAUDE:SUMMARY Entry point for the branddna HTTP service — chi router, Basic Auth, SQLite cache, MCP stdio optional.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/hueloom/branddna/capture"
	"github.com/hueloom/branddna/dna"
	"github.com/hueloom/branddna/dnastore"
	"github.com/hueloom/branddna/kit"
	"github.com/hueloom/branddna/styleprobe"
	"github.com/hueloom/branddna/themegen"
	"github.com/hueloom/branddna/vision"
)

func main() {
	fc, err := loadFileConfig(os.Getenv("BRANDDNA_CONFIG"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	port := env("PORT", fc.Port)
	dbPath := env("BRANDDNA_DB", fc.DBPath)
	mcpTransport := env("MCP_TRANSPORT", "")
	logLevel := env("LOG_LEVEL", fc.LogLevel)

	// Logging. In stdio MCP mode stdout carries the protocol, so logs go
	// to stderr.
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logOut := os.Stdout
	if mcpTransport == "stdio" {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Cache DB.
	ttl := dnastore.DefaultTTL
	if fc.CacheTTLHours > 0 {
		ttl = time.Duration(fc.CacheTTLHours) * time.Hour
	}
	if h := env("CACHE_TTL_HOURS", ""); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Hour
		}
	}
	store, err := dnastore.Open(dbPath, ttl)
	if err != nil {
		slog.Error("cache db", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// HTML probe.
	probe := styleprobe.New(styleprobe.Config{Logger: logger})

	// Vision fallback — optional, needs an API key. The browser is only
	// launched alongside it since screenshots have no other consumer here.
	cfg := dna.Config{Probe: probe, Logger: logger}
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		ext, err := vision.New(vision.Config{
			APIKey: apiKey,
			Model:  env("VISION_MODEL", fc.VisionModel),
			Logger: logger,
		})
		if err != nil {
			slog.Error("vision extractor", "error", err)
			os.Exit(1)
		}
		browser := capture.NewBrowser(capture.Config{
			RemoteURL: env("CHROME_REMOTE_URL", fc.ChromeRemoteURL),
			Logger:    logger,
		})
		defer browser.Close()

		cfg.Capturer = browser
		cfg.Vision = ext
		cfg.PersonalityModel = ext
		slog.Info("vision fallback enabled")
	} else {
		slog.Info("vision fallback disabled, ANTHROPIC_API_KEY not set")
	}

	builder := dna.NewBuilder(cfg)

	// Optional MCP over stdio.
	if mcpTransport == "stdio" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "branddna",
			Version: "1.0.0",
		}, nil)
		builder.RegisterMCP(mcpSrv)
		themegen.RegisterMCP(mcpSrv, builder)

		slog.Info("MCP stdio starting")
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	// extract resolves a URL to a BrandDNA, cache-first.
	extract := func(ctx context.Context, url string, skipCache bool) *dna.BrandDNA {
		if !skipCache {
			if d, ok, err := store.Get(ctx, url); err != nil {
				slog.Warn("cache get", "url", url, "error", err)
			} else if ok {
				return d
			}
		}
		d := builder.ExtractBrandDNA(ctx, url)
		if err := store.Put(ctx, url, d); err != nil {
			slog.Warn("cache put", "url", url, "error", err)
		}
		return d
	}

	// Router.
	r := chi.NewRouter()
	r.Use(requestContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if password := os.Getenv("AUTH_PASSWORD"); password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				slog.Error("auth hash", "error", err)
				os.Exit(1)
			}
			r.Use(requireBasicAuth(hash))
		}

		r.Post("/api/extract", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				URL       string `json:"url"`
				SkipCache bool   `json:"skip_cache"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, 400, err)
				return
			}
			if req.URL == "" {
				writeJSON(w, 400, map[string]string{"error": "url is required"})
				return
			}
			writeJSON(w, 200, extract(r.Context(), req.URL, req.SkipCache))
		})

		r.Post("/api/style", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				URL string `json:"url"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, 400, err)
				return
			}
			if req.URL == "" {
				writeJSON(w, 400, map[string]string{"error": "url is required"})
				return
			}
			rec := probe.ExtractFromURL(r.Context(), req.URL)
			writeJSON(w, 200, map[string]any{
				"style":   rec,
				"quality": styleprobe.AssessStyleQuality(rec),
			})
		})

		r.Post("/api/themes", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				URL       string `json:"url"`
				SkipCache bool   `json:"skip_cache"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, 400, err)
				return
			}
			if req.URL == "" {
				writeJSON(w, 400, map[string]string{"error": "url is required"})
				return
			}
			d := extract(r.Context(), req.URL, req.SkipCache)
			writeJSON(w, 200, map[string]any{
				"dna":    d,
				"themes": themegen.Generate(d),
			})
		})

		r.Get("/api/pages", func(w http.ResponseWriter, r *http.Request) {
			siteURL := r.URL.Query().Get("url")
			if siteURL == "" {
				writeJSON(w, 400, map[string]string{"error": "url is required"})
				return
			}
			limit := queryInt(r, "limit", 5)
			pages, err := capture.DiscoverPages(r.Context(), siteURL, limit)
			if err != nil {
				writeError(w, 502, err)
				return
			}
			writeJSON(w, 200, pages)
		})

		r.Post("/api/cache/purge", func(w http.ResponseWriter, r *http.Request) {
			n, err := store.Purge(r.Context())
			if err != nil {
				writeError(w, 500, err)
				return
			}
			writeJSON(w, 200, map[string]any{"purged": n})
		})
	})

	// HTTP server. Extraction can take a while with the vision fallback,
	// hence the generous write timeout.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

// requestContext tags every request with an id and its origin so logs from
// deep inside the pipeline can be correlated.
func requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := kit.WithTransport(r.Context(), "http")
		ctx = kit.WithRequestID(ctx, uuid.NewString())
		ctx = kit.WithRemoteAddr(ctx, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireBasicAuth checks the Basic password against its bcrypt hash. The
// username is ignored.
func requireBasicAuth(hash []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, password, ok := r.BasicAuth()
			if !ok || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="branddna"`)
				writeJSON(w, 401, map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// --- Helpers ---

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
