// Package gin serves the chat API and the static web client.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/gin-gonic/gin"
)

// Shown to clients instead of internal and completion failures.
const internalErrorMessage = "Internal server error. Please try again later."

// DefaultMaxUploadBytes bounds the size of a single uploaded document.
const DefaultMaxUploadBytes = 32 << 20

// multipartOverhead is allowed on top of the file for headers and other
// form fields.
const multipartOverhead = 64 << 10

// Server is the HTTP front end. Dependencies are read on every request, so
// they may be set after NewServer returns but before Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Addr is the bind address, e.g. ":3000".
	Addr string

	// PublicDir holds the web client. Empty disables static files.
	PublicDir string

	Asker     sitechat.Asker
	Documents sitechat.DocumentStore
	Rebuilder sitechat.DocumentRebuilder
	Corpus    sitechat.CorpusReader

	// MaxUploadBytes caps the uploaded file. The whole request body is cut
	// off shortly after it, before anything is buffered to disk.
	MaxUploadBytes int64

	// Metrics serves GET /metrics when set.
	Metrics http.Handler

	Logger *slog.Logger
}

// NewServer creates a server with all routes registered.
func NewServer() *Server {
	s := &Server{
		router:         gin.New(),
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.router.MaxMultipartMemory = 8 << 20
	s.router.Use(s.requestID(), s.logRequests(), s.recovery(), cors())

	s.router.POST("/chat", s.handleChat)
	s.router.POST("/upload", s.handleUpload)
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", s.handleMetrics)
	s.router.NoRoute(s.handleStatic)

	return s
}

// ServeHTTP lets the server be used as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open binds Addr and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger().Error("serve", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type chatRequest struct {
	Message string `json:"message" form:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required."})
		return
	}

	answer, err := s.Asker.Ask(c.Request.Context(), req.Message)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chatResponse{Response: strings.TrimSpace(answer)})
}

func (s *Server) handleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.MaxUploadBytes+multipartOverhead)

	fh, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large."})
		return
	} else if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}
	if fh.Size > s.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large."})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer f.Close()

	ctx := c.Request.Context()
	name, err := s.Documents.Save(ctx, fh.Filename, f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.Rebuilder.RebuildDocuments(ctx); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded and processed successfully.",
		"file":    name,
	})
}

type healthResponse struct {
	Ready     bool      `json:"ready"`
	Pages     int       `json:"pages"`
	Documents int       `json:"documents"`
	Digest    string    `json:"digest"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) handleHealth(c *gin.Context) {
	corpus := s.Corpus.Snapshot()
	status := http.StatusOK
	if !corpus.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, healthResponse{
		Ready:     corpus.Ready,
		Pages:     corpus.Pages,
		Documents: len(corpus.Documents),
		Digest:    corpus.Digest,
		UpdatedAt: corpus.UpdatedAt,
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	if s.Metrics == nil {
		c.Status(http.StatusNotFound)
		return
	}
	s.Metrics.ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleStatic(c *gin.Context) {
	if s.PublicDir == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return
	}
	http.FileServer(http.Dir(s.PublicDir)).ServeHTTP(c.Writer, c.Request)
}

var statusCodes = map[string]int{
	sitechat.EINVALID:     http.StatusBadRequest,
	sitechat.ENOTFOUND:    http.StatusNotFound,
	sitechat.EUNAVAILABLE: http.StatusServiceUnavailable,
	sitechat.EINTERNAL:    http.StatusInternalServerError,
}

// writeError maps an application error code to a status. Messages of
// internal errors, completion failures included, are logged but never
// shown to the client.
func (s *Server) writeError(c *gin.Context, err error) {
	code := sitechat.ErrorCode(err)
	status, ok := statusCodes[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	msg := sitechat.ErrorMessage(err)
	if status == http.StatusInternalServerError {
		s.logger().Error("request failed",
			"request_id", c.GetString(requestIDKey),
			"path", c.Request.URL.Path,
			"err", err,
		)
		msg = internalErrorMessage
	}
	c.JSON(status, gin.H{"error": msg})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
