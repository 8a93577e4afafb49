package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/logging"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Calendar *app.Calendar
	Logger   *zap.Logger
	Name     string
	Version  string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
}

// Run starts the Model Context Protocol server over stdio.
func Run(ctx context.Context, cal *app.Calendar) error {
	r := Runner{
		Calendar:  cal,
		Name:      "moodcal",
		Version:   "dev",
		Transport: TransportStdio,
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every tool and resource registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Calendar == nil {
		return nil, errors.New("mcp runner requires a calendar")
	}
	name := r.Name
	if name == "" {
		name = "moodcal"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and record one mood per calendar day via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Calendar)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	log := logging.OrNop(r.Logger)

	switch t := r.Transport; t {
	case "", TransportStdio:
		log.Info("serving mcp", zap.String("transport", string(TransportStdio)))
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv, log)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, log *zap.Logger) error {
	handler := server.NewStreamableHTTPServer(srv)

	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	log.Info("serving mcp", zap.String("transport", string(TransportHTTP)), zap.Stringer("addr", ln.Addr()), zap.String("path", path))

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
