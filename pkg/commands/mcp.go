package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/runner/mcp"
	"tableflip.dev/moodcal/pkg/session"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the mood calendar: read, record and
delete the mood of a day, and fetch month grids with mood counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			// stdout belongs to the protocol on stdio; session notices go to the log.
			notices := session.NotifierFunc(func(message string, severity session.Severity) {
				e.log.Info(message, zap.Stringer("severity", severity))
			})
			cal, err := e.calendar(notices)
			if err != nil {
				return err
			}

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Calendar:         cal,
				Logger:           e.log,
				Name:             "moodcal",
				Version:          version,
				HTTPEndpointPath: path,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return fmt.Errorf("invalid http-port %d", httpPort)
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on http://%s%s\n", a, path)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected stdio or http)", transport)
			}

			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "transport to use: stdio or http")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")

	topLevel.AddCommand(cmd)
}
