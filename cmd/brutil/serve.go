package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bruplint/brutil"
)

const defaultGreetName = "world"

var greetPage = template.Must(template.New("greet").Parse(`<!doctype html>
<html>
<head><title>brutil: {{.Name}}</title></head>
<body>
<h1>Greetings for {{.Name}}</h1>
<ul>
{{- range .Greetings}}
<li><strong>{{.Host}}</strong>: {{.Text}}</li>
{{- end}}
</ul>
</body>
</html>
`))

// greeter is one binding the server greets through.
type greeter struct {
	host  string
	greet func(ctx context.Context, name string) (string, error)
}

type greeting struct {
	Host string
	Text string
}

type greetPageData struct {
	Name      string
	Greetings []greeting
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve greetings over HTTP",
		Long: `Start an HTTP server that greets through the bindings.

Endpoints:
  GET /               Redirect to /greet/world
  GET /greet/{name}   HTML page with the greeting from each binding
  GET /health         Health check

The wasm binding is included when the plugin can be found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd)
		},
	}
	cmd.Flags().String("addr", ":8000", "Address to listen on")
	_ = a.v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) serve(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(a.logHandler).WithGroup("serve")

	greeters := []greeter{
		{host: brutil.HostPython, greet: a.greetStarlark},
		{host: brutil.HostRisor, greet: a.greetRisor},
	}
	m, err := a.openWasm(ctx)
	if err != nil {
		logger.WarnContext(ctx, "serving without the wasm binding", "error", err)
	} else {
		defer func() { _ = m.Close(context.Background()) }()
		greeters = append(greeters, greeter{host: brutil.HostWebAssembly, greet: m.Greet})
	}

	srv := &http.Server{
		Addr:              a.cfg.Serve.Addr,
		Handler:           newGreetServer(greeters, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.ErrOrStderr(), "brutil server listening on %s\n", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newGreetServer(greeters []greeter, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/greet/"+defaultGreetName, http.StatusFound)
	})

	mux.HandleFunc("GET /greet/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		data := greetPageData{Name: name, Greetings: make([]greeting, 0, len(greeters))}
		for _, g := range greeters {
			text, err := g.greet(r.Context(), name)
			if err != nil {
				logger.ErrorContext(r.Context(), "greet failed", "host", g.host, "error", err)
				http.Error(w, fmt.Sprintf("greet via %s failed", g.host), http.StatusInternalServerError)
				return
			}
			data.Greetings = append(data.Greetings, greeting{Host: g.host, Text: text})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := greetPage.Execute(w, data); err != nil {
			logger.ErrorContext(r.Context(), "failed to render page", "error", err)
		}
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
