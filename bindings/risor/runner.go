package risor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/bruplint/brutil/internal/loader"
	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	"github.com/risor-io/risor/object"
	risorParser "github.com/risor-io/risor/parser"
)

// Runner compiles and evaluates Risor scripts with the brutil module available
// both as "brutil" and as top-level builtins.
type Runner struct {
	globals      map[string]any
	extraGlobals map[string]any

	logHandler slog.Handler
	logger     *slog.Logger
}

// Result is the outcome of one script evaluation.
type Result struct {
	Value    object.Object
	ExecTime time.Duration
}

// Interface converts Value into plain Go types.
func (r *Result) Interface() any {
	if r.Value == nil {
		return nil
	}
	return r.Value.Interface()
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	r.setupLogger()

	r.globals = map[string]any{ModuleName: Module()}
	for name, builtin := range Members() {
		r.globals[name] = builtin
	}
	maps.Copy(r.globals, r.extraGlobals)
	return r, nil
}

func (r *Runner) String() string {
	return "risor.Runner"
}

func (r *Runner) options() []risorLib.Option {
	opts := make([]risorLib.Option, 0, len(r.globals))
	for name, value := range r.globals {
		opts = append(opts, risorLib.WithGlobal(name, value))
	}
	return opts
}

// globalNames returns the Risor defaults plus the names this runner injects,
// so the compiler accepts references to them.
func (r *Runner) globalNames() []string {
	names := risorLib.NewConfig().GlobalNames()
	for _, name := range slices.Sorted(maps.Keys(r.globals)) {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// Compile parses and compiles src into bytecode.
func (r *Runner) Compile(ctx context.Context, src string) (*risorCompiler.Code, error) {
	if src == "" {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(ctx, src)
	if err != nil {
		msg := err.Error()
		var friendly risorErrors.FriendlyError
		if errors.As(err, &friendly) {
			msg = friendly.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("%w: %s", ErrCompileFailed, msg)
	}

	code, err := risorCompiler.Compile(ast, risorCompiler.WithGlobalNames(r.globalNames()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	return code, nil
}

// Exec evaluates compiled bytecode. Each call runs on a fresh VM.
func (r *Runner) Exec(ctx context.Context, code *risorCompiler.Code) (*Result, error) {
	logger := r.logger.WithGroup("Exec")
	if code == nil {
		return nil, ErrContentNil
	}

	start := time.Now()
	value, err := risorLib.EvalCode(ctx, code, r.options()...)
	execTime := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}
	if errObj, ok := value.(*object.Error); ok {
		return nil, fmt.Errorf("%w: %s", ErrExecFailed, errObj.Inspect())
	}
	logger.DebugContext(ctx, "exec complete", "result", value, "execTime", execTime)

	return &Result{Value: value, ExecTime: execTime}, nil
}

// Run loads, compiles and evaluates a script in one step.
func (r *Runner) Run(ctx context.Context, l loader.Loader) (*Result, error) {
	logger := r.logger.WithGroup("Run")

	src, err := loader.ReadAll(l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}
	logger.DebugContext(ctx, "running script", "source", l.GetSourceURL())

	code, err := r.Compile(ctx, string(src))
	if err != nil {
		return nil, err
	}
	return r.Exec(ctx, code)
}
