package starlark

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/bruplint/brutil/internal/loader"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ResultGlobal is the global a script assigns to hand a value back to Go.
const ResultGlobal = "result"

// Runner compiles and executes Starlark scripts that use the brutil_py module.
// A compiled program can be executed any number of times; every execution gets
// a fresh thread and fresh globals.
type Runner struct {
	universe     starlarkLib.StringDict
	extraGlobals starlarkLib.StringDict
	fileOpts     *syntax.FileOptions

	logHandler slog.Handler
	logger     *slog.Logger
}

// Result is the outcome of one script execution.
type Result struct {
	// Value is the script's "result" global, or None when it was not set.
	Value    starlarkLib.Value
	Globals  starlarkLib.StringDict
	ExecTime time.Duration
}

// Interface converts Value into plain Go types.
func (r *Result) Interface() (any, error) {
	return toGoValue(r.Value)
}

// NewRunner creates a Runner with the default universe plus the brutil_py module.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	r.applyDefaults()
	r.setupLogger()

	r.universe = universe()
	maps.Copy(r.universe, r.extraGlobals)
	return r, nil
}

func (r *Runner) String() string {
	return "starlark.Runner"
}

// Compile parses src and resolves it against the runner's predeclared names.
func (r *Runner) Compile(filename string, src []byte) (*starlarkLib.Program, error) {
	if src == nil {
		return nil, ErrContentNil
	}

	f, err := r.fileOpts.Parse(filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, r.universe.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	return prog, nil
}

// Exec runs a compiled program. Cancelling ctx cancels the Starlark thread.
func (r *Runner) Exec(ctx context.Context, prog *starlarkLib.Program) (*Result, error) {
	logger := r.logger.WithGroup("Exec")
	if prog == nil {
		return nil, ErrContentNil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}

	thread := &starlarkLib.Thread{
		Name: "brutil",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "thread", thread.Name)
		},
		Load: r.load,
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	start := time.Now()
	globals, err := prog.Init(thread, r.universe)
	execTime := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecFailed, err)
	}

	value, ok := globals[ResultGlobal]
	if !ok {
		value = starlarkLib.None
	}
	value.Freeze()
	logger.DebugContext(ctx, "exec complete", "result", value, "execTime", execTime)

	return &Result{Value: value, Globals: globals, ExecTime: execTime}, nil
}

// Run loads, compiles and executes a script in one step.
func (r *Runner) Run(ctx context.Context, l loader.Loader) (*Result, error) {
	logger := r.logger.WithGroup("Run")

	src, err := loader.ReadAll(l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNil, err)
	}

	filename := ""
	if u := l.GetSourceURL(); u != nil {
		filename = u.String()
	}
	logger.DebugContext(ctx, "running script", "source", filename)

	prog, err := r.Compile(filename, src)
	if err != nil {
		return nil, err
	}
	return r.Exec(ctx, prog)
}

// load resolves load() statements. Only brutil_py and the standard modules are available.
func (r *Runner) load(_ *starlarkLib.Thread, module string) (starlarkLib.StringDict, error) {
	if module == ModuleName {
		return Members(), nil
	}
	if mod, ok := standardModules[module]; ok {
		return mod.Members, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, module)
}
