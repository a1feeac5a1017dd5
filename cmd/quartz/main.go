package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quartzlang/quartz/internal/analyzer"
	"github.com/quartzlang/quartz/internal/cache"
	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/jsbackend"
	"github.com/quartzlang/quartz/internal/lexer"
	"github.com/quartzlang/quartz/internal/parser"
	"github.com/quartzlang/quartz/internal/pipeline"
)

const usage = `Usage: quartz <command> [options] <files>

Commands:
  build    compile .qz files to JavaScript
  check    type-check without emitting output
  clean    drop the build cache

Options:
  -o <dir>      output directory (default: out_dir from quartz.yaml)
  --no-cache    bypass the build cache
  --no-runtime  do not prepend the runtime prelude
  --verbose     print per-file build information
`

type options struct {
	outDir    string
	noCache   bool
	noRuntime bool
	verbose   bool
	files     []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	command := args[0]

	opts, err := parseOptions(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	project, err := config.LoadProject(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.outDir == "" {
		opts.outDir = project.OutDir
	}

	switch command {
	case "build":
		return buildCommand(opts, project, true)
	case "check":
		return buildCommand(opts, project, false)
	case "clean":
		return cleanCommand(project)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", command, usage)
		return 2
	}
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("-o requires a directory argument")
			}
			i++
			opts.outDir = args[i]
		case arg == "--no-cache":
			opts.noCache = true
		case arg == "--no-runtime":
			opts.noRuntime = true
		case arg == "--verbose":
			opts.verbose = true
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown option %s", arg)
		default:
			opts.files = append(opts.files, arg)
		}
	}
	return opts, nil
}

func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func buildCommand(opts *options, project *config.Project, emit bool) int {
	if len(opts.files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input files")
		return 2
	}

	var buildCache *cache.Cache
	if emit && project.CacheEnabled() && !opts.noCache {
		c, err := cache.Open(project.CacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache disabled: %v\n", err)
		} else {
			buildCache = c
			defer buildCache.Close()
			if opts.verbose {
				fmt.Fprintf(os.Stderr, "build %s\n", buildCache.BuildID())
			}
		}
	}

	emitRuntime := project.RuntimeEnabled() && !opts.noRuntime
	failed := false

	for _, path := range opts.files {
		if !isSourceFile(path) {
			fmt.Fprintf(os.Stderr, "Error: %s is not a quartz source file\n", path)
			failed = true
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}

		hash := cache.Hash(string(source))
		if buildCache != nil {
			if output, hit, err := buildCache.Get(path, hash); err == nil && hit {
				if opts.verbose {
					fmt.Fprintf(os.Stderr, "%s: cached\n", path)
				}
				if writeErr := writeOutput(opts.outDir, path, output); writeErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", writeErr)
					failed = true
				}
				continue
			}
		}

		ctx, bug := compileFile(path, string(source), emit && emitRuntime)
		if bug != nil {
			fmt.Fprintf(os.Stderr, "Internal compiler error compiling %s: %v\n", path, bug)
			failed = true
			continue
		}
		if ctx.HasErrors() {
			diagnostics.Print(os.Stderr, diagnostics.Dedupe(ctx.Errors))
			failed = true
			continue
		}

		if !emit {
			if opts.verbose {
				fmt.Fprintf(os.Stderr, "%s: ok\n", path)
			}
			continue
		}

		if buildCache != nil {
			if err := buildCache.Put(path, hash, ctx.Output); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
		if err := writeOutput(opts.outDir, path, ctx.Output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		} else if opts.verbose {
			fmt.Fprintf(os.Stderr, "%s: compiled\n", path)
		}
	}

	if failed {
		return 1
	}
	return 0
}

// compileFile runs the full pipeline over one source file. A panic out of
// the backend is a compiler defect, reported as such rather than as a
// diagnostic about the user's program.
func compileFile(path, source string, emitRuntime bool) (ctx *pipeline.Context, bug error) {
	defer func() {
		if r := recover(); r != nil {
			bug = fmt.Errorf("%v", r)
		}
	}()

	ctx = &pipeline.Context{FilePath: path, SourceCode: source}
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
		&jsbackend.Processor{EmitRuntime: emitRuntime},
	)
	return p.Run(ctx), nil
}

func writeOutput(outDir, sourcePath, output string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	base := filepath.Base(sourcePath)
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return os.WriteFile(filepath.Join(outDir, base+".js"), []byte(output), 0o644)
}

func cleanCommand(project *config.Project) int {
	c, err := cache.Open(project.CacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer c.Close()
	if err := c.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
