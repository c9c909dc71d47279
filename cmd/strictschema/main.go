// strictschema compiles YAML type declarations into strict JSON Schema
// documents for structured-output consumers.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"

	strictschema "github.com/strictschema/strictschema"
	"github.com/strictschema/strictschema/decl"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

// cliOptions describes strictschema CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Compile  compileCommand  `command:"compile" description:"Compile a declaration file into root schema documents"`
	Fragment fragmentCommand `command:"fragment" description:"Render the embeddable fragment of one declared type"`
}

// declarationFlags groups flags shared by the rendering subcommands.
type declarationFlags struct {
	TypeName string `short:"t" long:"type" description:"Declared type name to render (compile defaults to every struct)"`
	Output   string `short:"o" long:"output" description:"Output file path (stdout when omitted)"`
	Indent   bool   `short:"i" long:"indent" description:"Indent the emitted JSON"`
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs the version subcommand.
func (c *versionCommand) Execute(_ []string) error {
	fmt.Fprintf(c.runner.stdout, "%s %s (%s)\n", c.runner.programName, Version, Commit)
	return nil
}

// compileCommand renders root documents from a declaration file.
type compileCommand struct {
	runner *cliRunner
	Flags  declarationFlags `group:"Declaration"`
	Args   struct {
		File string `positional-arg-name:"file" description:"YAML declaration file" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the compile subcommand.
func (c *compileCommand) Execute(_ []string) error {
	reg, defs, err := loadRegistry(c.Args.File)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(defs))
	if c.Flags.TypeName != "" {
		names = append(names, c.Flags.TypeName)
	} else {
		for _, def := range defs {
			if def.Kind() == strictschema.KindStruct {
				names = append(names, def.Name())
			}
		}
	}
	if len(names) == 0 {
		return errors.New("no struct declarations to compile")
	}

	var out bytes.Buffer
	for _, name := range names {
		data, err := reg.RootDocumentJSON(name)
		if err != nil {
			return err
		}
		if err := appendRendered(&out, data, c.Flags.Indent); err != nil {
			return err
		}
	}
	return c.runner.writeOutput(c.Flags.Output, out.Bytes())
}

// fragmentCommand renders one embeddable fragment from a declaration file.
type fragmentCommand struct {
	runner *cliRunner
	Flags  declarationFlags `group:"Declaration"`
	Args   struct {
		File string `positional-arg-name:"file" description:"YAML declaration file" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs the fragment subcommand.
func (c *fragmentCommand) Execute(_ []string) error {
	if c.Flags.TypeName == "" {
		return errors.New("fragment requires --type")
	}
	reg, _, err := loadRegistry(c.Args.File)
	if err != nil {
		return err
	}
	data, err := reg.FragmentJSON(c.Flags.TypeName)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := appendRendered(&out, data, c.Flags.Indent); err != nil {
		return err
	}
	return c.runner.writeOutput(c.Flags.Output, out.Bytes())
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// loadRegistry parses a declaration file into a frozen registry plus the
// compiled definitions in file order.
func loadRegistry(path string) (*strictschema.Registry, []*strictschema.TypeDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open declarations: %w", err)
	}
	defer f.Close()

	defs, err := decl.Load(f)
	if err != nil {
		return nil, nil, err
	}
	reg := strictschema.NewRegistry()
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return nil, nil, err
		}
	}
	reg.Freeze()
	return reg, defs, nil
}

func appendRendered(out *bytes.Buffer, data []byte, indent bool) error {
	if indent {
		if err := json.Indent(out, data, "", "  "); err != nil {
			return err
		}
	} else {
		out.Write(data)
	}
	out.WriteByte('\n')
	return nil
}

func (runner *cliRunner) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := runner.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write output file %q: %w", path, err)
	}
	return nil
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Compile.runner = runner
	options.Fragment.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName

	_, err := parser.ParseArgs(args)
	return err
}

// run parses CLI args and maps errors to process exit codes.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "strictschema"
	}
	runner := &cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(runner.stdout, err.Error())
			return 0
		}
		fmt.Fprintln(runner.stderr, err.Error())
		return 2
	}

	fmt.Fprintln(runner.stderr, err.Error())
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
