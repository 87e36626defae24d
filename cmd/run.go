package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sll_visualizer/visualizer"
)

type runOptions struct {
	script string
	seed   bool
	output OutputFormat
}

func newRunCmd(newLog func() logr.Logger) *cobra.Command {
	opts := runOptions{}

	runCmd := &cobra.Command{
		Use:   "run [operation ...]",
		Short: "Run list operations and print the list after each one",
		Long: `Run list operations and print the list after each one.

Each operation is a name followed by its arguments, value before index:

  pushFront 5     pushBack 5     insertAt 15 1
  popFront        popBack        deleteAt 2
  search 20       reverse

Operations come from the arguments (quote each one) and, with --script, from
a file holding one operation per line ("-" reads stdin). Blank lines and lines
starting with # are skipped.`,
		Example: `  llvis run "pushBack 40" "insertAt 15 1" reverse
  llvis run --seed=false --script ops.txt --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := collectOps(cmd.InOrStdin(), opts.script, args)
			if err != nil {
				return err
			}
			return runOps(cmd.OutOrStdout(), visualizer.NewSession(newLog()), ops, opts)
		},
	}

	runCmd.Flags().StringVar(&opts.script, "script", "", "Read operations from this file, one per line; \"-\" reads stdin.")
	runCmd.Flags().BoolVar(&opts.seed, "seed", true, "Start from the sample list 10, 20, 30.")
	runCmd.Flags().Var(outputFlag{&opts.output}, "output", "Output format: text or json.")
	return runCmd
}

func collectOps(stdin io.Reader, script string, args []string) ([]visualizer.Op, error) {
	var ops []visualizer.Op
	for i, arg := range args {
		op, err := visualizer.ParseOp(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		ops = append(ops, op)
	}
	if script == "" {
		return ops, nil
	}

	r := stdin
	name := "stdin"
	if script != "-" {
		f, err := os.Open(script)
		if err != nil {
			return nil, errors.Wrap(err, "open script")
		}
		defer f.Close()
		r, name = f, script
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := visualizer.ParseOp(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineNo)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return ops, nil
}

func runOps(w io.Writer, s *visualizer.Session, ops []visualizer.Op, opts runOptions) error {
	if opts.seed {
		s.Seed()
	}

	if opts.output == EOutputFormat.Json() {
		for _, op := range ops {
			s.Run(op)
		}
		out, err := json.MarshalIndent(s.State(), "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode state")
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "session %s\n", s.ID())
	fmt.Fprintf(&sb, "%s\n", s.Render())
	for _, op := range ops {
		res := s.Run(op)
		fmt.Fprintf(&sb, "\n%s\n%s  (size %d)\n", res.Description, s.Render(), s.List().Len())
	}
	sb.WriteString("\nhistory (newest first):\n")
	for _, desc := range s.History() {
		fmt.Fprintf(&sb, "  %s\n", desc)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
