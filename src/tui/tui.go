package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"github.com/eriklarko/boolean-algebra/src/checker"
	"github.com/eriklarko/boolean-algebra/src/truthtable"
	"github.com/samber/lo"
)

// TUI is the interactive command loop. All of its state lives here, a
// TUI is used by one goroutine at a time.
type TUI struct {
	input  *bufio.Reader
	output io.Writer

	enumerator *truthtable.Enumerator
	// prompts and the banner are only written for a user at a terminal
	interactive bool
	running     bool
}

type command struct {
	name        string
	description string
	run         func(ctx context.Context) error
}

func New(enumerator *truthtable.Enumerator) *TUI {
	return &TUI{
		input:       bufio.NewReader(os.Stdin),
		output:      os.Stdout,
		enumerator:  enumerator,
		interactive: true,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) SetInteractive(interactive bool) {
	t.interactive = interactive
}

func (t *TUI) commands() []command {
	return []command{
		{"quit", "quits", t.quit},
		{"eval", "prompts for an expression and a value for each of its variables, then evaluates it", t.eval},
		{"compare", "prompts for two expressions and compares their truth tables", t.compare},
		{"table", "prompts for an expression and prints its truth table", t.table},
		{"checksteps", "prompts for an expression and the steps simplifying it, stopping at the first incorrect step", t.checkSteps},
		{"help", "shows this help", t.help},
	}
}

// Run reads and executes commands until quit is entered or the input ends.
// Errors of a single command are reported to the user and the loop goes on.
func (t *TUI) Run(ctx context.Context) error {
	t.running = true
	if t.interactive {
		t.printf("Boolean Algebra Engine\n\nType help to get help\n\n")
	}

	for t.running {
		line, err := t.readLine("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}
		if line == "" {
			continue
		}

		err = t.dispatch(ctx, line)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			slog.Debug("command failed", "command", line, "error", err)
			t.printf("Error: %v\n", err)
		}
	}
	return nil
}

func (t *TUI) dispatch(ctx context.Context, name string) error {
	cmd, found := lo.Find(t.commands(), func(c command) bool {
		return c.name == strings.ToLower(name)
	})
	if !found {
		t.printf("Invalid command!\nType help\n")
		return nil
	}
	return cmd.run(ctx)
}

func (t *TUI) quit(context.Context) error {
	t.printf("Goodbye!\n")
	t.running = false
	return nil
}

func (t *TUI) help(context.Context) error {
	t.printf("Commands:\n")
	for _, cmd := range t.commands() {
		t.printf(" - %s\n   ~%s\n", cmd.name, cmd.description)
	}
	return nil
}

func (t *TUI) eval(context.Context) error {
	line, err := t.readLine("Boolean statement: ")
	if err != nil {
		return err
	}
	expr, err := boolexpr.New(line)
	if err != nil {
		return err
	}

	binding := make(boolexpr.Binding)
	for _, name := range expr.Variables() {
		value, err := t.askForever(name + " = ")
		if err != nil {
			return err
		}
		binding[name] = value
	}

	result, err := expr.Eval(binding)
	if err != nil {
		return err
	}
	t.printf("%d\n", result)
	return nil
}

func (t *TUI) compare(ctx context.Context) error {
	expr1, err := t.readLine("Boolean statement 1: ")
	if err != nil {
		return err
	}
	expr2, err := t.readLine("Boolean statement 2: ")
	if err != nil {
		return err
	}

	comparison, err := t.enumerator.Compare(ctx, expr1, expr2)
	if err != nil {
		return err
	}
	return comparison.Render(t.output)
}

func (t *TUI) table(ctx context.Context) error {
	line, err := t.readLine("Boolean statement: ")
	if err != nil {
		return err
	}

	table, err := t.enumerator.Generate(ctx, line)
	if err != nil {
		return err
	}
	return table.Render(t.output)
}

func (t *TUI) checkSteps(ctx context.Context) error {
	t.printf("Type break when you're finished entering steps\n")

	initial, err := t.readLine("Initial expression: ")
	if err != nil {
		return err
	}
	sc, err := checker.NewStepChecker(t.enumerator, initial)
	if err != nil {
		return err
	}

	report := &checker.Report{Initial: initial}
	previous := initial
	for number := 1; ; number++ {
		step, err := t.readLine(fmt.Sprintf("Step %d: ", number))
		if err != nil {
			return err
		}
		if strings.EqualFold(step, "break") {
			return report.Render(t.output)
		}

		comparison, err := sc.Check(ctx, step)
		if err != nil {
			return fmt.Errorf("failed to check step %d: %w", number, err)
		}
		report.RecordDecision(checker.Step{
			Number:     number,
			Expression: step,
			Previous:   previous,
			Comparison: comparison,
		})
		if report.HasInvalidStep() {
			return report.Render(t.output)
		}
		previous = step
	}
}

// askForever asks until the answer is a boolean, 0 and 1 included.
func (t *TUI) askForever(question string) (bool, error) {
	for {
		response, err := t.readLine(question)
		if err != nil {
			return false, err
		}

		value, err := strconv.ParseBool(response)
		if err == nil {
			return value, nil
		}
		t.printf("Please enter 0 or 1\n")
	}
}

// readLine prompts for and reads one line with surrounding whitespace
// removed. io.EOF is only returned when nothing was read.
func (t *TUI) readLine(prompt string) (string, error) {
	if t.interactive {
		t.printf("%s", prompt)
	}

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *TUI) printf(format string, a ...any) {
	// nothing sensible can be done when the output is gone
	_, _ = fmt.Fprintf(t.output, format, a...)
}
