// Package debugger steps the emulator one instruction at a time under
// interactive control.
package debugger

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/ezrec/vproc/emulator"
	"github.com/ezrec/vproc/translate"
)

var f = translate.From

const PROMPT = "> "

const (
	BANNER = "You are running the program in debug mode.\nUse the 'help'/'h' action for more information.\n"
	HELP   = "You can take the following actions:\n  - 'next'/'n' will advance the interpretation by one instruction\n  - 'stop'/'s' will stop the interpretation\n  - 'help'/'h' will show this message\n"
)

// Command is a debugger action.
type Command int

const (
	CMD_NONE = Command(iota) // Blank input.
	CMD_NEXT                 // Execute one instruction.
	CMD_STOP                 // Stop the program.
	CMD_HELP                 // Show the actions.
)

var cmdMap = map[string]Command{
	"next": CMD_NEXT,
	"n":    CMD_NEXT,
	"stop": CMD_STOP,
	"s":    CMD_STOP,
	"help": CMD_HELP,
	"h":    CMD_HELP,
}

// ErrCommand is an unrecognized debugger action.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("unknown action '%v'", string(err))
}

// ParseCommand parses one line of debugger input.
func ParseCommand(line string) (cmd Command, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, ok := cmdMap[strings.ToLower(words[0])]
	if !ok || len(words) > 1 {
		cmd = CMD_NONE
		err = ErrCommand(strings.TrimSpace(line))
		return
	}

	return
}

// lineReader is the input side of the debugger prompt.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scanReader prompts and reads lines from a non-terminal input.
type scanReader struct {
	output  io.Writer
	scanner *bufio.Scanner
}

func (sr *scanReader) Readline() (line string, err error) {
	_, err = io.WriteString(sr.output, PROMPT)
	if err != nil {
		return
	}

	if !sr.scanner.Scan() {
		err = sr.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return
	}

	line = sr.scanner.Text()
	return
}

func (sr *scanReader) Close() error {
	return nil
}

// Debugger runs an emulator one instruction per 'next' action.
type Debugger struct {
	Verbose     bool               // If set, enables verbose logging.
	Emulator    *emulator.Emulator // Emulator to step.
	Input       io.Reader          // Source of actions.
	Output      io.Writer          // Destination of prompts and messages.
	HistoryFile string             // Readline history, for terminal input.
}

// NewDebugger creates a debugger on the standard input and output.
func NewDebugger(emu *emulator.Emulator) (dbg *Debugger) {
	dbg = &Debugger{
		Emulator: emu,
		Input:    os.Stdin,
		Output:   os.Stdout,
	}
	return
}

// open selects readline for a terminal, or a plain scanner otherwise.
func (dbg *Debugger) open() (lr lineReader, err error) {
	file, ok := dbg.Input.(*os.File)
	if ok && term.IsTerminal(int(file.Fd())) {
		if dbg.Verbose {
			log.Printf("debugger: readline, history %q", dbg.HistoryFile)
		}
		lr, err = readline.NewEx(&readline.Config{
			Prompt:      PROMPT,
			HistoryFile: dbg.HistoryFile,
			Stdout:      dbg.Output,
		})
		return
	}

	lr = &scanReader{
		output:  dbg.Output,
		scanner: bufio.NewScanner(dbg.Input),
	}
	return
}

func (dbg *Debugger) print(key string, args ...any) (err error) {
	_, err = translate.Fprintf(dbg.Output, key, args...)
	return
}

// showLine prints the next line to execute.
func (dbg *Debugger) showLine() (err error) {
	line, ok := dbg.Emulator.Line()
	if !ok {
		err = dbg.print("%d: (end of program)\n", dbg.Emulator.Pc())
		return
	}

	err = dbg.print("%d: %v\n", line.LineNo, line.String())
	return
}

// Run the debugger until the program stops, the input ends, or the
// first error.
func (dbg *Debugger) Run() (err error) {
	lr, err := dbg.open()
	if err != nil {
		return
	}
	defer lr.Close()

	err = dbg.print(BANNER)
	if err != nil {
		return
	}

	err = dbg.showLine()
	if err != nil {
		return
	}

	for {
		var text string
		text, err = lr.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			err = dbg.Emulator.Cpu.Stop()
			return
		}
		if err != nil {
			return
		}

		var cmd Command
		cmd, err = ParseCommand(text)
		if err != nil {
			err = dbg.print("%v\n%v", err, HELP)
			if err != nil {
				return
			}
			continue
		}

		switch cmd {
		case CMD_NONE:
		case CMD_HELP:
			err = dbg.print(HELP)
		case CMD_STOP:
			err = dbg.Emulator.Cpu.Stop()
			return
		case CMD_NEXT:
			var done bool
			done, err = dbg.Emulator.Tick()
			if err != nil || done {
				return
			}
			err = dbg.showLine()
		}

		if err != nil {
			return
		}
	}
}
