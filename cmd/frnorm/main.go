// Command frnorm is an interactive tester for French token normalization.
//
// Every line entered is split into tokens at white space, and each token is
// displayed together with its normalized form, its folded form and the norm
// found by a lexicon normalizer. Lines starting with ':' are commands:
//
//	:add <norm> <form>…   associate forms with a norm
//	:save <file>          save the lexicon tables
//	:load <file>          load lexicon tables saved before
//	:quit                 leave (as does <ctrl>D)
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/frnorm"
	"github.com/npillmayer/frnorm/lexicon"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'frnorm'
func tracer() tracing.Trace {
	return tracing.Select("frnorm")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.frnorm":         "Info",
		"trace.frnorm.lexicon": "Info",
		"trace.frnorm.suffix":  "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	words := flag.String("words", "", "Word list to load")
	table := flag.String("table", "", "Saved lexicon to load")
	flag.Parse()
	level, err := traceLevel(*tlevel)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to the French token normalizer")
	//
	intp := &Intp{lexicon: lexicon.New()}
	if *words != "" {
		if err := intp.loadWords(*words); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
	}
	if *table != "" {
		if err := intp.load(*table); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("fr > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().SetTraceLevel(level)
	tracer().Infof("Trace level is %s", *tlevel)
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch name {
	case "Debug":
		return tracing.LevelDebug, nil
	case "Info":
		return tracing.LevelInfo, nil
	case "Error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level: %s", name)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	lexicon *lexicon.Normalizer
}

var errQuit = errors.New("quit")

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			err = intp.command(strings.Fields(line[1:]))
		} else {
			err = intp.normalizeLine(line)
		}
		if errors.Is(err, errQuit) {
			break
		} else if err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) command(args []string) error {
	if len(args) == 0 {
		return errors.New("missing command")
	}
	switch cmd := args[0]; cmd {
	case "quit", "q":
		return errQuit
	case "add":
		if len(args) < 3 {
			return errors.New("usage: :add <norm> <form>…")
		}
		intp.lexicon.Add(args[1], args[2:]...)
		return nil
	case "save":
		if len(args) != 2 {
			return errors.New("usage: :save <file>")
		}
		return intp.save(args[1])
	case "load":
		if len(args) != 2 {
			return errors.New("usage: :load <file>")
		}
		return intp.load(args[1])
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (intp *Intp) normalizeLine(line string) error {
	data := pterm.TableData{{"token", "normalized", "folded", "norm"}}
	for _, token := range strings.Fields(line) {
		normalized, err := frnorm.Normalize(token)
		if err != nil {
			return err
		}
		folded, err := frnorm.Dediacritic(normalized)
		if err != nil {
			return err
		}
		nrm, err := intp.lexicon.Normalize(token)
		if err != nil {
			return err
		}
		data = append(data, []string{token, normalized, folded, nrm})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) loadWords(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := intp.lexicon.LoadWords(f); err != nil {
		return err
	}
	forms, _ := intp.lexicon.Size()
	pterm.Info.Printf("Loaded word list %s (%d forms)\n", path, forms)
	return nil
}

func (intp *Intp) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := intp.lexicon.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	pterm.Info.Printf("Saved lexicon to %s\n", path)
	return nil
}

func (intp *Intp) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := intp.lexicon.Load(f); err != nil {
		return err
	}
	forms, _ := intp.lexicon.Size()
	pterm.Info.Printf("Loaded lexicon %s (%d forms)\n", path, forms)
	return nil
}
