package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/npillmayer/digitfont/core"
	"github.com/npillmayer/digitfont/core/font/digits"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/pterm/pterm"
	"golang.org/x/text/width"
)

// tracer traces with key 'digitfont.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("digitfont.glyphs")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.digitfont.glyphs": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the digit font CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("digits > ")
	if err != nil {
		tracer().Errorf(err.Error())
		core.UserError(err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                            // go into interactive mode
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
	repl *readline.Instance
}

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
		cmd, err := parseCommand(line)
		if err != nil {
			reportError(err)
			continue
		}
		if quit := intp.execute(cmd); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	PIXEL
	SHOW
	LIST
)

// Command is a parsed input line.
type Command struct {
	code int
	args []string
}

func parseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return &Command{code: HELP}, nil
	}
	cmd := &Command{args: fields[1:]}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "pixel", "px":
		cmd.code = PIXEL
		if len(cmd.args) != 3 {
			return nil, core.Error(core.EINVALID, "usage: pixel <char> <column> <row>")
		}
	case "show":
		cmd.code = SHOW
		// keep blanks within the text
		cmd.args = []string{strings.TrimSpace(line[len(fields[0]):])}
	case "list":
		cmd.code = LIST
	default:
		cmd.code = HELP
	}
	tracer().Debugf("parsed command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) bool {
	switch cmd.code {
	case QUIT:
		return true
	case HELP:
		help()
	case LIST:
		pterm.Printfln("font has glyphs for %q", string(digits.Characters()))
	case PIXEL:
		lit, err := queryPixel(cmd.args[0], cmd.args[1], cmd.args[2])
		if err != nil {
			reportError(err)
			break
		}
		pterm.Printfln("%v", lit)
	case SHOW:
		for _, key := range glyphKeys(cmd.args[0]) {
			g, err := digits.LookupString(key)
			if err != nil {
				reportError(err)
				continue
			}
			for _, row := range g.Pattern() {
				pterm.Printfln("%s  [%s]", key, row)
			}
		}
	}
	return false
}

// queryPixel parses the arguments of a pixel command and asks the glyph table.
func queryPixel(char, col, row string) (bool, error) {
	keys := glyphKeys(char)
	if len(keys) != 1 {
		return false, core.Error(core.EINVALID, "expected a single character, have %q", char)
	}
	x, err := strconv.Atoi(col)
	if err != nil {
		return false, core.WrapError(err, core.EINVALID, "column is not numeric: %s", col)
	}
	y, err := strconv.Atoi(row)
	if err != nil {
		return false, core.WrapError(err, core.EINVALID, "row is not numeric: %s", row)
	}
	c := []rune(keys[0])
	if len(c) != 1 { // grapheme cluster of more than one code-point
		_, err = digits.LookupString(keys[0])
		return false, err
	}
	tracer().Debugf("query pixel (%d,%d) of %q", x, y, c[0])
	return digits.IsPixelSet(c[0], x, y)
}

var graphemeClassesSetup sync.Once

// glyphKeys splits text into grapheme clusters, which are the keys to look
// up in the glyph table. Full-width digits are folded to ASCII digits.
func glyphKeys(text string) []string {
	text = width.Narrow.String(text)
	graphemeClassesSetup.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.Init(strings.NewReader(text))
	keys := make([]string, 0, len(text))
	for seg.Next() {
		keys = append(keys, string(seg.Bytes()))
	}
	return keys
}

// reportError shows application errors with their user message. Other
// errors are passed on to core.UserError.
func reportError(err error) {
	tracer().Errorf(err.Error())
	if e := core.AppError(nil); errors.As(err, &e) {
		pterm.Error.Println(e.UserMessage())
		return
	}
	core.UserError(err)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	pixel <char> <column> <row>   is the pixel at (column,row) of char lit?
	show <text>                   print the glyph patterns of text
	list                          list the characters of the font
	help                          this message
	quit                          leave the CLI
	`)
}
