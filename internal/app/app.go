package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"textfilter/internal/argsvalidator"
	"textfilter/internal/logging"
	"textfilter/internal/pipeline"
	"textfilter/internal/textfile"
	"textfilter/internal/textutil"
)

// Exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// User-facing messages.
const (
	MsgNoArguments   = "No text file or filtration options inputted. Please enter the path to a text file and your filtration options"
	MsgFailurePrefix = "The program has failed for the following reason: "
	MsgResultHeader  = "The result of the text filer is:"
)

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// App wires the collaborators of a single run.
type App struct {
	Validator argsvalidator.Validator
	Reader    textfile.Reader
	Filter    textutil.Filter
	Out       io.Writer
	Logger    *slog.Logger
	// Summary appends a per-stage word count table to successful output.
	Summary bool
	// Color renders the result header in bold.
	Color bool
}

// New returns an App using the standard validator, reader and filter.
func New(out io.Writer, logger *slog.Logger) *App {
	return &App{
		Validator: argsvalidator.New(),
		Reader:    textfile.NewReader(),
		Filter:    textutil.NewFilter(),
		Out:       out,
		Logger:    logger,
	}
}

// Run executes the program for args ("<filePath> <filterOptions>") and
// returns the exit status.
func (a *App) Run(args []string) int {
	logger := logging.NewComponentLogger(a.Logger, "app")

	if len(args) == 0 {
		a.println(MsgNoArguments)
		return ExitFailure
	}

	if result := a.Validator.Validate(args); !result.IsValid() {
		logger.Debug("argument validation failed", logging.Int("errors", len(result.Errors)))
		a.println(result.String())
		return ExitFailure
	}

	path, optionString := args[0], args[1]
	opts := pipeline.ParseOptions(optionString)
	logger.Info("filtering file",
		logging.String("path", path),
		logging.String("options", opts.String()),
		logging.Bool("summary", a.Summary),
	)
	if !opts.Any() {
		logger.Debug("no filters selected, printing sanitized words")
	}

	text, err := a.Reader.ReadTextFile(path)
	if err != nil {
		logger.Info("read input failed", logging.String("path", path), logging.Error(err))
		a.println(MsgFailurePrefix + failureReason(err))
		return ExitFailure
	}

	words := a.Filter.SanitizeText(text)
	result, reports, err := pipeline.New(a.Filter, a.Logger).Run(words, opts)
	if err != nil {
		a.println(MsgFailurePrefix + err.Error())
		return ExitFailure
	}

	a.println(a.header())
	a.println(strings.Join(result, " "))
	if a.Summary {
		a.println(renderSummary(len(words), reports))
	}
	logger.Info("filtering complete",
		logging.Int("words_in", len(words)),
		logging.Int("words_out", len(result)),
	)
	return ExitOK
}

func (a *App) header() string {
	if a.Color {
		return ansiBold + MsgResultHeader + ansiReset
	}
	return MsgResultHeader
}

func (a *App) println(s string) {
	fmt.Fprintln(a.Out, s)
}

func failureReason(err error) string {
	var readErr *textfile.ReadError
	if errors.As(err, &readErr) {
		return readErr.Reason
	}
	return err.Error()
}
