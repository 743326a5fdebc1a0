package pipeline

import (
	"fmt"
	"log/slog"

	"textfilter/internal/logging"
	"textfilter/internal/textutil"
)

// Stage names reported in StageReport and StageError.
const (
	StageVowelInMiddle = "vowel-in-middle"
	StageShortWords    = "short-words"
	StageWordsWithT    = "words-with-t"
)

// StageReport captures the word counts around one executed stage.
type StageReport struct {
	Name   string
	Option rune
	Before int
	After  int
}

// Removed returns how many words the stage dropped.
func (r StageReport) Removed() int {
	return r.Before - r.After
}

// StageError reports a stage that faulted while running.
type StageError struct {
	Stage   string
	Message string
}

func (e *StageError) Error() string {
	return e.Message
}

type stage struct {
	name     string
	option   rune
	selected func(Options) bool
	apply    func(textutil.Filter, []string) []string
}

// stages lists the filters in execution order.
var stages = []stage{
	{
		name:     StageVowelInMiddle,
		option:   OptionVowelInMiddle,
		selected: func(o Options) bool { return o.VowelInMiddle },
		apply:    textutil.Filter.FilterVowelInMiddle,
	},
	{
		name:     StageShortWords,
		option:   OptionShortWords,
		selected: func(o Options) bool { return o.ShortWords },
		apply:    textutil.Filter.FilterShortWords,
	},
	{
		name:     StageWordsWithT,
		option:   OptionWordsWithT,
		selected: func(o Options) bool { return o.WordsWithT },
		apply:    textutil.Filter.FilterWordsWithT,
	},
}

// Pipeline runs the selected filter stages against a word list.
type Pipeline struct {
	filter textutil.Filter
	logger *slog.Logger
}

// New builds a pipeline around filter. A nil logger discards output.
func New(filter textutil.Filter, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		filter: filter,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run applies every stage selected by opts, in fixed order, to words. On a
// stage fault it returns a *StageError and no words.
func (p *Pipeline) Run(words []string, opts Options) ([]string, []StageReport, error) {
	result := words
	reports := make([]StageReport, 0, len(stages))
	for _, st := range stages {
		if !st.selected(opts) {
			continue
		}
		out, err := p.runStage(st, result)
		if err != nil {
			p.logger.Error("filter stage failed",
				logging.String("stage", st.name),
				logging.Error(err),
			)
			return nil, nil, err
		}
		reports = append(reports, StageReport{
			Name:   st.name,
			Option: st.option,
			Before: len(result),
			After:  len(out),
		})
		p.logger.Debug("filter stage complete",
			logging.String("stage", st.name),
			logging.Int("words_in", len(result)),
			logging.Int("words_out", len(out)),
		)
		result = out
	}
	return result, reports, nil
}

func (p *Pipeline) runStage(st stage, words []string) (out []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &StageError{Stage: st.name, Message: faultMessage(r)}
		}
	}()
	return st.apply(p.filter, words), nil
}

func faultMessage(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
