package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"textfilter/internal/logging"
	"textfilter/internal/textutil"
)

// orderFilter has non-commuting stages so the result depends on the order
// they run in.
type orderFilter struct {
	calls []string
}

func (f *orderFilter) SanitizeText(text string) []string { return textutil.SanitizeText(text) }

// FilterVowelInMiddle drops the first word.
func (f *orderFilter) FilterVowelInMiddle(words []string) []string {
	f.calls = append(f.calls, "v")
	if len(words) == 0 {
		return []string{}
	}
	return append([]string{}, words[1:]...)
}

// FilterShortWords keeps the first two words.
func (f *orderFilter) FilterShortWords(words []string) []string {
	f.calls = append(f.calls, "s")
	if len(words) > 2 {
		words = words[:2]
	}
	return append([]string{}, words...)
}

// FilterWordsWithT drops the last word.
func (f *orderFilter) FilterWordsWithT(words []string) []string {
	f.calls = append(f.calls, "t")
	if len(words) == 0 {
		return []string{}
	}
	return append([]string{}, words[:len(words)-1]...)
}

type panicFilter struct {
	orderFilter
	fault any
}

func (f *panicFilter) FilterShortWords([]string) []string {
	f.calls = append(f.calls, "s")
	panic(f.fault)
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		input string
		want  Options
		str   string
	}{
		{"", Options{}, ""},
		{"v", Options{VowelInMiddle: true}, "v"},
		{"ts", Options{ShortWords: true, WordsWithT: true}, "st"},
		{"tsv", Options{VowelInMiddle: true, ShortWords: true, WordsWithT: true}, "vst"},
		{"vvv", Options{VowelInMiddle: true}, "v"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseOptions(tt.input)
			if got != tt.want {
				t.Fatalf("ParseOptions(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.str {
				t.Fatalf("String() = %q, want %q", got.String(), tt.str)
			}
			if got.Any() != (tt.str != "") {
				t.Fatalf("Any() = %v for %q", got.Any(), tt.input)
			}
		})
	}
}

func TestRunAppliesStagesInFixedOrder(t *testing.T) {
	words := []string{"a", "b", "c", "d"}

	for _, opts := range []string{"vst", "tsv", "stv", "tvs"} {
		t.Run(opts, func(t *testing.T) {
			f := &orderFilter{}
			got, reports, err := New(f, logging.NewNop()).Run(words, ParseOptions(opts))
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if want := []string{"v", "s", "t"}; !reflect.DeepEqual(f.calls, want) {
				t.Fatalf("stage calls = %v, want %v", f.calls, want)
			}
			if want := []string{"b"}; !reflect.DeepEqual(got, want) {
				t.Fatalf("Run() = %v, want %v", got, want)
			}
			wantReports := []StageReport{
				{Name: StageVowelInMiddle, Option: 'v', Before: 4, After: 3},
				{Name: StageShortWords, Option: 's', Before: 3, After: 2},
				{Name: StageWordsWithT, Option: 't', Before: 2, After: 1},
			}
			if !reflect.DeepEqual(reports, wantReports) {
				t.Fatalf("reports = %+v, want %+v", reports, wantReports)
			}
		})
	}
}

func TestRunResultDependsOnStageOrder(t *testing.T) {
	words := []string{"a", "b", "c", "d"}
	f := &orderFilter{}

	fixed, _, err := New(f, nil).Run(words, ParseOptions("sv"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	reversed := f.FilterVowelInMiddle(f.FilterShortWords(words))

	if want := []string{"b", "c"}; !reflect.DeepEqual(fixed, want) {
		t.Fatalf("fixed order = %v, want %v", fixed, want)
	}
	if want := []string{"b"}; !reflect.DeepEqual(reversed, want) {
		t.Fatalf("reversed order = %v, want %v", reversed, want)
	}
}

func TestRunSkipsUnselectedStages(t *testing.T) {
	words := []string{"a", "b", "c"}

	f := &orderFilter{}
	got, reports, err := New(f, nil).Run(words, ParseOptions("t"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !reflect.DeepEqual(f.calls, []string{"t"}) || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected run: calls=%v got=%v", f.calls, got)
	}
	if len(reports) != 1 || reports[0].Removed() != 1 {
		t.Fatalf("unexpected reports %+v", reports)
	}

	f = &orderFilter{}
	got, reports, err = New(f, nil).Run(words, ParseOptions(""))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(f.calls) != 0 || len(reports) != 0 || !reflect.DeepEqual(got, words) {
		t.Fatalf("expected no stages to run: calls=%v reports=%v got=%v", f.calls, reports, got)
	}
}

func TestRunStageFaultAbortsPipeline(t *testing.T) {
	tests := []struct {
		name  string
		fault any
		want  string
	}{
		{"error value", errors.New("disk on fire"), "disk on fire"},
		{"string value", "index out of range", "index out of range"},
		{"other value", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &panicFilter{fault: tt.fault}
			got, reports, err := New(f, logging.NewNop()).Run([]string{"a", "b", "c"}, ParseOptions("vst"))

			var stageErr *StageError
			if !errors.As(err, &stageErr) {
				t.Fatalf("expected *StageError, got %v", err)
			}
			if stageErr.Stage != StageShortWords {
				t.Fatalf("stage = %q, want %q", stageErr.Stage, StageShortWords)
			}
			if err.Error() != tt.want {
				t.Fatalf("Error() = %q, want %q", err.Error(), tt.want)
			}
			if got != nil || reports != nil {
				t.Fatalf("expected partial results to be discarded, got %v %v", got, reports)
			}
			if want := []string{"v", "s"}; !reflect.DeepEqual(f.calls, want) {
				t.Fatalf("stage calls = %v, want %v", f.calls, want)
			}
		})
	}
}

func TestRunWithTextFilter(t *testing.T) {
	words := textutil.SanitizeText("This is a test!")
	p := New(textutil.NewFilter(), nil)

	tests := []struct {
		opts string
		want []string
	}{
		{"", []string{"This", "is", "a", "test"}},
		{"v", []string{}},
		{"s", []string{"This", "test"}},
		{"t", []string{"is", "a"}},
		{"st", []string{}},
		{"vst", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.opts, func(t *testing.T) {
			got, _, err := p.Run(words, ParseOptions(tt.opts))
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Run(%q) = %q, want %q", tt.opts, got, tt.want)
			}
		})
	}

	got, _, err := p.Run(textutil.SanitizeText("Sphynx cwms strengths dry, by glyph rhythm!"), ParseOptions("vst"))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := []string{"Sphynx", "cwms", "dry", "glyph"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Run() = %q, want %q", got, want)
	}
}
