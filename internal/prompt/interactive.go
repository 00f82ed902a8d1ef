package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Norgate-AV/scb/internal/answers"
	"github.com/Norgate-AV/scb/internal/config"
)

// Interactive asks every question on a terminal and asks again until the
// answer is valid. Accessible mode replaces the terminal UI with plain
// line based questions.
type Interactive struct {
	in         io.Reader
	lines      *lineReader
	out        io.Writer
	accessible bool
}

// NewInteractive creates a prompter reading answers from in and writing questions to out
func NewInteractive(in io.Reader, out io.Writer, accessible bool) *Interactive {
	return &Interactive{
		in:         in,
		lines:      &lineReader{r: bufio.NewReader(in)},
		out:        out,
		accessible: accessible,
	}
}

// WaitForSDK repeats the download request until the SDK shows up
func (p *Interactive) WaitForSDK(available func() (bool, error)) error {
	ok, err := available()
	if err != nil || ok {
		return err
	}

	var checkErr error
	var answer string

	field := huh.NewInput().
		Title(sdkMissingMessage).
		Description(sdkWaitDescription).
		Value(&answer).
		Validate(func(string) error {
			ok, err := available()
			if err != nil {
				checkErr = err
				return nil
			}

			if !ok {
				return errSDKStillMissing
			}

			return nil
		})

	if err := p.run(field); err != nil {
		return err
	}

	return checkErr
}

// Collect asks for every answer. Preset values are offered as defaults, a
// preset override skips the confirmation.
func (p *Interactive) Collect(preset config.Answers, defaultBranch string, configExists bool) (answers.AnswerSet, error) {
	var a answers.AnswerSet
	var err error

	a.AppID, err = askParsed(p, appIDMessage, preset.AppID, answers.ParseAppID)
	if err != nil {
		return a, err
	}

	a.Description, err = askParsed(p, descriptionMessage, preset.Description, func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
	if err != nil {
		return a, err
	}

	branchDefault := defaultBranch
	if b := strings.TrimSpace(preset.Branch); b != "" {
		branchDefault = b
	}

	a.Branch, err = askParsed(p, branchMessage, branchDefault, func(s string) (string, error) {
		return answers.ParseBranch(s, "")
	})
	if err != nil {
		return a, err
	}

	presetDepots := depotsOf(preset)

	for _, platform := range answers.Platforms {
		message := fmt.Sprintf(depotMessagePattern, platform, platform)

		id, err := askParsed(p, message, presetDepots[platform], func(s string) (uint64, error) {
			id, err := answers.ParseDepotID(platform, s)
			if err != nil {
				return 0, err
			}

			return id, a.Depots.Conflict(platform, id)
		})
		if err != nil {
			return a, err
		}

		a.Depots.Set(platform, id)
	}

	if configExists {
		override := true
		if !preset.Override {
			field := huh.NewConfirm().
				Title(overrideMessage).
				Affirmative("Yes").
				Negative("No").
				Value(&override)

			if err := p.run(field); err != nil {
				return a, err
			}
		}

		a.Override = &override
	}

	return a, nil
}

// askParsed asks until parse accepts the answer. def is filled in as the
// answer when nothing is typed.
func askParsed[T any](p *Interactive, message, def string, parse func(string) (T, error)) (T, error) {
	var zero T

	def = strings.TrimSpace(def)
	orDefault := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}

	input := def
	field := huh.NewInput().
		Title(message).
		Value(&input).
		Validate(func(s string) error {
			_, err := parse(orDefault(s))
			return reason(err)
		})

	if err := p.run(field); err != nil {
		return zero, err
	}

	value, err := parse(orDefault(input))
	if err != nil {
		if p.accessible && p.lines.eof {
			return zero, ErrInputClosed
		}

		return zero, err
	}

	return value, nil
}

// run shows a single question. In accessible mode every question consumes
// at least one line, a question that got none means input ended.
func (p *Interactive) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithOutput(p.out).
		WithAccessible(p.accessible).
		WithShowHelp(false)

	if !p.accessible {
		if err := form.WithInput(p.in).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrInputClosed
			}

			return fmt.Errorf("failed to read answer: %w", err)
		}

		return nil
	}

	before := p.lines.count
	if err := form.WithInput(p.lines).Run(); err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	if p.lines.count == before {
		fmt.Fprintln(p.out)
		return ErrInputClosed
	}

	return nil
}

// reason turns a validation error into the message shown next to the question
func reason(err error) error {
	var verr *answers.ValidationError
	if errors.As(err, &verr) {
		return errors.New(verr.Reason)
	}

	return err
}

// lineReader hands out at most one line per Read, so a question never reads
// ahead into the answer of the next one
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	count   int
	eof     bool
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}

			return 0, err
		}

		l.pending = line
		l.count++
	}

	n := copy(b, l.pending)
	l.pending = l.pending[n:]

	return n, nil
}
