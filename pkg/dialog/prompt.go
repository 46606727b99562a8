// Package dialog asks the user questions on the terminal.
package dialog

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// Terminal implements app.Dialog with promptui.
type Terminal struct {
	// Yes answers every confirmation without asking.
	Yes bool

	Stdin  io.Reader
	Stdout io.Writer
}

func (d *Terminal) stdin() io.ReadCloser {
	if d.Stdin == nil {
		return os.Stdin
	}
	return io.NopCloser(d.Stdin)
}

func (d *Terminal) stdout() io.WriteCloser {
	if d.Stdout == nil {
		return os.Stdout
	}
	return nopWriteCloser{d.Stdout}
}

// aborted reports whether err means the user backed out.
func aborted(err error) bool {
	return errors.Is(err, promptui.ErrAbort) ||
		errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrEOF)
}

func (d *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if d.Yes {
		return true, nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . | bold }} ",
		Valid:   "{{ . | bold }} ",
		Invalid: "{{ . | red }} ",
		Success: "{{ . | faint }} ",
	}
	prompt := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
		Templates: templates,
		Stdin:     d.stdin(),
		Stdout:    d.stdout(),
	}

	result, err := prompt.Run()
	if aborted(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	ok, _ := ParseBool(strings.TrimSpace(result))
	return ok, nil
}

func (d *Terminal) Prompt(ctx context.Context, label, initial string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	prompt := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: initial != "",
		Templates: templates,
		Stdin:     d.stdin(),
		Stdout:    d.stdout(),
	}

	result, err := prompt.Run()
	if aborted(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return result, true, nil
}

// Choice is one entry offered by Select.
type Choice struct {
	Name   string
	Detail string
}

// Select asks the user to pick one of choices and returns its index.
func (d *Terminal) Select(ctx context.Context, label string, choices []Choice) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return -1, false, err
	}
	if len(choices) == 0 {
		return -1, false, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Detail | green }}",
		Inactive: "   {{ .Name }} {{ .Detail | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(choices[index].Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     d.stdin(),
		Stdout:    d.stdout(),
	}

	i, _, err := prompt.Run()
	if aborted(err) {
		return -1, false, nil
	}
	if err != nil {
		return -1, false, err
	}
	return i, true, nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
