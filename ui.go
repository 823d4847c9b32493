package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

type UI interface {
	// Prompt expects an answer from the user.
	Prompt(prompt string) (string, error)

	// Confirm asks the user a yes/no question.
	Confirm(prompt string) (bool, error)

	// PickFiles asks the user to choose a subset of candidate files.
	PickFiles(paths []string) ([]string, error)
}

func newUI(name string) (UI, error) {
	switch name {
	case "terminal":
		return NewTermUI(), nil
	case "fuzzy":
		return NewFuzzy(), nil
	default:
		return nil, fmt.Errorf("unknown UI %q", name)
	}
}

type TermUI struct{}

func NewTermUI() UI {
	return &TermUI{}
}

func (u *TermUI) Prompt(prompt string) (string, error) {
	var value string

	err := huh.NewInput().
		Title(prompt).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

func (u *TermUI) Confirm(prompt string) (bool, error) {
	var confirmed bool

	err := huh.NewConfirm().
		Title(prompt).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

func (u *TermUI) PickFiles(paths []string) ([]string, error) {
	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Files to stamp").
				Options(huh.NewOptions[string](paths...)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return selected, nil
}

type Fuzzy struct{}

func NewFuzzy() UI {
	return &Fuzzy{}
}

// Prompt expects an answer from the user.
func (u *Fuzzy) Prompt(prompt string) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s> ", prompt)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (u *Fuzzy) Confirm(prompt string) (bool, error) {
	answer, err := u.Prompt(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

func (u *Fuzzy) PickFiles(paths []string) ([]string, error) {
	idxs, err := fuzzyfinder.FindMulti(
		paths,
		func(i int) string {
			return paths[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			content, err := os.ReadFile(paths[i])
			if err != nil {
				return err.Error()
			}
			return string(content)
		}),
	)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		selected = append(selected, paths[idx])
	}
	return selected, nil
}
