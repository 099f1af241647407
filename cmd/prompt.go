package cmd

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// confirm asks a y/N question. Ctrl-C and any non-yes answer count as no.
func confirm(label string) bool {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := p.Run()
	return err == nil
}

// askLabel prompts for a profile label until it passes validate.
func askLabel(label string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}

	v, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", errors.New("aborted")
	}
	return v, err
}
