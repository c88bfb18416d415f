package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) line(question string) (string, error) {
	fmt.Fprintln(p.out, question)

	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(s), nil
}

// fill asks for every value the flags and settings left unset.
func (p *prompter) fill(cfg *cliConfig) error {
	var err error

	if cfg.InPath == "" {
		if cfg.InPath, err = p.line("Please enter the input file name (path included):"); err != nil {
			return err
		}
	}
	if cfg.OutPath == "" {
		if cfg.OutPath, err = p.line("Please enter the output file name (path included):"); err != nil {
			return err
		}
	}
	if cfg.Words == 0 {
		answer, err := p.line("How many words would you like to see in your tag cloud?")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			return apperr.NewValidationWrap("invalid word count", err)
		}
		cfg.Words = n
	}

	if cfg.InPath == "" {
		return apperr.NewValidation("input file name is required")
	}
	if cfg.OutPath == "" {
		return apperr.NewValidation("output file name is required")
	}
	return nil
}
