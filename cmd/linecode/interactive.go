package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"Linecode/cmd/linecode/config"
	"Linecode/pkg/linecode"
	"Linecode/pkg/pipeline"
	"Linecode/pkg/scramble"
)

var errQuit = errors.New("quit")

const inputTypeMenu = "Select input type (q to quit):\n1. Digital Input (Provide a binary string)\n2. Analog Input (PCM/DM) [Not Implemented]"

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	answer := strings.TrimSpace(p.in.Text())
	if strings.EqualFold(answer, "q") {
		return "", errQuit
	}
	return answer, nil
}

// choose repeats the question until parse accepts the answer.
func choose[T any](p *prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid choice: %v\n", err)
	}
}

func schemeMenu() string {
	var sb strings.Builder
	sb.WriteString("Select Line Encoding Scheme:\n")
	for i, s := range linecode.Schemes() {
		fmt.Fprintf(&sb, "%d. %v\n", i+1, s)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// runInteractive prompts for one request at a time until the input ends or
// the user types q.
func runInteractive(r io.Reader, w io.Writer, cfg *config.Config) error {
	p := &prompter{in: bufio.NewScanner(r), out: w}
	printer := config.CreatePrinter(cfg)

	fmt.Fprintln(w, "--- Digital Line Encoding Simulator ---")
	for {
		req, err := readRequest(p)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		res, err := pipeline.Run(req)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, "\n--- Results ---")
		if err := printer.Print(w, res); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
}

func parseInputType(answer string) (analog bool, err error) {
	switch strings.ToLower(answer) {
	case "1", "digital":
		return false, nil
	case "2", "analog":
		return true, nil
	}
	return false, fmt.Errorf("%q is not 1 or 2", answer)
}

func readRequest(p *prompter) (pipeline.Request, error) {
	var req pipeline.Request

	analog, err := choose(p, inputTypeMenu, parseInputType)
	if err != nil {
		return req, err
	}
	if analog {
		req.Analog = true
		return req, nil
	}

	bits, err := p.ask("Enter your digital data stream (e.g., 010011000000001):")
	if err != nil {
		return req, err
	}
	req.Bits = bits

	req.Scheme, err = choose(p, schemeMenu(), linecode.ParseScheme)
	if err != nil {
		return req, err
	}
	if req.Scheme != linecode.AMI {
		return req, nil
	}

	req.Scramble, err = choose(p, "Select Scrambling Type:\n0. None\n1. B8ZS\n2. HDB3", scramble.ParseKind)
	return req, err
}
