package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Advisor runs the interactive assist session.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	expert *Expert
}

// New creates an Advisor around one expert, reading user input from r and
// writing responses to w.
func New(w io.Writer, r io.Reader, expert *Expert) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r), expert: expert}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.expert.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to fo assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
