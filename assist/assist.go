// Package assist is the conversational layer over the tracker: a REPL
// backed by a Gemini chat that answers questions about the user's money by
// calling into the report functions.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent handles the chat session between the user and the advisor.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert
}

// New creates an Agent around the advisor expert. Output goes to w
// (typically os.Stdout), user input comes from r (typically os.Stdin).
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Advisor: advisor}
}

// Start opens the underlying chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	return a.Advisor.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session. Prompts given up front are
// consumed before reading from the user, which makes one-shot questions
// scriptable.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Advisor.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to mbk assist. Type 'bye' to exit.")

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

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
