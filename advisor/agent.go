package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
}

// NewAgent creates an Agent reading the user questions from r and writing
// the answers to w. The facilitator dispatches questions to the experts.
func NewAgent(w io.Writer, r io.Reader, model string, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: NewFacilitator(model, experts...),
	}
}

// Start creates the chats of all experts.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Prompts are asked
// first, as if the user typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the Biashara business assistant. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		input, more, err := a.next(&prompts)
		if err != nil {
			return err
		}
		if !more || strings.TrimSpace(input) == "bye" {
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}

// next returns the next pending prompt, or reads a line from the user.
// more is false at the end of the input.
func (a *Agent) next(prompts *[]string) (input string, more bool, err error) {
	if len(*prompts) > 0 {
		input, *prompts = strings.TrimSpace((*prompts)[0]), (*prompts)[1:]
		fmt.Fprintln(a.w, input)
		return input, true, nil
	}
	input, err = a.r.ReadString('\n')
	if err == io.EOF {
		// Ctrl+D, or the last line without newline
		return input, strings.TrimSpace(input) != "", nil
	}
	return input, err == nil, err
}
