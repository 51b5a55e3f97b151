// Command agent is an interactive GitHub repository analyzer: it runs an
// initial analysis of a repository, then answers free-text follow-up
// questions by calling GitHub read tools on the model's behalf.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/petasbytes/repo-agent/internal/config"
	"github.com/petasbytes/repo-agent/internal/ghclient"
	"github.com/petasbytes/repo-agent/internal/runner"
	"github.com/petasbytes/repo-agent/internal/windowing"
	"github.com/petasbytes/repo-agent/tools"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	gh := ghclient.New(ctx, cfg.GitHubToken)
	ac := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	r := runner.New(&ac.Messages, tools.Registry(gh), anthropic.Model(cfg.Model))
	r.MaxTokens = cfg.MaxTokens
	if cfg.TokenBudget > 0 {
		r.Policy = windowing.BudgetWindow{Budget: cfg.TokenBudget}
	}

	// stdin reader goroutine -> lines into channel, so reads can race ctx.
	scanner := bufio.NewScanner(os.Stdin)
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	readLine := func(prompt string) (string, bool) {
		fmt.Print(prompt)
		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-inputCh:
			if !ok {
				return "", false
			}
			return strings.TrimSpace(line), true
		}
	}

	banner("INTERACTIVE GITHUB REPOSITORY ANALYZER")

	repoURL, ok := readLine("\nEnter GitHub repository URL (e.g. https://github.com/tiangolo/fastapi): ")
	if !ok {
		return
	}
	if repoURL == "" {
		repoURL = cfg.DefaultRepoURL
		fmt.Printf("Using default repository: %s\n", repoURL)
	}
	if _, err := ghclient.ParseRepoURL(repoURL); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}

	conv, err := r.Analyze(ctx, repoURL)
	if err != nil {
		clog.FatalContextf(ctx, "initial analysis: %v", err)
	}

	banner("INITIAL REPOSITORY ANALYSIS")
	fmt.Println(runner.FinalText(conv))

	banner("INTERACTIVE FILE EXPLORER")
	fmt.Println(`
Ask about specific files from the repository. Examples:
  - Read README.md
  - Show me the pyproject.toml
  - What's in requirements.txt
  - Type 'exit' to quit`)

	explore(ctx, r, conv, readLine, os.Stdout)

	if err := scanner.Err(); err != nil {
		clog.WarnContextf(ctx, "stdin read error: %v", err)
	}
}

// explore runs the follow-up question loop until a case-insensitive "exit",
// EOF, or cancellation. It returns the final history.
func explore(ctx context.Context, r *runner.Runner, conv []anthropic.MessageParam, readLine func(string) (string, bool), out io.Writer) []anthropic.MessageParam {
	for {
		line, ok := readLine("You: ")
		if !ok {
			return conv
		}
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(out, "Thanks for exploring! Goodbye!")
			return conv
		}
		if line == "" {
			continue
		}

		conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(line)))
		next, err := r.RunTurn(ctx, conv)
		conv = next
		if err != nil {
			clog.ErrorContextf(ctx, "turn failed: %v", err)
			continue
		}
		fmt.Fprintf(out, "\nAssistant: %s\n\n", runner.FinalText(conv))
	}
}

func banner(title string) {
	line := strings.Repeat("=", 80)
	fmt.Printf("\n%s\n=== %s ===\n%s\n", line, title, line)
}
