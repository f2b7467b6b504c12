// Interactive terminal mode for user interaction.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/openai/openai-go"
)

// runREPL runs the interactive chat session. A completion or tool failure
// ends the session with an error; there is no per-turn recovery.
func runREPL(app *App) error {
	if app.Config.Verbose {
		log.Printf("[verbose] interactive mode start: model=%s stream=%v max_turns=%d", app.Config.OpenAIModel, app.Config.Stream, app.Config.MaxTurns)
	}
	// Initialize conversation history with system message
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(app.SystemPrompt),
	}

	scanner := bufio.NewScanner(os.Stdin)

	printWelcome(app.Places)

	for {
		fmt.Print("User > ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" || input == "exit" {
			break
		}

		// Handle commands
		if strings.HasPrefix(input, "/") {
			if handleCommand(input, &messages, app.SystemPrompt) {
				continue
			}
			break
		}

		// Add user message to history
		messages = append(messages, openai.UserMessage(input))

		if app.Config.Stream {
			fmt.Print("Assistant > ")
		}
		updatedMessages, result, err := runChatTurn(
			app.Ctx,
			app.Client,
			app.Config.OpenAIModel,
			messages,
			app.Tools,
			app.Config.MaxTurns,
			app.Config.Stream,
			app.Config.Verbose,
		)
		if err != nil {
			return err
		}

		messages = updatedMessages
		if !result.Streamed {
			if app.Config.Stream {
				fmt.Println(result.Content)
			} else {
				fmt.Printf("Assistant > %s\n", result.Content)
			}
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// printWelcome prints the welcome message.
func printWelcome(places *PlaceTable) {
	fmt.Println("=== Weather Chat ===")
	fmt.Printf("Ask about the weather in: %s\n", strings.Join(places.Names(), ", "))
	fmt.Println("Press Enter on an empty line or type 'exit' to quit. /help for commands.")
	fmt.Println()
}

// handleCommand processes interactive commands.
// Returns true if the command was handled and the loop should continue,
// false if the session should end.
func handleCommand(input string, messages *[]openai.ChatCompletionMessageParamUnion, systemPrompt string) bool {
	cmd := strings.ToLower(input)
	switch cmd {
	case "/help", "/h":
		printHelp()
		return true
	case "/clear", "/c":
		*messages = []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
		}
		fmt.Println("Conversation history cleared.")
		fmt.Println()
		return true
	case "/quit", "/exit", "/q":
		fmt.Println("Goodbye!")
		return false
	default:
		fmt.Printf("Unknown command: %s. Type /help for available commands.\n", input)
		fmt.Println()
		return true
	}
}

// printHelp prints the help message.
func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  /help  - Show this help message")
	fmt.Println("  /clear - Clear conversation history")
	fmt.Println("  /quit  - Exit the program")
	fmt.Println("  /exit  - Exit the program")
	fmt.Println()
}
