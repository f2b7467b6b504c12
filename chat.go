// Chat completion and message handling.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/openai/openai-go"
)

// ChatTurnResult represents the result of one conversation turn.
type ChatTurnResult struct {
	Content  string
	Streamed bool
}

// runChatOnce sends a single request and optionally streams deltas to stdout.
func runChatOnce(ctx context.Context, client openai.Client, params openai.ChatCompletionNewParams, stream bool, verbose bool) (openai.ChatCompletionMessage, bool, error) {
	if !stream {
		if verbose {
			log.Printf("[verbose] Sending non-streaming chat completion request")
		}
		completion, err := client.Chat.Completions.New(ctx, params)
		if err != nil {
			return openai.ChatCompletionMessage{}, false, err
		}
		if len(completion.Choices) == 0 {
			return openai.ChatCompletionMessage{}, false, errors.New("empty completion choices")
		}
		if verbose {
			log.Printf("[verbose] Chat completion received: %d choice(s), finish_reason=%s", len(completion.Choices), completion.Choices[0].FinishReason)
		}
		return completion.Choices[0].Message, false, nil
	}

	if verbose {
		log.Printf("[verbose] Sending streaming chat completion request")
	}
	streamResp := client.Chat.Completions.NewStreaming(ctx, params)
	defer streamResp.Close()

	acc := openai.ChatCompletionAccumulator{}
	streamed := false
	for streamResp.Next() {
		chunk := streamResp.Current()
		if !acc.AddChunk(chunk) {
			return openai.ChatCompletionMessage{}, streamed, errors.New("failed to accumulate stream")
		}
		if len(chunk.Choices) > 0 {
			delta := chunk.Choices[0].Delta
			if delta.Content != "" {
				_, _ = io.WriteString(os.Stdout, delta.Content)
				streamed = true
			}
		}
	}
	if err := streamResp.Err(); err != nil {
		return openai.ChatCompletionMessage{}, streamed, err
	}
	if len(acc.Choices) == 0 {
		return openai.ChatCompletionMessage{}, streamed, errors.New("empty streamed completion choices")
	}
	if verbose {
		log.Printf("[verbose] Streaming completed: finish_reason=%s", acc.Choices[0].FinishReason)
	}
	return acc.Choices[0].Message, streamed, nil
}

// runChatTurn drives one conversation turn to a final reply, resolving any
// tool calls the model requests along the way. Returns the updated message
// history and the final assistant content. Tool round trips never surface to
// the caller; a completion failure or a tool transport failure aborts the
// turn with the original messages.
func runChatTurn(ctx context.Context, client openai.Client, model openai.ChatModel, messages []openai.ChatCompletionMessageParamUnion, tools *Tools, maxTurns int, stream bool, verbose bool) ([]openai.ChatCompletionMessageParamUnion, ChatTurnResult, error) {
	if maxTurns <= 0 {
		maxTurns = 1
	}

	var lastContent string
	streamedAny := false
	currentMessages := messages

	for turn := 0; turn < maxTurns; turn++ {
		if verbose {
			log.Printf("[verbose] Turn %d/%d: sending request with %d messages", turn+1, maxTurns, len(currentMessages))
		}

		message, streamed, err := runChatOnce(ctx, client, openai.ChatCompletionNewParams{
			Model:    model,
			Messages: currentMessages,
			Tools:    tools.Definitions(),
		}, stream, verbose)
		if err != nil {
			return messages, ChatTurnResult{}, fmt.Errorf("chat completion: %w", err)
		}
		if streamed {
			streamedAny = true
		}
		if strings.TrimSpace(message.Content) != "" {
			lastContent = message.Content
		}

		if len(message.ToolCalls) == 0 {
			if lastContent == "" {
				lastContent = message.Content
			}
			if stream && streamed && !strings.HasSuffix(message.Content, "\n") {
				fmt.Fprintln(os.Stdout)
			}
			updatedMessages := append(currentMessages, message.ToParam())
			return updatedMessages, ChatTurnResult{Content: lastContent, Streamed: streamedAny}, nil
		}

		if verbose {
			log.Printf("[verbose] Turn %d: received %d tool call(s)", turn+1, len(message.ToolCalls))
		}

		currentMessages = append(currentMessages, message.ToParam())
		for i, call := range message.ToolCalls {
			if verbose {
				log.Printf("[verbose] Turn %d: tool call %d/%d: %s(%s)", turn+1, i+1, len(message.ToolCalls), call.Function.Name, call.Function.Arguments)
			}

			output, err := tools.Execute(call)
			if err != nil {
				// Unknown tool names and transport failures abort the turn.
				return messages, ChatTurnResult{}, fmt.Errorf("tool %s: %w", call.Function.Name, err)
			}
			if verbose {
				preview := output
				if len(preview) > 200 {
					preview = preview[:200] + "..."
				}
				log.Printf("[verbose] Turn %d: tool call %d output: %s", turn+1, i+1, preview)
			}
			currentMessages = append(currentMessages, openai.ToolMessage(output, call.ID))
		}
	}

	if lastContent == "" {
		return messages, ChatTurnResult{}, errors.New("max turns reached without assistant content")
	}
	return currentMessages, ChatTurnResult{Content: lastContent, Streamed: streamedAny}, nil
}
