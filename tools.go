// Tool interface and registry dispatch.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/openai/openai-go"
)

// Tool represents a tool that can be called by the model.
type Tool interface {
	// Definition returns the tool definition for OpenAI API.
	Definition() openai.ChatCompletionToolParam
	// Execute executes the tool with the given arguments.
	Execute(argText string) (string, error)
	// Name returns the tool name.
	Name() string
}

// ToolContext provides shared context for all tools.
type ToolContext struct {
	Verbose bool
	Ctx     context.Context
}

// Tools holds a collection of tools and provides execution.
type Tools struct {
	tools  map[string]Tool
	ctx    ToolContext
	params []openai.ChatCompletionToolParam
}

// toolResponse is the wrapper sent back to the model after tool execution.
type toolResponse struct {
	OK   bool        `json:"ok"`
	Tool string      `json:"tool,omitempty"`
	Data interface{} `json:"data,omitempty"`
	Err  string      `json:"error,omitempty"`
}

// NewTools creates a Tools collection with the weather tools registered.
func NewTools(ctx ToolContext, places *PlaceTable, forecast *ForecastClient) *Tools {
	t := &Tools{
		tools: make(map[string]Tool),
		ctx:   ctx,
	}

	t.Register(&PlaceCodeTool{ctx: ctx, places: places})
	t.Register(&ForecastTool{ctx: ctx, forecast: forecast})

	return t
}

// Register adds a tool to the collection.
func (t *Tools) Register(tool Tool) {
	t.tools[tool.Name()] = tool
	t.params = append(t.params, tool.Definition())
}

// Definitions returns all tool definitions for OpenAI API.
func (t *Tools) Definitions() []openai.ChatCompletionToolParam {
	return t.params
}

// Execute executes a tool call by name. A name absent from the registry is a
// protocol error and fails the call outright instead of being wrapped in an
// error envelope for the model.
func (t *Tools) Execute(call openai.ChatCompletionMessageToolCall) (string, error) {
	if t.ctx.Ctx != nil {
		select {
		case <-t.ctx.Ctx.Done():
			return "", t.ctx.Ctx.Err()
		default:
		}
	}

	tool, ok := t.tools[call.Function.Name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", call.Function.Name)
	}

	if t.ctx.Verbose {
		log.Printf("[verbose] Executing tool: %s", call.Function.Name)
	}

	return tool.Execute(call.Function.Arguments)
}

// marshalToolResponse encodes a tool response as JSON.
func marshalToolResponse(tool string, data interface{}, err error) (string, error) {
	resp := toolResponse{
		OK:   err == nil,
		Tool: tool,
		Data: data,
	}
	if err != nil {
		resp.Err = err.Error()
	}
	payload, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		return "", marshalErr
	}
	return string(payload), nil
}
