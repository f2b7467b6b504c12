// Weather tool implementations.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
)

// PlaceCodeTool implements the get_place_code tool.
type PlaceCodeTool struct {
	ctx    ToolContext
	places *PlaceTable
}

func (t *PlaceCodeTool) Name() string {
	return "get_place_code"
}

func (t *PlaceCodeTool) Definition() openai.ChatCompletionToolParam {
	description := fmt.Sprintf(
		"Resolve a Japanese place name to its six-digit forecast area code. Supported places: %s. If the requested place is not supported, pick the nearest supported place and call again.",
		strings.Join(t.places.Names(), ", "),
	)
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "get_place_code",
			Description: openai.String(description),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"place": map[string]any{
						"type":        "string",
						"description": "Place name, e.g. 東京",
					},
				},
				"required": []string{"place"},
			},
		},
	}
}

func (t *PlaceCodeTool) Execute(argText string) (string, error) {
	var args struct {
		Place string `json:"place"`
	}
	if err := json.Unmarshal([]byte(argText), &args); err != nil {
		if t.ctx.Verbose {
			log.Printf("[verbose] get_place_code: failed to parse arguments: %v", err)
		}
		return marshalToolResponse("get_place_code", nil, err)
	}
	if args.Place == "" {
		return marshalToolResponse("get_place_code", nil, fmt.Errorf("place is required"))
	}

	code, err := t.places.ResolvePlaceCode(args.Place)
	if err != nil {
		// Domain error: hand it back to the model so it can retry with a
		// supported place.
		if t.ctx.Verbose {
			log.Printf("[verbose] get_place_code: %v", err)
		}
		return marshalToolResponse("get_place_code", nil, err)
	}

	if t.ctx.Verbose {
		log.Printf("[verbose] get_place_code: place=%s code=%06d", args.Place, code)
	}
	result := struct {
		Place string `json:"place"`
		Code  int    `json:"code"`
	}{
		Place: args.Place,
		Code:  code,
	}
	return marshalToolResponse("get_place_code", result, nil)
}

// ForecastTool implements the get_forecast tool.
type ForecastTool struct {
	ctx      ToolContext
	forecast *ForecastClient
}

func (t *ForecastTool) Name() string {
	return "get_forecast"
}

func (t *ForecastTool) Definition() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        "get_forecast",
			Description: openai.String("Fetch the raw JSON forecast document for a six-digit forecast area code obtained from get_place_code."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"code": map[string]any{
						"type":        "integer",
						"description": "Forecast area code, e.g. 130000",
					},
				},
				"required": []string{"code"},
			},
		},
	}
}

func (t *ForecastTool) Execute(argText string) (string, error) {
	var args struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal([]byte(argText), &args); err != nil {
		if t.ctx.Verbose {
			log.Printf("[verbose] get_forecast: failed to parse arguments: %v", err)
		}
		return marshalToolResponse("get_forecast", nil, err)
	}
	if args.Code <= 0 {
		return marshalToolResponse("get_forecast", nil, fmt.Errorf("code is required"))
	}

	document, err := t.forecast.FetchForecast(t.ctx.Ctx, args.Code)
	if err != nil {
		// Transport failure is fatal for the turn, never fed back to the model.
		if t.ctx.Verbose {
			log.Printf("[verbose] get_forecast: %v", err)
		}
		return "", err
	}

	if t.ctx.Verbose {
		log.Printf("[verbose] get_forecast: code=%06d document_bytes=%d", args.Code, len(document))
	}
	result := struct {
		Code     int    `json:"code"`
		Document string `json:"document"`
	}{
		Code:     args.Code,
		Document: document,
	}
	return marshalToolResponse("get_forecast", result, nil)
}
