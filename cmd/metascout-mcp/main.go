// metascout-mcp exposes the metascout HTTP API as an MCP tool server over
// stdio, so agent runtimes can pull product metadata without speaking HTTP
// themselves. It is a thin client: all extraction happens in the API service.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// extractRequest mirrors the metascout API request model.
type extractRequest struct {
	URL     string `json:"url"`
	Timeout int    `json:"timeout,omitempty"`
}

// extractResponse mirrors the metascout API response model.
type extractResponse struct {
	Success  bool `json:"success"`
	Metadata *struct {
		Title       string   `json:"title"`
		Price       *float64 `json:"price"`
		Domain      string   `json:"domain"`
		ImageURL    string   `json:"image_url"`
		OriginalURL string   `json:"original_url"`
		Description string   `json:"description"`
		Source      string   `json:"source"`
	} `json:"metadata"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("METASCOUT_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("METASCOUT_API_KEY")

	s := server.NewMCPServer(
		"metascout",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	extractTool := mcp.NewTool("extract_product",
		mcp.WithDescription("Extract product metadata (title, price, image, description) from an e-commerce product URL. Best effort: fields that cannot be extracted are omitted."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The product page URL"),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Seconds to wait before accepting a partial record (default 5, max 90)"),
		),
	)

	s.AddTool(extractTool, handleExtractProduct(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleExtractProduct(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 120 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		reqBody := extractRequest{
			URL:     url,
			Timeout: request.GetInt("timeout", 0),
		}

		body, err := json.Marshal(reqBody)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/extract", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if apiKey != "" {
			httpReq.Header.Set("X-API-Key", apiKey)
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var extResp extractResponse
		if err := json.Unmarshal(respBody, &extResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !extResp.Success {
			errMsg := "extraction failed"
			if extResp.Error != nil {
				errMsg = fmt.Sprintf("[%s] %s", extResp.Error.Code, extResp.Error.Message)
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		m := extResp.Metadata
		if m == nil {
			return mcp.NewToolResultError("API returned no metadata"), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Domain: %s\n", m.Domain)
		if m.Title != "" {
			fmt.Fprintf(&sb, "Title: %s\n", m.Title)
		}
		if m.Price != nil {
			fmt.Fprintf(&sb, "Price: %.2f\n", *m.Price)
		}
		if m.ImageURL != "" {
			fmt.Fprintf(&sb, "Image: %s\n", m.ImageURL)
		}
		if m.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", m.Description)
		}
		if m.Source != "" {
			fmt.Fprintf(&sb, "Source: %s\n", m.Source)
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
