// Package mcp exposes an assembled walkthrough over the Model Context
// Protocol, so AI agents can read the guide structurally instead of
// scraping rendered output.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/waymark/pkg/walkthrough"
)

// TaskSummary is the list view of one task.
type TaskSummary struct {
	Index     int    `json:"index" jsonschema_description:"Zero-based task index"`
	Title     string `json:"title" jsonschema_description:"Numbered task title"`
	Time      int    `json:"time" jsonschema_description:"Declared duration in minutes"`
	Blocks    int    `json:"blocks" jsonschema_description:"Number of content blocks"`
	Resources int    `json:"resources" jsonschema_description:"Number of attached resources"`
}

// TaskListResponse is the structured output of the list_tasks tool.
type TaskListResponse struct {
	Title string        `json:"title" jsonschema_description:"Walkthrough title"`
	Time  int           `json:"time" jsonschema_description:"Total duration in minutes"`
	Tasks []TaskSummary `json:"tasks" jsonschema_description:"Tasks in document order"`
}

// Server wraps an assembled walkthrough and exposes it as an MCP Server.
type Server struct {
	wt        *walkthrough.Walkthrough
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance for one walkthrough.
func NewServer(wt *walkthrough.Walkthrough, version string) *Server {
	s := &Server{
		wt:        wt,
		mcpServer: server.NewMCPServer("waymark-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: get_walkthrough
	s.mcpServer.AddTool(mcp.NewTool("get_walkthrough",
		mcp.WithDescription("Get the fully assembled walkthrough graph: preamble, tasks, steps, checkpoints, and resources."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.wt)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: list_tasks
	listTool := mcp.NewTool("list_tasks",
		mcp.WithDescription("List the walkthrough's tasks with their durations and sizes."),
		mcp.WithOutputSchema[TaskListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListTasks))

	// TOOL: get_task
	taskTool := mcp.NewTool("get_task",
		mcp.WithDescription("Get one task by its zero-based index, including steps, checkpoints, and resources."),
		mcp.WithString("index", mcp.Required(), mcp.Description("Zero-based task index")),
		mcp.WithOutputSchema[walkthrough.Task](),
	)
	s.mcpServer.AddTool(taskTool, mcp.NewStructuredToolHandler(s.handleGetTask))
}

func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TaskListResponse, error) {
	resp := TaskListResponse{
		Title: s.wt.Title,
		Time:  s.wt.Time,
		Tasks: make([]TaskSummary, len(s.wt.Tasks)),
	}
	for i, task := range s.wt.Tasks {
		resp.Tasks[i] = TaskSummary{
			Index:     i,
			Title:     task.Title,
			Time:      task.Time,
			Blocks:    len(task.Content),
			Resources: len(task.Resources),
		}
	}
	return resp, nil
}

func (s *Server) handleGetTask(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (walkthrough.Task, error) {
	raw, _ := args["index"].(string)
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 || index >= len(s.wt.Tasks) {
		return walkthrough.Task{}, fmt.Errorf("no task at index %q", raw)
	}
	return s.wt.Tasks[index], nil
}

func (s *Server) registerResources() {
	// EXPOSE: waymark://walkthrough
	s.mcpServer.AddResource(mcp.NewResource("waymark://walkthrough", "Assembled Walkthrough",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.wt)
		if err != nil {
			return nil, fmt.Errorf("failed to encode walkthrough: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "waymark://walkthrough",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
