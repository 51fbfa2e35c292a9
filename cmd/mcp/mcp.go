/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for tailsweep.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/wongjn/tailsweep/cmd/workspace"
	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/internal/version"
	migratelib "github.com/wongjn/tailsweep/migrate"
)

// Cmd is the mcp cobra command. It serves the migration engine over
// the Model Context Protocol on stdio so editor agents can call it.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve class migration over the Model Context Protocol",
	Long: `Run an MCP stdio server exposing two tools: migrate_classes rewrites
class tokens to named equivalents, and compile_class prints a class's
computed declarations.`,
	Args: cobra.NoArgs,
	RunE: run,
}

type migrateClassesInput struct {
	Classes []string `json:"classes" jsonschema:"the class tokens to rewrite"`
}

type compileClassInput struct {
	Class string `json:"class" jsonschema:"the class token to compile"`
}

// server owns the tool implementations.
type server struct {
	sys *design.System
	mig *migratelib.Migrator
}

func newServer(sys *design.System) *server {
	return &server{sys: sys, mig: migratelib.New(sys, migratelib.Options{})}
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Load(cmd)
	if err != nil {
		return err
	}

	srv := newServer(ws.System)

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "tailsweep",
			Title:   "Tailsweep",
			Version: version.Get(),
		},
		nil,
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "migrate_classes",
		Description: "Rewrite utility class tokens to named theme equivalents when the computed styles are byte-identical. Returns the rewritten list in input order; classes without an equivalent come back unchanged.",
	}, srv.migrateClasses)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "compile_class",
		Description: "Compute the CSS declarations the design system assigns to a utility class.",
	}, srv.compileClass)

	return mcpServer.Run(cmd.Context(), &mcp.StdioTransport{})
}

func (s *server) migrateClasses(ctx context.Context, req *mcp.CallToolRequest, input migrateClassesInput) (*mcp.CallToolResult, any, error) {
	rewritten := make([]string, len(input.Classes))
	for i, class := range input.Classes {
		rewritten[i] = s.mig.Migrate(class)
	}

	data, err := json.Marshal(rewritten)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func (s *server) compileClass(ctx context.Context, req *mcp.CallToolRequest, input compileClassInput) (*mcp.CallToolResult, any, error) {
	css, err := s.sys.ComputedDeclarations([]string{input.Class})
	if err != nil {
		return nil, nil, fmt.Errorf("compiling %s: %w", input.Class, err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: css}},
	}, nil, nil
}
