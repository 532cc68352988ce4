// Package server implements the MCP (Model Context Protocol) server for edge detection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the Sobel edge
// detection pipeline through the MCP protocol. It's designed to work with
// MCP-compatible clients, letting them inspect images and their structural
// edges without shelling out to external tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 9 tools organized into categories:
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Edge Pipeline:
//   - edge_grayscale: Luminance-weighted grayscale rendering
//   - edge_gradient: Single directional gradient map
//   - edge_detect: Full pipeline, edge magnitude image
//   - edge_side_by_side: Original and edge map composited
//
// Edge Analysis:
//   - edge_stats: Summary statistics over the edge map
//   - edge_heatmap: False-color rendering of edge strength
//   - edge_orientation: Edge direction rendering
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process; image_load with
// reload=true re-reads a file that changed on disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal().Err(err).Msg("server exited")
//	}
package server
