package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/edgetools/sobel-mcp/internal/codec"
	"github.com/edgetools/sobel-mcp/internal/pixel"
	"github.com/edgetools/sobel-mcp/internal/sobel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Error().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug().Str("tool", params.Name).Dur("elapsed", time.Since(start)).Msg("tool call complete")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate codec/sobel function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Edge Pipeline
	case "edge_grayscale":
		return s.handleEdgeGrayscale(args)
	case "edge_gradient":
		return s.handleEdgeGradient(args)
	case "edge_detect":
		return s.handleEdgeDetect(args)
	case "edge_side_by_side":
		return s.handleEdgeSideBySide(args)

	// Edge Analysis
	case "edge_stats":
		return s.handleEdgeStats(args)
	case "edge_heatmap":
		return s.handleEdgeHeatmap(args)
	case "edge_orientation":
		return s.handleEdgeOrientation(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path   string `json:"path"`
	Reload bool   `json:"reload"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Reload {
		s.cache.Evict(a.Path)
	}
	return codec.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return codec.LoadDimensions(s.cache, a.Path)
}

// === Edge Pipeline Handlers ===

// loadSource loads an image through the cache, applies optional Gaussian
// smoothing, and converts it into a pixel buffer for the pipeline.
func (s *Server) loadSource(path string, blurRadius float64) (*pixel.Buffer, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return codec.FromImage(codec.Smooth(img, blurRadius))
}

// runPipeline executes the full edge pipeline for a tool call.
func (s *Server) runPipeline(path string, blurRadius float64) (*sobel.Result, error) {
	buf, err := s.loadSource(path, blurRadius)
	if err != nil {
		return nil, err
	}
	return s.pipeline.Run(buf)
}

type edgeGrayscaleArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleEdgeGrayscale(args json.RawMessage) (interface{}, error) {
	var a edgeGrayscaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return codec.EncodeResult(sobel.Grayscale(buf), a.Scale)
}

type edgeGradientArgs struct {
	Path       string  `json:"path"`
	Direction  string  `json:"direction"`
	BlurRadius float64 `json:"blur_radius"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleEdgeGradient(args json.RawMessage) (interface{}, error) {
	var a edgeGradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	var kernel sobel.Kernel
	switch a.Direction {
	case "horizontal":
		kernel = sobel.Horizontal
	case "vertical":
		kernel = sobel.Vertical
	default:
		return nil, fmt.Errorf("unknown direction: %q", a.Direction)
	}

	buf, err := s.loadSource(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	gray := sobel.Grayscale(buf)
	return codec.EncodeResult(sobel.Gradient(gray, kernel), a.Scale)
}

type edgePipelineArgs struct {
	Path       string  `json:"path"`
	BlurRadius float64 `json:"blur_radius"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgePipelineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	res, err := s.runPipeline(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return codec.EncodeResult(res.Edges, a.Scale)
}

func (s *Server) handleEdgeSideBySide(args json.RawMessage) (interface{}, error) {
	var a edgePipelineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	res, err := s.runPipeline(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return codec.EncodeResult(res.SideBySide, a.Scale)
}

// === Edge Analysis Handlers ===

type edgeStatsArgs struct {
	Path       string  `json:"path"`
	Threshold  float64 `json:"threshold"`
	BlurRadius float64 `json:"blur_radius"`
}

func (s *Server) handleEdgeStats(args json.RawMessage) (interface{}, error) {
	var a edgeStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold == 0 {
		a.Threshold = 30
	}
	res, err := s.runPipeline(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return sobel.Stats(res.Edges, a.Threshold), nil
}

func (s *Server) handleEdgeHeatmap(args json.RawMessage) (interface{}, error) {
	var a edgePipelineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	res, err := s.runPipeline(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return codec.EncodeResult(sobel.Heatmap(res.Edges), a.Scale)
}

func (s *Server) handleEdgeOrientation(args json.RawMessage) (interface{}, error) {
	var a edgePipelineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	res, err := s.runPipeline(a.Path, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	om, err := sobel.Orientation(res.Horizontal, res.Vertical)
	if err != nil {
		return nil, err
	}
	return codec.EncodeResult(om, a.Scale)
}
