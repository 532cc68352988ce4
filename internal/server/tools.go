package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its metadata: dimensions, format, color depth, alpha channel presence, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read the file from disk even if it is cached. Use after the file changed.",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Edge Pipeline
		{
			Name:        "edge_grayscale",
			Description: "Return the luminance-weighted grayscale version of an image as base64-encoded PNG. This is the first stage of the edge detection pipeline.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image (e.g., 0.5 to halve size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_gradient",
			Description: "Return a single directional Sobel gradient map as base64-encoded PNG. The horizontal gradient responds to vertical edges; the vertical gradient responds to horizontal edges.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Gradient direction to compute",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "direction"},
			},
		},
		{
			Name:        "edge_detect",
			Description: "Run the full Sobel pipeline and return the edge magnitude image as base64-encoded PNG. Bright pixels mark strong intensity transitions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_side_by_side",
			Description: "Run the full Sobel pipeline and return the original image and its edge map composited side by side, as base64-encoded PNG. Useful for judging detection quality at a glance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Edge Analysis
		{
			Name:        "edge_stats",
			Description: "Run the full Sobel pipeline and return summary statistics about the edge map: pixels at or above a magnitude threshold, edge ratio, and mean/max magnitude.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Minimum magnitude for a pixel to count as an edge. Default 30",
						"default":     30.0,
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_heatmap",
			Description: "Render the edge map as a false-color heatmap (blue for weak response through red for strong) as base64-encoded PNG. Easier to read than raw magnitudes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_orientation",
			Description: "Render edge directions as hue and edge strength as brightness, as base64-encoded PNG. Shows which way each detected edge runs.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian smoothing radius applied before the pipeline. 0 disables smoothing.",
						"default":     0.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
