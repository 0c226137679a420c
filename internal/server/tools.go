package server

import (
	"strings"

	"github.com/ironsheep/imgproc/internal/codec"
	"github.com/ironsheep/imgproc/internal/command"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func keyProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	formats := strings.Join(codec.Extensions(), ", ")

	return []Tool{
		// Store Operations
		{
			Name:        "image_load",
			Description: "Load an image file into the session under a key. Supported extensions: " + formats + ".",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file",
					},
					"key": keyProperty("Key to store the image under"),
				},
				"required": []string{"path", "key"},
			},
		},
		{
			Name:        "image_save",
			Description: "Write the image stored under a key to a file. The format follows the file extension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination file path",
					},
					"key": keyProperty("Key of the image to save"),
				},
				"required": []string{"path", "key"},
			},
		},
		{
			Name:        "image_remove",
			Description: "Remove an image from the session. Removing an absent key does nothing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key to remove"),
				},
				"required": []string{"key"},
			},
		},
		{
			Name:        "image_list",
			Description: "List every image in the session with its dimensions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "image_info",
			Description: "Get width, height, component count and maximum component value of a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key of the image"),
				},
				"required": []string{"key"},
			},
		},

		// Editing
		{
			Name: "image_apply",
			Description: "Apply an editing operation. The source image is never modified; the result is stored " +
				"under the destination key. Arguments are positional: most operations take <source-key> <dest-key>; " +
				"brighten and darken take <amount> <source-key> <dest-key>.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        command.Names(),
						"description": "Operation name",
					},
					"args": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Positional arguments",
					},
				},
				"required": []string{"operation", "args"},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the component values of a pixel, with 8-bit hex, RGB and HSL renderings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key of the image"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"key", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample several pixels in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key of the image"),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"key", "points"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Get red, green, blue and intensity histograms with one bin per possible value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key of the image"),
				},
				"required": []string{"key"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Render a stored image as base64-encoded PNG, optionally scaled and with a coordinate grid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key": keyProperty("Key of the image"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Draw grid lines every N pixels. 0 disables the grid",
						"default":     0,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with coordinates",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex. Default #FF0000",
						"default":     "#FF0000",
					},
				},
				"required": []string{"key"},
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
