package server

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/imgproc/internal/command"
	"github.com/ironsheep/imgproc/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_apply").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"tool": params.Name}).WithError(err).Info("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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
//  3. Runs a command or reads an image from the store
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Store Operations
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_remove":
		return s.handleImageRemove(args)
	case "image_list":
		return s.handleImageList()
	case "image_info":
		return s.handleImageInfo(args)

	// Editing
	case "image_apply":
		return s.handleImageApply(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_preview":
		return s.handleImagePreview(args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ImageSummary describes an image held in the store.
type ImageSummary struct {
	Key        string `json:"key"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Components int    `json:"components"`
	MaxValue   int    `json:"max_value"`
}

func summarize(key string, img *imaging.Image) *ImageSummary {
	return &ImageSummary{
		Key:        key,
		Width:      img.Width(),
		Height:     img.Height(),
		Components: img.Components(),
		MaxValue:   img.MaxValue(),
	}
}

// apply runs cmd against the store and summarises the result under its
// destination.
func (s *Server) apply(cmd command.Command) (*ImageSummary, error) {
	img, err := cmd.Apply(s.store)
	if err != nil {
		return nil, err
	}
	return summarize(cmd.Destination(), img), nil
}

// === Store Operation Handlers ===

type imageFileArgs struct {
	Path string `json:"path"`
	Key  string `json:"key"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.apply(command.NewLoad(a.Path, a.Key))
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.apply(command.NewSave(a.Path, a.Key))
}

type imageKeyArgs struct {
	Key string `json:"key"`
}

func (s *Server) handleImageRemove(args json.RawMessage) (interface{}, error) {
	var a imageKeyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.store.Remove(a.Key)
	return map[string]interface{}{"removed": a.Key}, nil
}

func (s *Server) handleImageList() (interface{}, error) {
	keys := s.store.Keys()
	images := make([]*ImageSummary, 0, len(keys))
	for _, k := range keys {
		img, err := s.store.Get(k)
		if err != nil {
			return nil, err
		}
		images = append(images, summarize(k, img))
	}
	return map[string]interface{}{"images": images}, nil
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageKeyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Get(a.Key)
	if err != nil {
		return nil, err
	}
	return summarize(a.Key, img), nil
}

// === Editing Handlers ===

type imageApplyArgs struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
}

func (s *Server) handleImageApply(args json.RawMessage) (interface{}, error) {
	var a imageApplyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.Build(a.Operation, a.Args)
	if err != nil {
		return nil, err
	}
	return s.apply(cmd)
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	Key string `json:"key"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Get(a.Key)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Key    string `json:"key"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Get(a.Key)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageKeyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Get(a.Key)
	if err != nil {
		return nil, err
	}
	return imaging.Histogram(img)
}

type imagePreviewArgs struct {
	Key             string  `json:"key"`
	Scale           float64 `json:"scale"`
	GridSpacing     int     `json:"grid_spacing"`
	ShowCoordinates bool    `json:"show_coordinates"`
	GridColor       string  `json:"grid_color"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.GridColor == "" {
		a.GridColor = "#FF0000"
	}
	img, err := s.store.Get(a.Key)
	if err != nil {
		return nil, err
	}
	return imaging.Preview(img, imaging.PreviewOptions{
		Scale:           a.Scale,
		GridSpacing:     a.GridSpacing,
		ShowCoordinates: a.ShowCoordinates,
		GridColor:       a.GridColor,
	})
}
