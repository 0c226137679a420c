// Package server exposes an image editing session over the MCP (Model
// Context Protocol).
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
// Store Operations:
//   - image_load: Load a file under a key
//   - image_save: Write a stored image to a file
//   - image_remove: Drop a key
//   - image_list: List stored images
//   - image_info: Dimensions and component ceiling of one image
//
// Editing:
//   - image_apply: Run any operation of the command catalog
//     (sepia, blur, horizontal-flip, brighten, ...)
//
// Inspection:
//   - image_sample_color: Pixel values at a coordinate
//   - image_sample_colors_multi: Sample several points
//   - image_histogram: Per-channel and intensity histograms
//   - image_preview: Base64 PNG rendering with optional grid
//
// # Session State
//
// Each Server owns one imaging.Store for its lifetime. Requests are served
// one at a time, so the store needs no locking.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
