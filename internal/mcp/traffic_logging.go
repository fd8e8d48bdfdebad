package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every MCP message at debug level. Tool calls
// also carry the tool name and whether the tool reported an error.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			attrs := []any{"direction", direction, "method", method, "session_id", safeSessionID(req)}
			params := safeParams(req)
			if call, ok := params.(*sdkmcp.CallToolParamsRaw); ok && call != nil {
				attrs = append(attrs, "tool", call.Name)
			}
			logger.DebugContext(ctx, "mcp traffic", append(attrs, "stage", "request", "params", formatPayload(params))...)

			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			attrs = append(attrs, "stage", "response")
			if res, ok := result.(*sdkmcp.CallToolResult); ok && res != nil {
				attrs = append(attrs, "tool_error", res.IsError)
				if res.IsError {
					attrs = append(attrs, "code", toolErrorCode(res))
				}
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			logger.DebugContext(ctx, "mcp traffic", append(attrs, "result", formatPayload(result))...)
			return result, err
		}
	}
}

// toolErrorCode extracts the leading code from an error result's text, as
// produced by APIError.Error.
func toolErrorCode(res *sdkmcp.CallToolResult) string {
	if len(res.Content) == 0 {
		return ""
	}
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	if !ok {
		return ""
	}
	code, _, found := strings.Cut(text.Text, ":")
	if !found {
		return ""
	}
	return code
}

func safeSessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
