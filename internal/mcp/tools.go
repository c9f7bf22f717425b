package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lingopad/lingopad/internal/padding"
	"github.com/lingopad/lingopad/internal/translate"
)

func (s *Server) handleTranslate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return s.errorResult("missing required parameter: text"), nil
	}
	source, err := req.RequireString("source_language")
	if err != nil {
		return s.errorResult("missing required parameter: source_language"), nil
	}
	target, err := req.RequireString("target_language")
	if err != nil {
		return s.errorResult("missing required parameter: target_language"), nil
	}

	res, err := s.svc.Translate(ctx, text, source, target)
	if err != nil {
		return s.errorResult(err.Error()), nil
	}

	s.log.Info().
		Str("source", source).Str("target", target).
		Str("provider", res.Provider).Bool("cached", res.Cached).
		Msg("translation served")

	// Interference target "translation" touches only the translated
	// payload; "all" also covers the envelope fields, each obfuscated
	// on its own. Both are no-ops while context filling is active.
	translated := s.orch.Obfuscate(res.Text, padding.FieldTranslation)
	sourceLine := s.orch.Obfuscate(fmt.Sprintf("Source: %s", strings.TrimSpace(text)), padding.FieldEnvelope)
	langLine := s.orch.Obfuscate(
		fmt.Sprintf("Languages: %s → %s", translate.Name(source), translate.Name(target)),
		padding.FieldEnvelope)

	body := fmt.Sprintf("Translation result:\n%s\nTranslated: %s\n%s", sourceLine, translated, langLine)
	return mcp.NewToolResultText(s.finalize(body)), nil
}

func (s *Server) handleLanguages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("Supported languages:\n")
	for _, code := range translate.Codes {
		fmt.Fprintf(&sb, "%s: %s\n", code, translate.Supported[code])
	}

	body := s.orch.Obfuscate(strings.TrimRight(sb.String(), "\n"), padding.FieldEnvelope)
	return mcp.NewToolResultText(s.finalize(body)), nil
}

func (s *Server) handleDetect(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return s.errorResult("missing required parameter: text"), nil
	}
	if strings.TrimSpace(text) == "" {
		return s.errorResult("text must not be empty"), nil
	}

	code, confidence := translate.Detect(text)
	body := fmt.Sprintf("Language detection result:\nText: %s\nDetected language: %s (%s)\nConfidence: %.0f%%",
		strings.TrimSpace(text), translate.Name(code), code, confidence*100)

	body = s.orch.Obfuscate(body, padding.FieldEnvelope)
	return mcp.NewToolResultText(s.finalize(body)), nil
}

// finalize applies the active padding mode to the rendered body and
// appends the response end marker, which stays free of filler units.
func (s *Server) finalize(body string) string {
	return s.orch.Fill(body) + responseEnd
}

func (s *Server) errorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(msg + responseEnd)
}
