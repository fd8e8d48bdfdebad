package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/sala/internal/domain/client"
)

// Static answers from fixed templates. It backs deployments without an API
// key and test suites that need deterministic responses.
type Static struct {
	// Names maps document digits to canned entity names.
	Names map[string]string
}

// NewStatic creates a Static assistant with optional canned names.
func NewStatic(names map[string]string) *Static {
	return &Static{Names: names}
}

// LookupEntity classifies the document and returns a canned name.
func (s *Static) LookupEntity(_ context.Context, document string) (Entity, error) {
	digits := client.Digits(document)
	typ := client.DetectType(document)
	if typ == client.TypeUnknown {
		return Entity{Type: client.TypeUnknown}, nil
	}
	name, ok := s.Names[digits]
	if !ok {
		return Entity{Type: typ}, nil
	}
	return Entity{Name: name, IsValid: true, Type: typ}, nil
}

// GenerateGuidance fills the standard description and e-mail templates.
func (s *Static) GenerateGuidance(_ context.Context, in GuidanceInput) (Guidance, error) {
	topic := strings.TrimSpace(in.ThemeLabel + " - " + in.Subtheme)
	return Guidance{
		Description: fmt.Sprintf("Realizado atendimento para orientação sobre %s.", topic),
		EmailTemplate: fmt.Sprintf(
			"Prezado(a) %s,\n\nConforme atendimento realizado na Sala do Empreendedor, "+
				"seguem as orientações sobre %s.\n\nPermanecemos à disposição.\n\nAtenciosamente,\nSala do Empreendedor",
			in.EntityName, topic),
	}, nil
}
