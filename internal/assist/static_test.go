package assist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/sala/internal/assist"
	"github.com/rpggio/sala/internal/domain/client"
)

func TestStatic_LookupEntity(t *testing.T) {
	ctx := context.Background()
	s := assist.NewStatic(map[string]string{"12345678901": "Maria da Silva"})

	ent, err := s.LookupEntity(ctx, "123.456.789-01")
	require.NoError(t, err)
	require.True(t, ent.IsValid)
	require.Equal(t, client.TypeCPF, ent.Type)
	require.Equal(t, "Maria da Silva", ent.Name)

	ent, err = s.LookupEntity(ctx, "12.345.678/0001-90")
	require.NoError(t, err)
	require.False(t, ent.IsValid)
	require.Equal(t, client.TypeCNPJ, ent.Type)

	ent, err = s.LookupEntity(ctx, "123")
	require.NoError(t, err)
	require.Equal(t, client.TypeUnknown, ent.Type)
}

func TestStatic_GenerateGuidance(t *testing.T) {
	s := assist.NewStatic(nil)
	out, err := s.GenerateGuidance(context.Background(), assist.GuidanceInput{
		ThemeLabel: "Nota Fiscal",
		Subtheme:   "Credenciamento",
		EntityName: "Empreendedor",
	})
	require.NoError(t, err)
	require.Contains(t, out.Description, "Nota Fiscal - Credenciamento")
	require.Contains(t, out.EmailTemplate, "Prezado(a) Empreendedor,")
}
