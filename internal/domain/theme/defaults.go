package theme

// Defaults returns the taxonomy seeded into an empty store. A fresh slice is
// built on every call so the store can never alias caller-owned data.
func Defaults() []Theme {
	return []Theme{
		{
			ID:    "mei",
			Label: "Microempreendedor Individual (MEI)",
			Subthemes: []string{
				"Formalização",
				"Alteração Cadastral",
				"Baixa",
				"Declaração Anual (DASN)",
				"Boleto DAS",
				"Parcelamento",
			},
		},
		{
			ID:    "alvara",
			Label: "Alvará e Licenciamento",
			Subthemes: []string{
				"Consulta de Viabilidade",
				"Emissão de Alvará",
				"Renovação",
				"Licença Sanitária",
				"Licença Ambiental",
			},
		},
		{
			ID:    "nf",
			Label: "Nota Fiscal",
			Subthemes: []string{
				"Emissão de NFS-e",
				"Credenciamento",
				"Cancelamento de Nota",
				"Configuração do Sistema",
			},
		},
		{
			ID:    "credito",
			Label: "Crédito e Finanças",
			Subthemes: []string{
				"Banco do Povo",
				"Microcrédito",
				"Renegociação de Dívidas",
				"Consultoria Financeira",
			},
		},
		{
			ID:    "outro",
			Label: "Outros Assuntos",
			Subthemes: []string{
				"Cursos e Capacitações",
				"Consultoria Sebrae",
				"Ouvidoria",
				"Dúvidas Gerais",
			},
		},
	}
}
