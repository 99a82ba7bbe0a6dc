package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/acai-real/storefront/internal/enum"
)

// Seed returns the built-in catalog used whenever no persisted catalog exists
// or the stored blob cannot be parsed.
func Seed() []Item {
	return []Item{
		{
			ID:          "1",
			Name:        "Clássico Irresistível 300ml",
			Description: "A base perfeita: cremosidade extrema e o sabor autêntico que você já conhece e ama. Simples, mas inesquecível.",
			Price:       decimal.NewFromInt(18),
			Image:       "https://images.unsplash.com/photo-1590301157890-4810ed352733?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategoryClassic,
			Available:   true,
			Popular:     true,
			Tag:         "O Favorito",
		},
		{
			ID:          "2",
			Name:        "Vício Púrpura 500ml",
			Description: "Atenção: Altamente viciante! O equilíbrio perfeito entre camadas de Leite Ninho, morangos selecionados e a verdadeira Nutella.",
			Price:       decimal.NewFromInt(26),
			Image:       "https://images.unsplash.com/photo-1623595110708-76b205332c9e?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategoryPremium,
			Available:   true,
			Popular:     true,
			Tag:         "Campeão de Vendas",
		},
		{
			ID:          "3",
			Name:        "Duo Felicidade (Combo)",
			Description: "O crush perfeito existe e vem em dose dupla. 2 Copos de 500ml montados com amor para dividir momentos especiais.",
			Price:       decimal.NewFromInt(45),
			Image:       "https://images.unsplash.com/photo-1553177595-4de2bb0842b9?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategoryCombos,
			Available:   true,
			Tag:         "Economia Real",
		},
		{
			ID:          "4",
			Name:        "Banquete Imperial 1kg",
			Description: "A experiência definitiva. 1kg do nosso açaí especial coroado com 8 acompanhamentos premium que derretem na boca.",
			Price:       decimal.NewFromInt(65),
			Image:       "https://images.unsplash.com/photo-1572490122747-3968b75cc699?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategoryCombos,
			Available:   true,
			Popular:     true,
			Tag:         "Explosão de Dopamina",
		},
		{
			ID:          "5",
			Name:        "Energia Pura 400ml",
			Description: "O combustível dos campeões. Açaí batido com Whey, banana e nossa granola crocante artesanal secreta.",
			Price:       decimal.NewFromInt(24),
			Image:       "https://images.unsplash.com/photo-1590080875515-8a3a8dc5735e?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategoryPremium,
			Available:   true,
		},
		{
			ID:          "6",
			Name:        "Banho de Nutella",
			Description: "Porque nada é tão bom que um banho generoso da verdadeira Nutella original não possa transformar em perfeição.",
			Price:       decimal.NewFromInt(5),
			Image:       "https://images.unsplash.com/photo-1511381939415-e44015466834?q=80&w=400&h=400&auto=format&fit=crop",
			Category:    enum.CategorySides,
			Available:   true,
		},
	}
}
