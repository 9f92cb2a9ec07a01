package usecase

import (
	"testing"

	"github.com/schappie/backend/internal/domain"
)

func TestUnifyCategory(t *testing.T) {
	tests := []struct {
		name     string
		store    domain.Store
		category string
		title    string
		want     domain.Category
	}{
		{"ah literal dictionary hit", domain.StoreAH, "Aardappel, groente, fruit", "Appel Elstar", domain.CategoryProduce},
		{"jumbo literal dictionary hit", domain.StoreJumbo, "Brood en gebak", "Volkoren brood", domain.CategoryBakery},
		{"pattern on category", domain.StoreDirk, "Kaas van het mes", "Jong belegen", domain.CategoryDairy},
		{"pattern falls back to title", domain.StoreAldi, "", "Verse vis van de dag", domain.CategoryMeatFishVeg},
		{"rule order prefers earlier rule", domain.StoreAH, "Groente en fruit sappen", "", domain.CategoryProduce},
		{"pre-normalized drift", domain.StoreJumbo, "Frisdrank, sappen, water", "Cola regular", domain.CategoryDrinks},
		{"composite shelf routes to baby", domain.StoreJumbo, "Drogisterij en baby", "Luiers maat 4", domain.CategoryBaby},
		{"composite shelf routes to health", domain.StoreJumbo, "Drogisterij en baby", "Shampoo anti-roos", domain.CategoryHealth},
		{"composite beats literal dictionary", domain.StoreHoogvliet, "Drogisterij en baby", "Flesvoeding 1", domain.CategoryBaby},
		{"frozen", domain.StoreDirk, "Diepvries", "Pizza salami", domain.CategoryFrozen},
		{"unknown maps to other", domain.StoreAH, "Cadeaukaarten", "Bol.com kaart 25", domain.CategoryOther},
		{"empty input maps to other", domain.StoreAldi, "", "", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnifyCategory(tt.store, tt.category, tt.title)
			if got != tt.want {
				t.Errorf("UnifyCategory(%q, %q, %q) = %v, want %v", tt.store, tt.category, tt.title, got, tt.want)
			}
		})
	}
}

// Every rule outcome must stay inside the fixed taxonomy.
func TestUnifyCategoryTotality(t *testing.T) {
	inputs := []struct {
		category string
		title    string
	}{
		{"", ""},
		{"Bier, wijn en gedistilleerd", ""},
		{"???", "!!!"},
		{"Drogisterij en baby", ""},
		{"Wereldkeuken", "Ketjap manis"},
		{"Non-food", "Paraplu"},
		{"Huisdieren", "Hondenbrokken"},
	}
	stores := []domain.Store{domain.StoreAH, domain.StoreJumbo, domain.StoreDirk, domain.StoreAldi, domain.StoreHoogvliet}

	for _, s := range stores {
		for _, in := range inputs {
			got := UnifyCategory(s, in.category, in.title)
			if !domain.IsUniversalCategory(got) {
				t.Errorf("UnifyCategory(%q, %q, %q) = %q, not a universal category", s, in.category, in.title, got)
			}
		}
	}
}

func TestDetectLabels(t *testing.T) {
	t.Run("bio and glutenfree from title", func(t *testing.T) {
		labels := DetectLabels("Brood en gebak", "Biologisch glutenvrij brood")
		if !labels.Bio {
			t.Error("expected Bio label")
		}
		if !labels.GlutenFree {
			t.Error("expected GlutenFree label")
		}
		if labels.Seasonal {
			t.Error("did not expect Seasonal label")
		}
	})

	t.Run("seasonal from category", func(t *testing.T) {
		labels := DetectLabels("Tijdelijk assortiment", "Pepernoten")
		if !labels.Seasonal {
			t.Error("expected Seasonal label")
		}
	})

	t.Run("no labels on plain input", func(t *testing.T) {
		labels := DetectLabels("Zuivel", "Halfvolle melk")
		if labels != (domain.Labels{}) {
			t.Errorf("expected zero labels, got %+v", labels)
		}
	})
}
