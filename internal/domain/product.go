package domain

// Store identifies the originating supermarket of a product record.
type Store string

const (
	StoreAH        Store = "ah"
	StoreJumbo     Store = "jumbo"
	StoreDirk      Store = "dirk"
	StoreAldi      Store = "aldi"
	StoreHoogvliet Store = "hoogvliet"
)

// StoreOrder is the fixed order in which store catalogs are aggregated.
var StoreOrder = []Store{StoreAH, StoreDirk, StoreJumbo, StoreAldi, StoreHoogvliet}

// Unit is a canonical package unit. All package sizes normalize into one of these.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLiter Unit = "L"
	UnitPiece Unit = "st"
)

// PPULabelFor returns the display label for a price-per-unit value.
func PPULabelFor(unit Unit) string {
	switch unit {
	case UnitKg:
		return "€/kg"
	case UnitLiter:
		return "€/L"
	default:
		return "€/st"
	}
}

// Category is one of the universal categories every store-specific
// category label is mapped onto.
type Category string

const (
	CategoryProduce     Category = "produce"
	CategoryMeatFishVeg Category = "meat_fish_veg"
	CategoryDairy       Category = "dairy"
	CategoryBakery      Category = "bakery"
	CategoryPantry      Category = "pantry"
	CategorySnacks      Category = "snacks"
	CategoryDrinks      Category = "drinks"
	CategoryAlcohol     Category = "alcohol"
	CategoryFrozen      Category = "frozen"
	CategoryHealth      Category = "health"
	CategoryBaby        Category = "baby"
	CategoryHousehold   Category = "household"
	CategoryPet         Category = "pet"
	CategoryOther       Category = "other"
)

// UniversalCategories lists the full taxonomy in display order.
var UniversalCategories = []Category{
	CategoryProduce,
	CategoryMeatFishVeg,
	CategoryDairy,
	CategoryBakery,
	CategoryPantry,
	CategorySnacks,
	CategoryDrinks,
	CategoryAlcohol,
	CategoryFrozen,
	CategoryHealth,
	CategoryBaby,
	CategoryHousehold,
	CategoryPet,
	CategoryOther,
}

// IsUniversalCategory reports whether c is a member of the fixed taxonomy.
func IsUniversalCategory(c Category) bool {
	for _, u := range UniversalCategories {
		if c == u {
			return true
		}
	}
	return false
}

// Labels are boolean facets detected from category/title text.
// Informational only; never used in ranking.
type Labels struct {
	Bio        bool `json:"bio"`
	Special    bool `json:"special"`
	Conscious  bool `json:"conscious"`
	GlutenFree bool `json:"glutenfree"`
	Seasonal   bool `json:"seasonal"`
}

// Product is the canonical product record all store feeds normalize into.
// Price and PromoPrice are nil when the store did not publish them.
type Product struct {
	Store           Store    `json:"store"`
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand,omitempty"`
	RawCategory     string   `json:"rawCategory,omitempty"`
	UnifiedCategory Category `json:"unifiedCategory"`
	Price           *float64 `json:"price,omitempty"`
	PromoPrice      *float64 `json:"promoPrice,omitempty"`
	PromoEnd        string   `json:"promoEnd,omitempty"`
	Unit            Unit     `json:"unit"`
	PricePerUnit    float64  `json:"pricePerUnit"`
	PPULabel        string   `json:"ppuLabel"`
	Image           string   `json:"image,omitempty"`
	Link            string   `json:"link,omitempty"`
	Labels          Labels   `json:"labels"`
}

// EffectivePrice is the promo price when present, positive and lower than
// the regular price, else the regular price. Zero when neither is present.
func (p Product) EffectivePrice() float64 {
	if p.PromoPrice != nil && *p.PromoPrice > 0 && (p.Price == nil || *p.PromoPrice < *p.Price) {
		return *p.PromoPrice
	}
	if p.Price != nil {
		return *p.Price
	}
	return 0
}

// OnPromo reports whether the product currently carries a promotion price.
func (p Product) OnPromo() bool {
	return p.PromoPrice != nil && *p.PromoPrice > 0
}

// ScoredProduct is a Product with the transient score attached by a search
// call. It exists only for the duration of one search.
type ScoredProduct struct {
	Product
	Score float64 `json:"score"`
}

// SortMode selects the ordering of search results.
type SortMode string

const (
	SortScore SortMode = "score"
	SortPPU   SortMode = "ppu"
	SortPrice SortMode = "price"
	SortAlpha SortMode = "alpha"
	SortPromo SortMode = "promo"
)

// ParseSortMode maps a request string onto a SortMode, defaulting to score.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPPU, SortPrice, SortAlpha, SortPromo:
		return SortMode(s)
	default:
		return SortScore
	}
}
