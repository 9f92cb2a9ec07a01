package domain

// Raw store records, one shape per feed. These mirror what each store
// publishes and are read-only input to the normalizers: the engine never
// owns or validates them beyond what normalization needs.

// AHRecord is a raw Albert Heijn product as scraped from the product cards.
// PricePerUnit is a pre-computed numeric €/unit value with the unit in Unit.
type AHRecord struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Brand        string   `json:"brand,omitempty"`
	Category     string   `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	PromoPrice   *float64 `json:"promoPrice,omitempty"`
	PromoEnd     string   `json:"promoEnd,omitempty"`
	PricePerUnit string   `json:"price_per_unit,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	UnitSize     string   `json:"unitSize,omitempty"`
	Image        string   `json:"image,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// JumboRecord is a raw Jumbo product from the GraphQL feed. Prices arrive as
// locale-formatted strings; PricePerUnit is a composite "1.59 / 100 g" string.
type JumboRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Brand        string `json:"brand,omitempty"`
	Category     string `json:"category,omitempty"`
	Price        string `json:"price,omitempty"`
	PromoPrice   string `json:"promoPrice,omitempty"`
	PricePerUnit string `json:"pricePerUnit,omitempty"`
	PromoUntil   string `json:"promoUntil,omitempty"`
	Image        string `json:"image,omitempty"`
	Link         string `json:"link,omitempty"`
}

// DirkRecord is a raw Dirk product. The image path is relative to the Dirk
// CDN and the category comes from the webgroup label.
type DirkRecord struct {
	ProductID     int      `json:"productId"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	CategoryLabel string   `json:"categoryLabel,omitempty"`
	NormalPrice   *float64 `json:"normalPrice,omitempty"`
	OfferPrice    *float64 `json:"offerPrice,omitempty"`
	PackSize      string   `json:"packSize,omitempty"`
	Image         string   `json:"image,omitempty"`
}

// AldiRecord is a raw Aldi product.
type AldiRecord struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Brand      string   `json:"brand,omitempty"`
	Category   string   `json:"category,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PromoPrice *float64 `json:"promoPrice,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	UnitSize   string   `json:"unitSize,omitempty"`
	Image      string   `json:"image,omitempty"`
	Link       string   `json:"link,omitempty"`
}

// HoogvlietPromotion is one promotion entry on a Hoogvliet record.
type HoogvlietPromotion struct {
	Description string `json:"description,omitempty"`
	ValidUntil  string `json:"validUntil,omitempty"`
}

// HoogvlietRecord is a raw Hoogvliet product. Prices arrive as locale
// strings ("1,39") and the category is a breadcrumb hierarchy.
type HoogvlietRecord struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Brand             string               `json:"brand,omitempty"`
	Category          string               `json:"category,omitempty"`
	CategoryHierarchy string               `json:"categoryHierarchy,omitempty"`
	ListPrice         string               `json:"listPrice,omitempty"`
	DiscountedPrice   string               `json:"discountedPrice,omitempty"`
	BaseUnit          string               `json:"baseUnit,omitempty"`
	UnitSize          string               `json:"unitSize,omitempty"`
	Promotions        []HoogvlietPromotion `json:"promotions,omitempty"`
	Image             string               `json:"image,omitempty"`
	Link              string               `json:"link,omitempty"`
}

// RawCatalog bundles one already-fetched raw payload per store.
type RawCatalog struct {
	AH        []AHRecord        `json:"ah,omitempty"`
	Jumbo     []JumboRecord     `json:"jumbo,omitempty"`
	Dirk      []DirkRecord      `json:"dirk,omitempty"`
	Aldi      []AldiRecord      `json:"aldi,omitempty"`
	Hoogvliet []HoogvlietRecord `json:"hoogvliet,omitempty"`
}

// Empty reports whether no store payload carries any records.
func (r RawCatalog) Empty() bool {
	return len(r.AH) == 0 && len(r.Jumbo) == 0 && len(r.Dirk) == 0 &&
		len(r.Aldi) == 0 && len(r.Hoogvliet) == 0
}
