package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// Derived €/kg and €/L values above this are treated as parse noise and the
// product falls back to the count unit.
const maxSanePPU = 200.0

var jumboImageSizeRegex = regexp.MustCompile(`fit-in/\d+x\d+/`)

const dirkImageCDN = "https://d3r3h30p75xj6a.cloudfront.net/"

// effectivePrice prefers the promo price when it is present, positive and
// below the regular price.
func effectivePrice(price, promo *float64) float64 {
	if promo != nil && *promo > 0 && (price == nil || *promo < *price) {
		return *promo
	}
	if price != nil {
		return *price
	}
	return 0
}

// brandOrFirstWord falls back to the first token of the title when the feed
// carries no explicit brand.
func brandOrFirstWord(brand, title string) string {
	if brand != "" {
		return brand
	}
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// floatPtrFromEU parses a locale-formatted price string into an optional price.
func floatPtrFromEU(s string) *float64 {
	if s == "" {
		return nil
	}
	v, ok := parseDecimalEU(s)
	if !ok {
		return nil
	}
	return &v
}

// resolvePPU derives the canonical unit and price-per-unit for a product.
// Resolution order, first success wins:
//  1. a store-reported price-per-unit string (authoritative when present)
//  2. an explicit numeric PPU value with a separate unit field
//  3. free package text parsed as an amount
//  4. the product title parsed as an amount
//  5. fallback to one count unit at the effective price
func resolvePPU(eff float64, reportedPPU string, explicitPPU string, explicitUnit string, packText string, title string) (domain.Unit, float64) {
	if reportedPPU != "" {
		if a, ok := ParsePricePerUnit(reportedPPU); ok {
			return sanePPU(a.Unit, a.Value, eff)
		}
	}

	if explicitPPU != "" && explicitUnit != "" {
		if val, ok := parseDecimalEU(explicitPPU); ok && val > 0 {
			if base, ok := convertToBase(1, explicitUnit); ok && base.Value > 0 {
				return sanePPU(base.Unit, val/base.Value, eff)
			}
			if isCountToken(explicitUnit) {
				return domain.UnitPiece, val
			}
		}
	}

	if packText != "" {
		if a, ok := ParseAmount(packText); ok && a.Value > 0 {
			return sanePPU(a.Unit, eff/a.Value, eff)
		}
	}

	if a, ok := ParseAmount(title); ok && a.Value > 0 {
		return sanePPU(a.Unit, eff/a.Value, eff)
	}

	return domain.UnitPiece, eff
}

// sanePPU rejects implausible derived weight/volume prices.
func sanePPU(unit domain.Unit, value, eff float64) (domain.Unit, float64) {
	if unit != domain.UnitPiece && (value <= 0 || value > maxSanePPU) {
		return domain.UnitPiece, eff
	}
	if value < 0 {
		return domain.UnitPiece, eff
	}
	return unit, value
}

// NormalizeAH projects a raw Albert Heijn record onto the canonical schema.
func NormalizeAH(p domain.AHRecord) domain.Product {
	eff := effectivePrice(p.Price, p.PromoPrice)
	unit, ppu := resolvePPU(eff, "", p.PricePerUnit, p.Unit, p.UnitSize, p.Title)

	return domain.Product{
		Store:           domain.StoreAH,
		ID:              p.ID,
		Name:            p.Title,
		Brand:           brandOrFirstWord(p.Brand, p.Title),
		RawCategory:     p.Category,
		UnifiedCategory: UnifyCategory(domain.StoreAH, p.Category, p.Title),
		Price:           p.Price,
		PromoPrice:      p.PromoPrice,
		PromoEnd:        p.PromoEnd,
		Unit:            unit,
		PricePerUnit:    ppu,
		PPULabel:        domain.PPULabelFor(unit),
		Image:           p.Image,
		Link:            p.Link,
		Labels:          DetectLabels(p.Category, p.Title),
	}
}

// NormalizeJumbo projects a raw Jumbo record onto the canonical schema.
// Jumbo reports prices as locale strings and its PPU as "1.59 / 100 g".
func NormalizeJumbo(p domain.JumboRecord) domain.Product {
	price := floatPtrFromEU(p.Price)
	promo := floatPtrFromEU(p.PromoPrice)
	eff := effectivePrice(price, promo)
	unit, ppu := resolvePPU(eff, p.PricePerUnit, "", "", "", p.Title)

	image := p.Image
	if image != "" {
		image = jumboImageSizeRegex.ReplaceAllString(image, "fit-in/120x120/")
	}

	return domain.Product{
		Store:           domain.StoreJumbo,
		ID:              p.ID,
		Name:            p.Title,
		Brand:           brandOrFirstWord(p.Brand, p.Title),
		RawCategory:     p.Category,
		UnifiedCategory: UnifyCategory(domain.StoreJumbo, p.Category, p.Title),
		Price:           price,
		PromoPrice:      promo,
		PromoEnd:        p.PromoUntil,
		Unit:            unit,
		PricePerUnit:    ppu,
		PPULabel:        domain.PPULabelFor(unit),
		Image:           image,
		Link:            p.Link,
		Labels:          DetectLabels(p.Category, p.Title),
	}
}

// NormalizeDirk projects a raw Dirk record onto the canonical schema.
// Dirk images are CDN-relative and need a fixed thumbnail width.
func NormalizeDirk(p domain.DirkRecord) domain.Product {
	var promo *float64
	if p.OfferPrice != nil && *p.OfferPrice > 0 {
		promo = p.OfferPrice
	}
	eff := effectivePrice(p.NormalPrice, promo)
	unit, ppu := resolvePPU(eff, "", "", "", p.PackSize, p.Name)

	image := p.Image
	if image != "" {
		image = dirkImageCDN + image
		if !strings.Contains(image, "?") {
			image += "?width=120"
		}
	}

	return domain.Product{
		Store:           domain.StoreDirk,
		ID:              strconv.Itoa(p.ProductID),
		Name:            p.Name,
		Brand:           brandOrFirstWord(p.Brand, p.Name),
		RawCategory:     p.CategoryLabel,
		UnifiedCategory: UnifyCategory(domain.StoreDirk, p.CategoryLabel, p.Name),
		Price:           p.NormalPrice,
		PromoPrice:      promo,
		Unit:            unit,
		PricePerUnit:    ppu,
		PPULabel:        domain.PPULabelFor(unit),
		Image:           image,
		Labels:          DetectLabels(p.CategoryLabel, p.Name),
	}
}

// NormalizeAldi projects a raw Aldi record onto the canonical schema.
func NormalizeAldi(p domain.AldiRecord) domain.Product {
	eff := effectivePrice(p.Price, p.PromoPrice)

	var unit domain.Unit
	var ppu float64
	if p.Unit != "" {
		if base, ok := convertToBase(1, p.Unit); ok {
			unit, ppu = sanePPU(base.Unit, eff/base.Value, eff)
		}
	}
	if unit == "" {
		unit, ppu = resolvePPU(eff, "", "", "", p.UnitSize, p.Title)
	}

	return domain.Product{
		Store:           domain.StoreAldi,
		ID:              p.ID,
		Name:            p.Title,
		Brand:           brandOrFirstWord(p.Brand, p.Title),
		RawCategory:     p.Category,
		UnifiedCategory: UnifyCategory(domain.StoreAldi, p.Category, p.Title),
		Price:           p.Price,
		PromoPrice:      p.PromoPrice,
		Unit:            unit,
		PricePerUnit:    ppu,
		PPULabel:        domain.PPULabelFor(unit),
		Image:           p.Image,
		Link:            p.Link,
		Labels:          DetectLabels(p.Category, p.Title),
	}
}

// NormalizeHoogvliet projects a raw Hoogvliet record onto the canonical
// schema. Prices arrive as locale strings; the promotion end date comes from
// the first promotion entry that carries one.
func NormalizeHoogvliet(p domain.HoogvlietRecord) domain.Product {
	price := floatPtrFromEU(p.ListPrice)
	promo := floatPtrFromEU(p.DiscountedPrice)
	if promo != nil && *promo <= 0 {
		promo = nil
	}
	eff := effectivePrice(price, promo)

	rawCategory := p.CategoryHierarchy
	if rawCategory == "" {
		rawCategory = p.Category
	}

	var unit domain.Unit
	var ppu float64
	if p.BaseUnit != "" {
		if base, ok := convertToBase(1, p.BaseUnit); ok {
			unit, ppu = sanePPU(base.Unit, eff/base.Value, eff)
		} else if isCountToken(p.BaseUnit) {
			unit, ppu = domain.UnitPiece, eff
		}
	}
	if unit == "" {
		unit, ppu = resolvePPU(eff, "", "", "", p.UnitSize, p.Title)
	}

	promoEnd := ""
	for _, pr := range p.Promotions {
		if pr.ValidUntil != "" {
			promoEnd = pr.ValidUntil
			break
		}
	}

	return domain.Product{
		Store:           domain.StoreHoogvliet,
		ID:              p.ID,
		Name:            p.Title,
		Brand:           brandOrFirstWord(p.Brand, p.Title),
		RawCategory:     rawCategory,
		UnifiedCategory: UnifyCategory(domain.StoreHoogvliet, rawCategory, p.Title),
		Price:           price,
		PromoPrice:      promo,
		PromoEnd:        promoEnd,
		Unit:            unit,
		PricePerUnit:    ppu,
		PPULabel:        domain.PPULabelFor(unit),
		Image:           p.Image,
		Link:            p.Link,
		Labels:          DetectLabels(rawCategory, p.Title),
	}
}

// NormalizeAll concatenates the normalized output of every store feed into
// one flat canonical catalog, in fixed store order.
func NormalizeAll(raw domain.RawCatalog) []domain.Product {
	catalog := make([]domain.Product, 0,
		len(raw.AH)+len(raw.Dirk)+len(raw.Jumbo)+len(raw.Aldi)+len(raw.Hoogvliet))

	for _, p := range raw.AH {
		catalog = append(catalog, NormalizeAH(p))
	}
	for _, p := range raw.Dirk {
		catalog = append(catalog, NormalizeDirk(p))
	}
	for _, p := range raw.Jumbo {
		catalog = append(catalog, NormalizeJumbo(p))
	}
	for _, p := range raw.Aldi {
		catalog = append(catalog, NormalizeAldi(p))
	}
	for _, p := range raw.Hoogvliet {
		catalog = append(catalog, NormalizeHoogvliet(p))
	}

	return catalog
}
