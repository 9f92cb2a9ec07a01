package usecase

import (
	"regexp"
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// categoryRule maps a raw-category (or title) pattern onto a universal
// category. Rule order is significant: earlier rules win over later, more
// general ones.
type categoryRule struct {
	pattern *regexp.Regexp
	to      domain.Category
}

// coreCategoryRules is the source-agnostic ordered fallback list, evaluated
// first against the raw category and then against the product title.
var coreCategoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)aardappelen|groente|fruit|verse sappen`), domain.CategoryProduce},
	{regexp.MustCompile(`(?i)vleeswaren?|vlees\b|vis\b|vega|vegetarisch`), domain.CategoryMeatFishVeg},
	{regexp.MustCompile(`(?i)zuivel|eieren|kaas|plantaardig`), domain.CategoryDairy},
	{regexp.MustCompile(`(?i)\bbrood\b|ontbijt|beleg`), domain.CategoryBakery},
	{regexp.MustCompile(`(?i)soepen|conserven|sauzen|kruiden|olie|pasta|rijst|wereldkeuken`), domain.CategoryPantry},
	{regexp.MustCompile(`(?i)chips|zoutjes|noten|koek|snoep|chocolade|zelf bakken`), domain.CategorySnacks},
	{regexp.MustCompile(`(?i)frisdrank|sappen|water|koffie|thee`), domain.CategoryDrinks},
	{regexp.MustCompile(`(?i)bier|wijn|aperitieven|sterke drank|alcohol`), domain.CategoryAlcohol},
	{regexp.MustCompile(`(?i)\bdiepvries\b`), domain.CategoryFrozen},
	{regexp.MustCompile(`(?i)drogisterij|verzorging|gezondheid|cosmetica|sport`), domain.CategoryHealth},
	{regexp.MustCompile(`(?i)\bbaby\b|kind\b`), domain.CategoryBaby},
	{regexp.MustCompile(`(?i)huishoud|non-?food|koken|tafelen|vrije tijd|servicebalie`), domain.CategoryHousehold},
	{regexp.MustCompile(`(?i)huisdier(en)?|dieren`), domain.CategoryPet},
}

// storeCategoryDictionaries map a store's exact raw category label onto a
// universal category. Checked before the pattern rules because a literal hit
// is unambiguous. Keys are lowercased trimmed labels; hand-maintained per
// store as label drift shows up in the feeds.
var storeCategoryDictionaries = map[domain.Store]map[string]domain.Category{
	domain.StoreAH: {
		"aardappel, groente, fruit":       domain.CategoryProduce,
		"zuivel, plantaardig en eieren":   domain.CategoryDairy,
		"bakkerij en banket":              domain.CategoryBakery,
		"vlees, kip, vis, vega":           domain.CategoryMeatFishVeg,
		"frisdrank, sappen, koffie, thee": domain.CategoryDrinks,
		"bier en aperitieven":             domain.CategoryAlcohol,
		"wijn en bubbels":                 domain.CategoryAlcohol,
		"diepvries":                       domain.CategoryFrozen,
		"drogisterij":                     domain.CategoryHealth,
		"baby en kind":                    domain.CategoryBaby,
		"huishouden":                      domain.CategoryHousehold,
		"huisdier":                        domain.CategoryPet,
	},
	domain.StoreJumbo: {
		"aardappelen, groente en fruit":    domain.CategoryProduce,
		"zuivel, eieren, boter":            domain.CategoryDairy,
		"brood en gebak":                   domain.CategoryBakery,
		"vlees, vis en vega":               domain.CategoryMeatFishVeg,
		"conserven, soepen, sauzen, olien": domain.CategoryPantry,
		"fris, sap, koffie, thee":          domain.CategoryDrinks,
		"bier en wijn":                     domain.CategoryAlcohol,
		"diepvries":                        domain.CategoryFrozen,
		"drogisterij en baby":              domain.CategoryHealth,
		"huishouden en dieren":             domain.CategoryHousehold,
	},
	domain.StoreDirk: {
		"aardappelen, groente en fruit": domain.CategoryProduce,
		"zuivel en kaas":                domain.CategoryDairy,
		"brood, beleg en koek":          domain.CategoryBakery,
		"vlees en vis":                  domain.CategoryMeatFishVeg,
		"frisdrank en sappen":           domain.CategoryDrinks,
		"bier, wijn en gedistilleerd":   domain.CategoryAlcohol,
		"diepvries":                     domain.CategoryFrozen,
		"drogisterij":                   domain.CategoryHealth,
		"huishoudelijk":                 domain.CategoryHousehold,
	},
	domain.StoreAldi: {
		"groente en fruit":      domain.CategoryProduce,
		"zuivel en eieren":      domain.CategoryDairy,
		"brood en banket":       domain.CategoryBakery,
		"vlees en vis":          domain.CategoryMeatFishVeg,
		"dranken":               domain.CategoryDrinks,
		"wijn en gedistilleerd": domain.CategoryAlcohol,
		"diepvries":             domain.CategoryFrozen,
		"huishouden":            domain.CategoryHousehold,
	},
	domain.StoreHoogvliet: {
		"aardappelen, groente, fruit": domain.CategoryProduce,
		"zuivel, kaas en eieren":      domain.CategoryDairy,
		"brood en ontbijt":            domain.CategoryBakery,
		"vlees, vis, vega":            domain.CategoryMeatFishVeg,
		"frisdrank en sappen":         domain.CategoryDrinks,
		"bier en wijn":                domain.CategoryAlcohol,
		"diepvries":                   domain.CategoryFrozen,
		"drogisterij en baby":         domain.CategoryHealth,
		"huishoudelijke artikelen":    domain.CategoryHousehold,
		"dierenbenodigdheden":         domain.CategoryPet,
	},
}

// Known raw-category spelling drift, canonicalized before lookup.
var preNormalizeRules = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`(?i)^verse maaltijden(,|\s) salades$`), "Maaltijden, salades"},
	{regexp.MustCompile(`(?i)vlees, vis, vega(etarisch)?`), "Vlees, vis, vegetarisch"},
	{regexp.MustCompile(`(?i)frisdrank(,|\s) sappen(,|\s) water`), "Frisdrank en sappen"},
}

// The combined "drogisterij en baby" shelf needs a second look at the title
// to decide which of the two domains a product belongs to.
var (
	drugstoreBabyRegex = regexp.MustCompile(`(?i)drogisterij.*baby|baby.*drogisterij`)
	babyHintsRegex     = regexp.MustCompile(`(?i)\b(baby|luiers?|billendoekjes|flesvoeding|papje|potjes|zwitsal|babyvoeding)\b`)
)

// Label facets detected from category/title text.
var labelPatterns = []struct {
	apply   func(*domain.Labels)
	pattern *regexp.Regexp
}{
	{func(l *domain.Labels) { l.Bio = true }, regexp.MustCompile(`(?i)\b(bio|biologisch)\b`)},
	{func(l *domain.Labels) { l.Special = true }, regexp.MustCompile(`(?i)\b(speciaal assortiment)\b`)},
	{func(l *domain.Labels) { l.Conscious = true }, regexp.MustCompile(`(?i)\b(bewust|bewuste voeding)\b`)},
	{func(l *domain.Labels) { l.GlutenFree = true }, regexp.MustCompile(`(?i)\b(glutenvrij)\b`)},
	{func(l *domain.Labels) { l.Seasonal = true }, regexp.MustCompile(`(?i)\b(tijdelijk|feestweken|barbecue|bbq|seizoens)\b`)},
}

// PreNormalizeCategory canonicalizes known wording drift between store feeds.
func PreNormalizeCategory(raw string) string {
	c := strings.TrimSpace(raw)
	if c == "" {
		return ""
	}
	for _, r := range preNormalizeRules {
		if r.pattern.MatchString(c) {
			c = r.replace
		}
	}
	return c
}

// DetectLabels extracts boolean facets from the combined category and title.
func DetectLabels(rawCategory, title string) domain.Labels {
	src := strings.TrimSpace(rawCategory + " " + title)
	var labels domain.Labels
	for _, lp := range labelPatterns {
		if lp.pattern.MatchString(src) {
			lp.apply(&labels)
		}
	}
	return labels
}

// UnifyCategory maps a store-specific raw category label (with the product
// title as fallback) onto a universal category. Always returns a member of
// the fixed taxonomy; unresolved inputs map to "other".
func UnifyCategory(store domain.Store, rawCategory, title string) domain.Category {
	if dict, ok := storeCategoryDictionaries[store]; ok {
		if cat, ok := dict[strings.ToLower(strings.TrimSpace(rawCategory))]; ok {
			// The literal Jumbo/Hoogvliet drugstore+baby shelf still needs
			// the composite split below.
			if !drugstoreBabyRegex.MatchString(rawCategory) {
				return cat
			}
		}
	}

	pre := PreNormalizeCategory(rawCategory)

	if drugstoreBabyRegex.MatchString(pre) {
		if babyHintsRegex.MatchString(title) {
			return domain.CategoryBaby
		}
		return domain.CategoryHealth
	}

	for _, rule := range coreCategoryRules {
		if rule.pattern.MatchString(pre) {
			return rule.to
		}
	}
	for _, rule := range coreCategoryRules {
		if rule.pattern.MatchString(title) {
			return rule.to
		}
	}

	return domain.CategoryOther
}
