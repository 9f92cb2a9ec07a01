package usecase

import (
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// semanticDenyList holds, per query term, name substrings that are known
// false-positive collisions. A hit zeroes the candidate outright.
// Configuration data: extend the table, not the algorithm.
var semanticDenyList = map[string][]string{
	"water":  {"waterdicht", "waterproof", "waterkoker", "waterverf", "waterijsjes"},
	"melk":   {"melkchocolade", "melkzeep", "melkopschuimer"},
	"kaas":   {"kaasschaaf", "kaasstengel", "kaasplank", "kaasbroodje"},
	"ei":     {"eierwekker", "eiersnijder", "eierdop"},
	"pasta":  {"tandpasta", "verfpasta", "pleisterpasta"},
	"chips":  {"microchip", "chipkaart", "computerchip"},
	"olie":   {"massageolie", "etherische", "gezichtsolie", "haarolie"},
	"boter":  {"bodybutter"},
	"zout":   {"zoutlamp", "zoutsteen", "badzout"},
	"koffie": {"koffiemok", "koffiezetapparaat", "koffiepad"},
	"thee":   {"theemok", "theepot", "theedoek"},
	"wijn":   {"wijnrek", "wijnkoeler", "wijnflesopener"},
	"bier":   {"bierglas", "bieropener", "bierkrat"},
	"cola":   {"chocola"},
	"banaan": {"bananenboom", "bananenchips"},
}

// categoryAffinityBoost rewards candidates whose raw or unified category
// textually contains the query term.
const categoryAffinityBoost = 1.1

// SemanticFactor applies the per-query deny-list (hard veto) and the
// category-affinity rule. missMultiplier is the factor applied when the
// candidate's category does not mention the query term; neutral 1.0 by
// default, configurable down to a mild penalty.
func SemanticFactor(query string, p domain.Product, missMultiplier float64) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	name := strings.ToLower(p.Name)

	for _, bad := range semanticDenyList[q] {
		if strings.Contains(name, bad) {
			return 0
		}
	}

	cat := strings.ToLower(p.RawCategory)
	if cat == "" {
		cat = strings.ToLower(string(p.UnifiedCategory))
	}
	if strings.Contains(cat, q) {
		return categoryAffinityBoost
	}
	if missMultiplier > 0 {
		return missMultiplier
	}
	return 1.0
}

// fruitKeywords is the curated ambiguous domain where the fresh product and
// flavored derivatives collide ("aardbei" the fruit vs strawberry yoghurt).
var fruitKeywords = map[string]bool{
	"aardbei": true, "aardbeien": true,
	"banaan": true, "bananen": true,
	"appel": true, "appels": true,
	"peer": true, "peren": true,
	"druif": true, "druiven": true,
	"mango": true, "ananas": true, "perzik": true, "kiwi": true,
	"sinaasappel": true, "citroen": true, "watermeloen": true,
	"mandarijn": true, "framboos": true,
	"bosbes": true, "blauwe bes": true, "blauwebes": true,
}

// fruitContextBlockers are "wrong department" context words: their presence
// in a candidate name signals a flavored product rather than the fruit.
var fruitContextBlockers = []string{
	"yoghurt", "kwark", "vla", "dessert", "toetje", "smoothie",
	"ijs", "baby", "babyvoeding", "snack", "cake", "taart", "koek",
	"reep", "pudding", "drink", "fristi",
}

// Contextual adjustment deltas. The floor keeps the factor attenuating
// rather than vetoing; the hard veto lives in the deny-list.
const (
	fruitProduceBonus   = 0.4
	fruitContextPenalty = 0.4
	fruitExactBonus     = 0.5
	contextualFloor     = 0.1
)

// ContextualFactor applies the curated fresh-fruit disambiguation: produce
// candidates get a bonus, flavored-product context words a penalty, and a
// near-exact name an extra push.
func ContextualFactor(query string, p domain.Product) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if !fruitKeywords[q] {
		return 1.0
	}

	name := strings.ToLower(p.Name)
	factor := 1.0

	if p.UnifiedCategory == domain.CategoryProduce {
		factor += fruitProduceBonus
	}
	for _, bad := range fruitContextBlockers {
		if strings.Contains(name, bad) {
			factor -= fruitContextPenalty
			break
		}
	}
	if name == q || strings.HasPrefix(name, q+" ") {
		factor += fruitExactBonus
	}

	return max(factor, contextualFloor)
}
