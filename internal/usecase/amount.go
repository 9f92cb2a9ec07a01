package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/schappie/backend/internal/domain"
)

// Amount is a package size expressed in a canonical unit.
type Amount struct {
	Unit  domain.Unit
	Value float64
}

// Package-size patterns. Multipack forms must be tried before the plain
// forms: "6 x 330 ml" also contains a plain volume match.
var (
	multipackLeadRegex  = regexp.MustCompile(`(?i)(\d+)\s*[x×]\s*([\d.,]+)\s*(kg|g|l|lt|liter|ml|cl|dl)\b`)
	multipackTrailRegex = regexp.MustCompile(`(?i)([\d.,]+)\s*(kg|g|l|lt|liter|ml|cl|dl)\s*[x×]\s*(\d+)\b`)
	weightRegex         = regexp.MustCompile(`(?i)([\d.,]+)\s*(kg|g)\b`)
	volumeRegex         = regexp.MustCompile(`(?i)([\d.,]+)\s*(l|lt|liter|ml|cl|dl)\b`)
	countRegex          = regexp.MustCompile(`(?i)(\d+)[-\s]*(st|stuks?|stukken|pack|rol|rollen|doos|dozen|pak|zak|tray|net|bos|bundel|krop|fles|flessen|blik|tabletten)\b`)
	decimalCommaRegex   = regexp.MustCompile(`,\d{1,2}$`)
	thousandsDotRegex   = regexp.MustCompile(`^[1-9]\d{0,2}(\.\d{3})+$`)
	nonNumericRegex     = regexp.MustCompile(`[^\d.,-]`)
	ppuReferenceRegex   = regexp.MustCompile(`^([\d.,]+)\s*(.+)$`)
)

// parseDecimalEU parses a locale-formatted decimal where both "." and ","
// occur in the wild. A comma followed by 1-2 digits at end of string is a
// decimal separator ("1,39"); any other comma is a thousands separator.
func parseDecimalEU(s string) (float64, bool) {
	clean := strings.TrimSpace(nonNumericRegex.ReplaceAllString(s, ""))
	if clean == "" {
		return 0, false
	}
	switch {
	case decimalCommaRegex.MatchString(clean):
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case thousandsDotRegex.MatchString(clean):
		// "1.500" is fifteen hundred, not one and a half
		clean = strings.ReplaceAll(clean, ".", "")
	default:
		clean = strings.ReplaceAll(clean, ",", "")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// convertToBase converts a value in a recognized sub-unit to the canonical
// base unit (kg or L). Count tokens are not handled here.
func convertToBase(value float64, unit string) (Amount, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg", "kilo", "kilogram":
		return Amount{domain.UnitKg, value}, true
	case "g", "gram", "grams":
		return Amount{domain.UnitKg, value / 1000}, true
	case "l", "lt", "liter", "litre", "liters":
		return Amount{domain.UnitLiter, value}, true
	case "ml", "milliliter":
		return Amount{domain.UnitLiter, value / 1000}, true
	case "cl", "centiliter":
		return Amount{domain.UnitLiter, value / 100}, true
	case "dl", "deciliter":
		return Amount{domain.UnitLiter, value / 10}, true
	}
	return Amount{}, false
}

// ParseAmount parses free package text ("500 g", "1,5 kg", "6 x 330 ml",
// "330 ml x 6", "2-pack", "13 st") into a canonical amount. Returns false
// on no match or a non-positive amount; callers fall back to one count unit.
func ParseAmount(text string) (Amount, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Amount{}, false
	}

	if m := multipackLeadRegex.FindStringSubmatch(t); m != nil {
		count, _ := strconv.Atoi(m[1])
		val, ok := parseDecimalEU(m[2])
		if ok {
			if each, ok := convertToBase(val, m[3]); ok && count > 0 && each.Value > 0 {
				return Amount{each.Unit, float64(count) * each.Value}, true
			}
		}
	}

	if m := multipackTrailRegex.FindStringSubmatch(t); m != nil {
		val, ok := parseDecimalEU(m[1])
		count, _ := strconv.Atoi(m[3])
		if ok {
			if each, ok := convertToBase(val, m[2]); ok && count > 0 && each.Value > 0 {
				return Amount{each.Unit, float64(count) * each.Value}, true
			}
		}
	}

	if m := weightRegex.FindStringSubmatch(t); m != nil {
		if val, ok := parseDecimalEU(m[1]); ok {
			if a, ok := convertToBase(val, m[2]); ok && a.Value > 0 {
				return a, true
			}
		}
	}

	if m := volumeRegex.FindStringSubmatch(t); m != nil {
		if val, ok := parseDecimalEU(m[1]); ok {
			if a, ok := convertToBase(val, m[2]); ok && a.Value > 0 {
				return a, true
			}
		}
	}

	if m := countRegex.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return Amount{domain.UnitPiece, float64(n)}, true
		}
	}

	return Amount{}, false
}

// ParsePricePerUnit parses a store-reported price-per-unit string such as
// "1.59 / 100 g", "€2,49/kg" or "0.89/st" into a price expressed in the
// canonical unit. Source-reported values are authoritative when present, so
// this is preferred over re-deriving from package size.
func ParsePricePerUnit(text string) (Amount, bool) {
	parts := strings.SplitN(text, "/", 2)
	if len(parts) != 2 {
		return Amount{}, false
	}
	price, ok := parseDecimalEU(parts[0])
	if !ok || price <= 0 {
		return Amount{}, false
	}

	ref := strings.ToLower(strings.TrimSpace(parts[1]))
	if ref == "" {
		return Amount{}, false
	}

	// The reference side is "unit" or "amount unit", e.g. "kg" or "100 g".
	refAmount := 1.0
	unitToken := ref
	if m := ppuReferenceRegex.FindStringSubmatch(ref); m != nil {
		if v, ok := parseDecimalEU(m[1]); ok && v > 0 {
			refAmount = v
			unitToken = strings.TrimSpace(m[2])
		}
	}

	if base, ok := convertToBase(refAmount, unitToken); ok && base.Value > 0 {
		return Amount{base.Unit, price / base.Value}, true
	}
	if isCountToken(unitToken) {
		return Amount{domain.UnitPiece, price / refAmount}, true
	}
	return Amount{}, false
}

func isCountToken(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "st", "stuk", "stuks", "stukken", "piece", "pieces", "rol", "doos", "pak":
		return true
	}
	return false
}
