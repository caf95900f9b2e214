package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	apostrophesRe = regexp.MustCompile("[’'`]")
	stopwordsRe   = regexp.MustCompile(`\b(perk|card|weapon|outfit|strike|claws?)\b`)
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9]+`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// NormalizeLookupKey reduces a card name to a fuzzy lookup key: lowercase,
// apostrophes removed, a small stoplist of filler words dropped, punctuation
// collapsed to single spaces. "Bloody Mess (Perk Card)" and "bloody mess"
// produce the same key.
func NormalizeLookupKey(s string) string {
	key := strings.ToLower(s)
	key = apostrophesRe.ReplaceAllString(key, "")
	key = stopwordsRe.ReplaceAllString(key, "")
	key = nonAlnumRe.ReplaceAllString(key, " ")
	key = spacesRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// NormalizeNameKey reduces a name to its exact-match lookup key.
func NormalizeNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeUnit coerces a raw unit record into a UnitDefinition. Missing or
// mistyped fields degrade to safe defaults; the catalog is external data and
// normalization never fails.
func NormalizeUnit(raw map[string]any) UnitDefinition {
	unit := UnitDefinition{
		ID:       asString(raw["id"]),
		Name:     strings.TrimSpace(asString(raw["name"])),
		Cost:     asInt(raw["cost"]),
		Factions: asStringSlice(raw["factions"]),
		Unique:   asBool(raw["unique"]),
		Prereq:   make(map[string]bool),
		Access:   make(map[Category]bool),
	}

	prereq := asMap(raw["prereq"])
	for _, w := range WeaponTypes {
		unit.Prereq[string(w)] = asBool(prereq[string(w)])
	}
	unit.Prereq[PrereqPowerArmor] = asBool(prereq[PrereqPowerArmor])
	unit.Prereq[PrereqUpgrades] = asBool(prereq[PrereqUpgrades])

	access := asMap(raw["access"])
	for _, cat := range AccessCategories {
		unit.Access[cat] = asBool(access[string(cat)])
	}

	unit.Equipped = NormalizeEquippedEntries(raw["equipped"])

	return unit
}

// NormalizeItem coerces a raw item record into a CardDefinition, filling
// every weapon and category flag explicitly and precomputing the mod type
// and picker groups.
func NormalizeItem(raw map[string]any) CardDefinition {
	item := CardDefinition{
		ID:            asString(raw["id"]),
		Name:          strings.TrimSpace(asString(raw["name"])),
		Cost:          asInt(raw["cost"]),
		Unique:        asBool(raw["unique"]),
		IsMod:         asBool(raw["is_mod"]),
		Weapons:       make(map[WeaponType]bool),
		Categories:    make(map[Category]bool),
		Factions:      asStringSlice(raw["factions"]),
		FactionLimits: asIntMap(raw["faction_limits"]),
		Aliases:       asStringSlice(raw["aliases"]),
	}

	weapon := asMap(raw["weapon"])
	for _, w := range WeaponTypes {
		item.Weapons[w] = asBool(weapon[string(w)])
	}

	cats := asMap(raw["cats"])
	for _, cat := range Categories {
		item.Categories[cat] = asBool(cats[string(cat)])
	}

	for _, target := range asStringSlice(raw["mod_targets"]) {
		item.ModTargets = append(item.ModTargets, ModType(target))
	}

	item.ModType = ResolveModType(&item)
	item.Groups = DeriveGroups(&item)

	return item
}

// Coercion helpers: the raw catalog is untyped JSON, so every field read
// degrades to a zero value instead of failing.

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return formatNumber(s)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b == "true" || b == "1"
	}
	return false
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	var result []string
	for _, entry := range raw {
		if s := asString(entry); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func asIntMap(v any) map[string]int {
	raw := asMap(v)
	if raw == nil {
		return nil
	}
	result := make(map[string]int, len(raw))
	for key, val := range raw {
		result[key] = asInt(val)
	}
	return result
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
