// Package finishes selects material boards from the style-genre catalog.
// Selection is a pure function of the requested genres and the mood seed.
package finishes

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/seedrand"
)

// Tone marks how strongly the selected genres agree on a finish.
type Tone string

const (
	ToneCore   Tone = "CORE"
	ToneAccent Tone = "ACCENT"
)

// Pick is a finish chosen for a board section.
type Pick struct {
	Finish
	Tone Tone `json:"tone"`
}

// Section is one populated material section.
type Section struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Picks []Pick `json:"picks"`
}

// Board is the assembled finishes board.
type Board struct {
	Sections []Section `json:"sections"`
	All      []Pick    `json:"all"`
}

// PaletteEntry is one swatch in the derived palette strip.
type PaletteEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// BuildBoard assembles the four material sections for the selected genres.
// Unknown genre names are skipped; a selection that resolves to no genres
// returns nil.
func BuildBoard(genreNames []string, moodSeed uint32) *Board {
	genres := resolveGenres(genreNames)
	if len(genres) == 0 {
		return nil
	}
	genreKey := strings.Join(genreNames, "|")

	board := &Board{}
	for _, section := range MaterialSections {
		candidates := sectionCandidates(genres, section.Key)
		seed := seedrand.Hash(fmt.Sprintf("%d-%s-%s", moodSeed, section.Key, genreKey))
		picks := pickSection(candidates, seed)
		board.Sections = append(board.Sections, Section{Key: section.Key, Label: section.Label, Picks: picks})
		board.All = append(board.All, picks...)
	}
	return board
}

func resolveGenres(names []string) []*Genre {
	var out []*Genre
	for _, name := range names {
		if g, ok := genreByName[name]; ok {
			out = append(out, g)
		}
	}
	return out
}

// sectionCandidates merges each genre's recommendations for one section,
// first-seen order, deduplicated by finish id. A finish recommended by two
// or more genres is tagged CORE, otherwise ACCENT.
func sectionCandidates(genres []*Genre, sectionKey string) []Pick {
	counts := map[string]int{}
	index := map[string]int{}
	var order []Pick
	for _, g := range genres {
		for _, f := range g.sectionFinishes(sectionKey) {
			if _, seen := index[f.ID]; !seen {
				index[f.ID] = len(order)
				order = append(order, Pick{Finish: f})
			}
			counts[f.ID]++
		}
	}
	for i := range order {
		if counts[order[i].ID] >= 2 {
			order[i].Tone = ToneCore
		} else {
			order[i].Tone = ToneAccent
		}
	}
	return order
}

// pickSection fills a section up to four finishes: core consensus first,
// then primary-tier coverage, then any remaining candidates. Each pass
// draws from its own seed offset so earlier passes never disturb later ones.
func pickSection(candidates []Pick, seed uint32) []Pick {
	used := map[string]bool{}
	var picks []Pick

	add := func(pool []Pick, count int, offset uint32) {
		if count <= 0 {
			return
		}
		var avail []Pick
		for _, c := range pool {
			if !used[c.ID] {
				avail = append(avail, c)
			}
		}
		for _, p := range seedrand.Pick(avail, count, seed+offset) {
			used[p.ID] = true
			picks = append(picks, p)
		}
	}

	var core, corePrimary, coreSupporting, primary []Pick
	for _, c := range candidates {
		if c.Tone == ToneCore {
			core = append(core, c)
			if c.Tier == TierPrimary {
				corePrimary = append(corePrimary, c)
			} else {
				coreSupporting = append(coreSupporting, c)
			}
		}
		if c.Tier == TierPrimary {
			primary = append(primary, c)
		}
	}

	coreNeeded := min(2, len(core))
	primaryNeeded := min(2, len(primary))

	add(corePrimary, coreNeeded, 11)
	if len(picks) < coreNeeded {
		add(coreSupporting, coreNeeded-len(picks), 19)
	}
	havePrimary := 0
	for _, p := range picks {
		if p.Tier == TierPrimary {
			havePrimary++
		}
	}
	if havePrimary < primaryNeeded {
		add(primary, primaryNeeded-havePrimary, 27)
	}
	add(candidates, 4-len(picks), 37)

	if len(picks) > 4 {
		picks = picks[:4]
	}
	return picks
}

// BuildPalette derives the six-role palette strip for the selected genres.
// Each role draws one color from the union of the genres' role candidates,
// seeded by the genre combination and role key alone, so the strip is
// stable across mood seeds.
func BuildPalette(genreNames []string) []PaletteEntry {
	genres := resolveGenres(genreNames)
	if len(genres) == 0 {
		return nil
	}
	genreKey := strings.Join(genreNames, "|")

	entries := make([]PaletteEntry, 0, len(PaletteOrder))
	for _, role := range PaletteOrder {
		var pool []string
		seen := map[string]bool{}
		for _, g := range genres {
			for _, c := range roleColors(&g.Palette, role.Key) {
				if !seen[c] {
					seen[c] = true
					pool = append(pool, c)
				}
			}
		}
		color := "#D9D0C2"
		if picked := seedrand.Pick(pool, 1, seedrand.Hash(genreKey+"-"+role.Key)); len(picked) > 0 {
			color = picked[0]
		}
		entries = append(entries, PaletteEntry{Label: role.Label, Color: color})
	}
	return entries
}

func roleColors(p *PaletteRoles, key string) []string {
	switch key {
	case "base":
		return p.Base
	case "stone":
		return p.Stone
	case "timber":
		return p.Timber
	case "shadow":
		return p.Shadow
	case "vegetation":
		return p.Vegetation
	case "metal":
		return p.Metal
	}
	return nil
}

// ThemeChips summarizes the most frequent finish tags across a board as
// display chips, most common first, ties broken by tag hash.
func ThemeChips(picks []Pick) []string {
	chipTitle := cases.Title(language.Und)
	counts := map[string]int{}
	var order []string
	for _, p := range picks {
		for _, tag := range p.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return seedrand.Hash(order[i]) < seedrand.Hash(order[j])
	})
	if len(order) > 6 {
		order = order[:6]
	}
	chips := make([]string, len(order))
	for i, tag := range order {
		chips[i] = chipTitle.String(strings.ReplaceAll(tag, "_", " "))
	}
	return chips
}
