// Package moodboard scores the tile catalog against questionnaire answers and
// assembles the four-section reference board. Tile choice is a pure function
// of the answers and the mood seed; image paths depend only on the resolved
// style direction.
package moodboard

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"server/internal/brief"
	"server/internal/domain"
	"server/internal/seedrand"
)

// BoardTile is a selected tile with its resolved caption and image path.
type BoardTile struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Src     string `json:"src"`
	Alt     string `json:"alt"`
}

// BoardSection is one populated board section.
type BoardSection struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Tiles []BoardTile `json:"tiles"`
}

// Board is the full composed moodboard.
type Board struct {
	Sections []BoardSection `json:"sections"`
}

// seedAnswers is the canonical serialization of every answer that can affect
// tile choice. Field order and the null/empty conventions are fixed; changing
// either would silently reseed every stored selection.
type seedAnswers struct {
	Style         []domain.Style        `json:"style"`
	Privacy       domain.Privacy        `json:"privacy"`
	IndoorOutdoor domain.IndoorOutdoor  `json:"indoorOutdoor"`
	Staffing      domain.Staffing       `json:"staffing"`
	Boh           domain.BohSeparation  `json:"boh"`
	Stairs        domain.Stairs         `json:"stairs"`
	WhoStays      *domain.WhoStays      `json:"whoStays"`
	MaterialMood  []domain.MaterialMood `json:"materialMood"`
	Pool          *domain.Pool          `json:"pool"`
	Parking       *domain.Parking       `json:"parking"`
	FlexSpaces    []domain.FlexSpace    `json:"flexSpaces"`
}

func seedBase(req *domain.BriefRequest, moodSeed uint32) uint32 {
	answers := seedAnswers{
		Style:         req.Style,
		Privacy:       req.Privacy,
		IndoorOutdoor: req.IndoorOutdoor,
		Staffing:      req.Staffing,
		Boh:           req.Boh,
		Stairs:        req.Stairs,
		MaterialMood:  req.MaterialMood,
		FlexSpaces:    req.FlexSpaces,
	}
	if answers.Style == nil {
		answers.Style = []domain.Style{}
	}
	if answers.MaterialMood == nil {
		answers.MaterialMood = []domain.MaterialMood{}
	}
	if answers.FlexSpaces == nil {
		answers.FlexSpaces = []domain.FlexSpace{}
	}
	if req.WhoStays != "" {
		answers.WhoStays = &req.WhoStays
	}
	if req.Pool != "" {
		answers.Pool = &req.Pool
	}
	if req.Parking != "" {
		answers.Parking = &req.Parking
	}
	encoded, _ := json.Marshal(answers)
	return seedrand.Hash(string(encoded)) ^ (moodSeed * 2654435761)
}

type keywordSets struct {
	required map[string]bool
	optional map[string]bool
}

func buildKeywordSets(req *domain.BriefRequest) keywordSets {
	required := map[string]bool{}
	for _, group := range [][]string{
		styleKeywords[brief.PrimaryStyle(req)],
		privacyKeywords[req.Privacy],
		indoorOutdoorKeywords[req.IndoorOutdoor],
		staffingKeywords[req.Staffing],
		bohKeywords[req.Boh],
		stairsKeywords[req.Stairs],
	} {
		for _, kw := range group {
			required[kw] = true
		}
	}

	optional := map[string]bool{}
	addOptional := func(kws []string) {
		for _, kw := range kws {
			optional[kw] = true
		}
	}
	if len(req.Style) > 1 {
		addOptional(styleKeywords[req.Style[1]])
	}
	if req.WhoStays != "" {
		addOptional(whoStaysKeywords[req.WhoStays])
	}
	for _, mood := range req.MaterialMood {
		addOptional(materialMoodKeywords[mood])
	}
	if req.Pool != "" {
		addOptional(poolKeywords[req.Pool])
	}
	if req.Parking != "" {
		addOptional(parkingKeywords[req.Parking])
	}
	for _, space := range req.FlexSpaces {
		addOptional(flexKeywords[space])
	}
	return keywordSets{required: required, optional: optional}
}

func scoreTile(tile *Tile, kw keywordSets) int {
	score := 0
	for _, tag := range tile.Tags {
		switch {
		case kw.required[tag]:
			score += 2
		case kw.optional[tag]:
			score++
		}
	}
	return score
}

type scoredTile struct {
	tile  *Tile
	score int
	tie   uint32
}

// selectSection returns the three best tiles for a section: score descending,
// ties broken by per-seed tile hash ascending. When nothing scores at all the
// section falls back to its curated defaults.
func selectSection(tiles []*Tile, kw keywordSets, seed uint32, sectionID string) []*Tile {
	scored := make([]scoredTile, len(tiles))
	maxScore := 0
	for i, tile := range tiles {
		s := scoreTile(tile, kw)
		scored[i] = scoredTile{tile: tile, score: s, tie: seedrand.Hash(fmt.Sprintf("%d-%s", seed, tile.ID))}
		if s > maxScore {
			maxScore = s
		}
	}

	if maxScore == 0 {
		defaults := map[string]bool{}
		for _, id := range defaultTileIDs[sectionID] {
			defaults[id] = true
		}
		var candidates []scoredTile
		for _, entry := range scored {
			if defaults[entry.tile.ID] {
				candidates = append(candidates, entry)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].tie < candidates[j].tie })
		if len(candidates) >= 3 {
			candidates = candidates[:3]
		} else {
			sort.SliceStable(scored, func(i, j int) bool { return scored[i].tie < scored[j].tie })
			seen := map[string]bool{}
			for _, entry := range candidates {
				seen[entry.tile.ID] = true
			}
			for _, entry := range scored {
				if len(candidates) >= 3 {
					break
				}
				if !seen[entry.tile.ID] {
					seen[entry.tile.ID] = true
					candidates = append(candidates, entry)
				}
			}
		}
		out := make([]*Tile, len(candidates))
		for i, entry := range candidates {
			out[i] = entry.tile
		}
		return out
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].tie < scored[j].tie
	})
	count := min(3, len(scored))
	out := make([]*Tile, count)
	for i := 0; i < count; i++ {
		out[i] = scored[i].tile
	}
	return out
}

// formatCaption lowercases the tile's caption tokens and layers in answer
// cues: secluded requests always surface "screened", outdoor-first adds
// "breezy" when there is room.
func formatCaption(tile *Tile, req *domain.BriefRequest) string {
	tokens := make([]string, len(tile.CaptionTokens))
	for i, tok := range tile.CaptionTokens {
		tokens[i] = strings.ToLower(strings.TrimSpace(tok))
	}
	contains := func(want string) bool {
		for _, tok := range tokens {
			if tok == want {
				return true
			}
		}
		return false
	}
	if req.Privacy == domain.PrivacySecluded && !contains("screened") {
		if len(tokens) < 3 {
			tokens = append(tokens, "screened")
		} else {
			tokens[len(tokens)-1] = "screened"
		}
	}
	if req.IndoorOutdoor == domain.OutdoorFirst && !contains("breezy") && len(tokens) < 3 {
		tokens = append(tokens, "breezy")
	}
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.Join(tokens, " | ")
}

func tileSrc(tile *Tile, style domain.Style) string {
	slug, ok := styleSlugs[style]
	if !ok {
		slug = styleSlugs[domain.StyleTropicalModern]
	}
	return fmt.Sprintf("/moodboard/%s/%s/%s.jpg", slug, sectionAssetSlugs[tile.Section], tile.AssetID)
}

// Compose builds the four-section board for a validated request.
func Compose(req *domain.BriefRequest, moodSeed uint32) Board {
	style := brief.PrimaryStyle(req)
	kw := buildKeywordSets(req)
	base := seedBase(req, moodSeed)

	board := Board{Sections: make([]BoardSection, 0, len(sectionDefs))}
	for i, section := range sectionDefs {
		var sectionTiles []*Tile
		for j := range tileLibrary {
			if tileLibrary[j].Section == section.ID {
				sectionTiles = append(sectionTiles, &tileLibrary[j])
			}
		}
		rng := seedrand.NewLCG(base + uint32(i)*977)
		jitter := uint32(rng.Float64() * 1000)
		selected := selectSection(sectionTiles, kw, base+jitter, section.ID)

		tiles := make([]BoardTile, len(selected))
		for j, tile := range selected {
			tiles[j] = BoardTile{
				ID:      tile.ID,
				Kind:    tile.Kind,
				Title:   tile.Title,
				Caption: formatCaption(tile, req),
				Src:     tileSrc(tile, style),
				Alt:     tile.Title,
			}
		}
		board.Sections = append(board.Sections, BoardSection{ID: section.ID, Label: section.Label, Tiles: tiles})
	}
	return board
}

var paletteMap = map[domain.Style][]string{
	domain.StyleTropicalModern:   {"#f6efe6", "#d9c4a5", "#9bb49e", "#3a9d86", "#2f2b23", "#c96244"},
	domain.StyleContemporaryThai: {"#f1e8dd", "#bfa57a", "#2a2a2a", "#4b6b57", "#7a4a2b", "#c6c2b8"},
	domain.StyleResortMinimal:    {"#f4f1eb", "#d9d1c3", "#b4a996", "#7f7569", "#4e4a45", "#c2b7a3"},
	domain.StyleRusticMinimal:    {"#f3efe8", "#d2c6b4", "#8b7f73", "#5f544c", "#a67c52", "#2f2f2f"},
	domain.StyleMidCentury:       {"#f2e8d8", "#d6b38e", "#8c5f3c", "#5a6b5f", "#2f3a35", "#c56b4e"},
	domain.StyleEcoModern:        {"#eef2e8", "#c7d0bf", "#8b9a86", "#4b5a4c", "#2f2f2b", "#a89b7a"},
}

var materialMap = map[domain.Style][]string{
	domain.StyleTropicalModern:   {"Teak slats", "Limestone", "Palm weave", "Matte bronze", "Basalt stone", "Linen drapery"},
	domain.StyleContemporaryThai: {"Dark timber", "Textured plaster", "Black steel", "Chiang Mai stone", "Rattan", "Silk panels"},
	domain.StyleResortMinimal:    {"Travertine", "Smooth plaster", "Bleached oak", "Brushed brass", "Linen upholstery", "Stone aggregate"},
	domain.StyleRusticMinimal:    {"Weathered oak", "Microcement", "Handmade tile", "Woven jute", "Charred timber", "Limewash"},
	domain.StyleMidCentury:       {"Walnut wood", "Terrazzo", "Bronze mesh", "Patterned tile", "Cane panels", "Textured plaster"},
	domain.StyleEcoModern:        {"Bamboo", "Recycled stone", "Low-VOC plaster", "Compressed earth", "Linen", "Weathered steel"},
}

// Summary flattens the composed board into the response shape. With
// placeholders enabled every tile image becomes an inline SVG data URL so the
// response renders without any asset hosting.
func Summary(req *domain.BriefRequest, usePlaceholders bool) domain.MoodboardSummary {
	style := brief.PrimaryStyle(req)
	board := Compose(req, 1)

	var tiles []domain.MoodTileRef
	for _, section := range board.Sections {
		for _, tile := range section.Tiles {
			ref := domain.MoodTileRef{Caption: tile.Title, Query: tile.Caption, ImageURL: tile.Src}
			if usePlaceholders {
				ref.ImageURL = placeholderDataURL(tile.Title)
			}
			tiles = append(tiles, ref)
		}
	}
	return domain.MoodboardSummary{
		Palette:   paletteMap[style],
		Materials: materialMap[style],
		Tiles:     tiles,
	}
}

// placeholderDataURL renders a neutral labeled card as an inline SVG data URL.
func placeholderDataURL(label string) string {
	var safe strings.Builder
	for _, r := range label {
		if r == ' ' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			safe.WriteRune(r)
		}
	}
	svg := fmt.Sprintf(`<svg xmlns='http://www.w3.org/2000/svg' width='800' height='600'>
    <defs>
      <linearGradient id='g' x1='0' x2='1' y1='0' y2='1'>
        <stop offset='0%%' stop-color='#f6efe6'/>
        <stop offset='100%%' stop-color='#efe1d0'/>
      </linearGradient>
    </defs>
    <rect width='100%%' height='100%%' fill='url(#g)'/>
    <rect x='60' y='60' width='680' height='480' rx='32' fill='white' opacity='0.7'/>
    <text x='50%%' y='50%%' dominant-baseline='middle' text-anchor='middle' fill='#6c573c' font-family='Arial' font-size='22'>%s</text>
  </svg>`, safe.String())
	return "data:image/svg+xml;utf8," + strings.ReplaceAll(url.QueryEscape(svg), "+", "%20")
}
