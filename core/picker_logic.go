package core

import (
	"cmp"
	"slices"
	"strings"
)

// PickerItem is one row of a filterable picker. Search, when set, replaces
// Label as the text matched against the query.
type PickerItem struct {
	ID      string
	Label   string
	Section string
	Meta    string
	Search  string
	// Group keeps related items (a column's ascending and descending
	// entries) next to each other when filtering reorders a section.
	Group   string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is the filter/cursor state machine shared by every picker screen.
// Items keep their section grouping; within a section, better fuzzy matches
// sort first.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "up", "ctrl+p":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "ctrl+n":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

func (p *Picker) SectionOrder() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool, len(p.items))
	out := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if seen[item.Section] {
			continue
		}
		seen[item.Section] = true
		out = append(out, item.Section)
	}
	return out
}

type pickerGroup struct {
	key   string
	first int
	best  int
	items []PickerItem
}

// rebuildFiltered keeps sections in their first-seen order. Inside a section,
// items that share a Group stay together and the group ranks by its best
// match; ungrouped items form groups of one.
func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	terms := strings.Fields(strings.ToLower(p.query))
	bySection := make(map[string][]*pickerGroup)
	for idx, item := range p.items {
		score, ok := matchTerms(item.searchText(), terms)
		if !ok {
			continue
		}
		groups := bySection[item.Section]
		var g *pickerGroup
		if item.Group != "" {
			for _, existing := range groups {
				if existing.key == item.Group {
					g = existing
					break
				}
			}
		}
		if g == nil {
			g = &pickerGroup{key: item.Group, first: idx, best: score}
			bySection[item.Section] = append(groups, g)
		}
		g.best = max(g.best, score)
		g.items = append(g.items, item)
	}

	out := make([]PickerItem, 0, len(p.items))
	for _, section := range p.SectionOrder() {
		groups := bySection[section]
		slices.SortFunc(groups, func(a, b *pickerGroup) int {
			if c := cmp.Compare(b.best, a.best); c != 0 {
				return c
			}
			return cmp.Compare(a.first, b.first)
		})
		for _, g := range groups {
			out = append(out, g.items...)
		}
	}
	p.filtered = out
	p.cursor = max(0, min(p.cursor, len(p.filtered)-1))
}

func (it PickerItem) searchText() string {
	if s := strings.TrimSpace(it.Search); s != "" {
		return strings.ToLower(s)
	}
	return strings.ToLower(it.Label)
}

// matchTerms requires every term to match text as a subsequence and sums the
// term scores. An empty query matches everything with score 0.
func matchTerms(text string, terms []string) (int, bool) {
	total := 0
	for _, term := range terms {
		score, ok := termScore(text, term)
		if !ok {
			return 0, false
		}
		total += score
	}
	if len(terms) > 0 && strings.Join(terms, " ") == strings.TrimSpace(text) {
		total += 20
	}
	return total, true
}

// termScore tries the subsequence match from every word start that begins
// with the term's first byte, then from the leftmost occurrence, and keeps the
// best. Both text and term are lower case.
func termScore(text, term string) (int, bool) {
	if term == "" {
		return 0, true
	}
	best, found := 0, false
	for i := 0; i < len(text); i++ {
		if text[i] != term[0] {
			continue
		}
		if wordStart := i == 0 || text[i-1] == ' '; !wordStart && found {
			continue
		}
		if score, ok := subsequenceScore(text, term, i); ok && (!found || score > best) {
			best, found = score, true
		}
	}
	return best, found
}

func subsequenceScore(text, term string, from int) (int, bool) {
	score := len(term)
	if from == 0 || text[from-1] == ' ' {
		score += 10
	}
	prev := from
	for i := 1; i < len(term); i++ {
		j := strings.IndexByte(text[prev+1:], term[i])
		if j < 0 {
			return 0, false
		}
		next := prev + 1 + j
		if next == prev+1 {
			score += 3
		}
		prev = next
	}
	return score, true
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
