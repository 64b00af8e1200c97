package tripoley

import (
	"fmt"

	"github.com/decred/slog"
)

// SectionLabel names one of the nine fixed chip areas on the layout.
type SectionLabel string

const (
	SectionTen       SectionLabel = "Ten"
	SectionJack      SectionLabel = "Jack"
	SectionQueen     SectionLabel = "Queen"
	SectionKing      SectionLabel = "King"
	SectionAce       SectionLabel = "Ace"
	SectionEightNine SectionLabel = "8-9-10"
	SectionKingQueen SectionLabel = "King-Queen"
	SectionKitty     SectionLabel = "Kitty"
	SectionPot       SectionLabel = "POT"
)

// Category groups sections into the areas a player may bet on.
type Category string

const (
	CategoryMichigan Category = "michigan"
	CategoryHearts   Category = "hearts"
	CategoryPoker    Category = "poker"
	CategoryKitty    Category = "kitty"
)

// SectionLabels lists every section in layout order.
var SectionLabels = []SectionLabel{
	SectionTen, SectionJack, SectionQueen, SectionKing, SectionAce,
	SectionEightNine, SectionKingQueen, SectionKitty, SectionPot,
}

// CategorySections maps each betting category to its member sections.
var CategorySections = map[Category][]SectionLabel{
	CategoryMichigan: {SectionTen, SectionJack, SectionQueen, SectionPot},
	CategoryHearts:   {SectionKing, SectionAce},
	CategoryPoker:    {SectionEightNine, SectionKingQueen},
	CategoryKitty:    {SectionKitty},
}

// canonicalSection is where a whole category bet lands. Crediting one section
// per category keeps amounts integral and deterministic.
var canonicalSection = map[Category]SectionLabel{
	CategoryMichigan: SectionPot,
	CategoryHearts:   SectionKing,
	CategoryPoker:    SectionEightNine,
	CategoryKitty:    SectionKitty,
}

// PotSection is one labeled chip area. Cards may be parked on a section
// (e.g. the stop card that last collected it) for display purposes.
type PotSection struct {
	Label SectionLabel
	Chips int64
	Cards []Card
}

// Pot tracks all nine sections of the layout.
type Pot struct {
	log      slog.Logger
	sections []*PotSection
}

// NewPot creates an empty pot with all nine sections.
func NewPot(log slog.Logger) *Pot {
	p := &Pot{log: log}
	for _, label := range SectionLabels {
		p.sections = append(p.sections, &PotSection{Label: label})
	}
	return p
}

func (p *Pot) logger() slog.Logger {
	if p.log == nil {
		p.log = slog.Disabled
	}
	return p.log
}

// Section returns the section with the given label, or nil if no such
// section exists.
func (p *Pot) Section(label SectionLabel) *PotSection {
	for _, s := range p.sections {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// Sections returns the sections in layout order.
func (p *Pot) Sections() []*PotSection {
	return p.sections
}

// CreditCategory adds a category bet onto the category's canonical section.
func (p *Pot) CreditCategory(cat Category, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("pot: negative credit %d", amount)
	}
	label, ok := canonicalSection[cat]
	if !ok {
		return fmt.Errorf("pot: unknown category %q", cat)
	}
	p.Section(label).Chips += amount
	return nil
}

// Credit adds chips directly onto a named section.
func (p *Pot) Credit(label SectionLabel, amount int64) error {
	s := p.Section(label)
	if s == nil {
		return fmt.Errorf("pot: unknown section %q", label)
	}
	if amount < 0 {
		return fmt.Errorf("pot: negative credit %d", amount)
	}
	s.Chips += amount
	return nil
}

// Collect empties the named section and returns its chips.
func (p *Pot) Collect(label SectionLabel) (int64, error) {
	s := p.Section(label)
	if s == nil {
		return 0, fmt.Errorf("pot: unknown section %q", label)
	}
	amount := s.Chips
	s.Chips = 0
	s.Cards = nil
	p.logger().Debugf("section %s collected for %d chips", label, amount)
	return amount, nil
}

// TotalChips sums the chips across every section.
func (p *Pot) TotalChips() int64 {
	var total int64
	for _, s := range p.sections {
		total += s.Chips
	}
	return total
}

// clone returns an independent deep copy of the pot.
func (p *Pot) clone() *Pot {
	cp := &Pot{log: p.log}
	for _, s := range p.sections {
		cp.sections = append(cp.sections, &PotSection{
			Label: s.Label,
			Chips: s.Chips,
			Cards: append([]Card(nil), s.Cards...),
		})
	}
	return cp
}
