// Package names labels players with plausible display names. The engine
// treats a name source as an opaque func() string, so a fixed list, user
// input, or this generator can all stand in.
package names

import "math/rand"

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Margaret",
	"Steven", "Sandra", "Paul", "Ashley", "Andrew", "Kimberly", "Joshua",
	"Emily", "Kenneth", "Donna", "Kevin", "Michelle", "Brian", "Dorothy",
	"George", "Carol", "Edward", "Amanda", "Ronald", "Melissa",
}

var surnames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

// Generator produces random full names from the embedded lists.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Name returns a random "First Last" pair.
func (g *Generator) Name() string {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := surnames[g.rng.Intn(len(surnames))]
	return first + " " + last
}

// Func adapts the generator to the opaque provider shape the engine takes.
func (g *Generator) Func() func() string {
	return g.Name
}
