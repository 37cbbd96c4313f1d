// Package fixtures generates valid random post inputs for seeding and
// tests. Generation is pure: no store access, no global state beyond the
// random source.
package fixtures

import (
	"fmt"
	"math/rand"

	"inkwell/app/models"
)

var titles = []string{
	"Notes on a Small Garden",
	"What I Learned Shipping Nothing",
	"The Case for Boring Tools",
	"A Field Guide to Stale Drafts",
	"Reading Logs, Slowly",
	"On Writing Less",
	"Coffee, Keyboards, and Compromise",
	"Everything Is a Queue",
}

var paragraphs = []string{
	"There is a particular kind of quiet that settles over a project once the last easy problem is gone.",
	"I keep coming back to the same idea: most systems fail at the seams, not in the middle.",
	"The notebook says one thing, the commit history says another, and the truth is somewhere in the diff.",
	"Nobody plans to build a monolith. It accretes, one reasonable decision at a time.",
	"The best feedback I ever got was a single word in the margin: why?",
	"Half of maintenance is remembering what past-you was worried about.",
}

var firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Radia", "Ken"}
var lastNames = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Perlman", "Thompson"}

// RandomAuthor returns a valid random structured author.
func RandomAuthor(rng *rand.Rand) *models.Author {
	return &models.Author{
		FirstName: firstNames[rng.Intn(len(firstNames))],
		LastName:  lastNames[rng.Intn(len(lastNames))],
	}
}

// RandomPostInput returns a valid random create input.
func RandomPostInput(rng *rand.Rand) *models.PostInput {
	return &models.PostInput{
		Title:   fmt.Sprintf("%s #%d", titles[rng.Intn(len(titles))], rng.Intn(1000)),
		Content: paragraphs[rng.Intn(len(paragraphs))] + " " + paragraphs[rng.Intn(len(paragraphs))],
		Author:  RandomAuthor(rng),
	}
}

// RandomPostInputs returns n valid random create inputs.
func RandomPostInputs(rng *rand.Rand, n int) []*models.PostInput {
	inputs := make([]*models.PostInput, 0, n)
	for i := 0; i < n; i++ {
		inputs = append(inputs, RandomPostInput(rng))
	}
	return inputs
}
