package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno-gym/card"
	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
	"github.com/ratel-online/uno-gym/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardDeck() []card.Card {
	return game.Build(color.Table(), consts.StandardWildCount)
}

func TestBuild(t *testing.T) {
	t.Run("emits_the_documented_counts_per_color", func(t *testing.T) {
		cards := standardDeck()
		require.Len(t, cards, 104)

		for _, tableColor := range color.Table() {
			for value := 0; value <= 8; value++ {
				assert.Equal(t, 2, countCards(cards, card.NewNumber(tableColor, value)))
			}
			assert.Equal(t, 2, countCards(cards, card.NewDraw(tableColor, 2)))
			assert.Equal(t, 2, countCards(cards, card.NewReverse(tableColor)))
			assert.Equal(t, 2, countCards(cards, card.NewSkip(tableColor)))
		}
		assert.Equal(t, 4, countCards(cards, card.NewWild()))
		assert.Equal(t, 4, countCards(cards, card.NewWildDraw(consts.StandardWildDrawAmount)))
	})

	t.Run("is_deterministic", func(t *testing.T) {
		require.Equal(t, standardDeck(), standardDeck())
	})

	t.Run("honors_the_wild_count", func(t *testing.T) {
		cards := game.Build([]color.Color{color.Red}, 2)
		require.Len(t, cards, 24+4)
		assert.Equal(t, 2, countCards(cards, card.NewWild()))
		assert.Equal(t, 2, countCards(cards, card.NewWildDraw(consts.StandardWildDrawAmount)))
	})
}

func TestShuffleAndReveal(t *testing.T) {
	t.Run("reveals_a_first_playable_top_card", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			deck, pile := game.ShuffleAndReveal(standardDeck(), rand.New(rand.NewSource(seed)))
			require.True(t, pile.Top().FirstPlayable())
			require.GreaterOrEqual(t, pile.Size(), 1)
			require.Equal(t, 104, deck.Size()+pile.Size())
		}
	})

	t.Run("conserves_every_card_exactly_once", func(t *testing.T) {
		built := standardDeck()
		deck, pile := game.ShuffleAndReveal(built, rand.New(rand.NewSource(3)))
		together := append(deck.Draw(deck.Size()), pile.Cards()...)
		require.ElementsMatch(t, built, together)
	})

	t.Run("is_reproducible_for_a_fixed_seed", func(t *testing.T) {
		deckOne, pileOne := game.ShuffleAndReveal(standardDeck(), rand.New(rand.NewSource(7)))
		deckTwo, pileTwo := game.ShuffleAndReveal(standardDeck(), rand.New(rand.NewSource(7)))
		require.Equal(t, pileOne.Cards(), pileTwo.Cards())
		require.Equal(t, deckOne.Draw(deckOne.Size()), deckTwo.Draw(deckTwo.Size()))
	})
}

func TestDeal(t *testing.T) {
	t.Run("deals_contiguous_blocks_from_the_front", func(t *testing.T) {
		ordered := standardDeck()
		deck := game.NewDeck(standardDeck())

		hands, err := game.Deal(deck, 3, 7)
		require.NoError(t, err)
		require.Len(t, hands, 3)
		for seat := 0; seat < 3; seat++ {
			require.Equal(t, ordered[seat*7:(seat+1)*7], hands[seat].Cards())
		}
		assert.Equal(t, 104-21, deck.Size())
	})

	t.Run("fails_when_the_deck_is_too_small", func(t *testing.T) {
		_, err := game.Deal(game.NewDeck(standardDeck()), 20, 7)
		require.Equal(t, consts.ErrorsInsufficientCards, err)
	})
}

func countCards(cards []card.Card, searched card.Card) int {
	count := 0
	for _, candidate := range cards {
		if candidate.Equal(searched) {
			count++
		}
	}
	return count
}
