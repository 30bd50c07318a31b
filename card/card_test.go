package card_test

import (
	"testing"

	"github.com/ratel-online/uno-gym/card"
	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayable(t *testing.T) {
	tests := []struct {
		name      string
		candidate card.Card
		top       card.Card
		playable  bool
	}{
		{
			name:      "number_matches_by_color",
			candidate: card.NewNumber(color.Red, 5),
			top:       card.NewNumber(color.Red, 8),
			playable:  true,
		},
		{
			name:      "number_matches_by_value",
			candidate: card.NewNumber(color.Blue, 5),
			top:       card.NewNumber(color.Red, 5),
			playable:  true,
		},
		{
			name:      "number_without_any_match",
			candidate: card.NewNumber(color.Blue, 5),
			top:       card.NewNumber(color.Red, 8),
			playable:  false,
		},
		{
			name:      "number_never_matches_power_card_value",
			candidate: card.NewNumber(color.Blue, 0),
			top:       card.NewSkip(color.Red),
			playable:  false,
		},
		{
			name:      "number_matches_power_card_color",
			candidate: card.NewNumber(color.Red, 3),
			top:       card.NewDraw(color.Red, 2),
			playable:  true,
		},
		{
			name:      "skip_matches_by_color_only",
			candidate: card.NewSkip(color.Green),
			top:       card.NewNumber(color.Green, 2),
			playable:  true,
		},
		{
			name:      "skip_without_color_match",
			candidate: card.NewSkip(color.Green),
			top:       card.NewNumber(color.Red, 2),
			playable:  false,
		},
		{
			name:      "wild_always_playable",
			candidate: card.NewWild(),
			top:       card.NewNumber(color.Red, 2),
			playable:  true,
		},
		{
			name:      "wild_draw_four_always_playable",
			candidate: card.NewWildDraw(4),
			top:       card.NewSkip(color.Yellow),
			playable:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.playable, test.candidate.Playable(test.top))
		})
	}
}

func TestResolveColor(t *testing.T) {
	t.Run("resolves_a_wild_card_exactly_once", func(t *testing.T) {
		wildCard := card.NewWild()
		resolved, err := wildCard.ResolveColor(color.Green)
		require.NoError(t, err)
		assert.Equal(t, color.Green, resolved.Color())

		_, err = resolved.ResolveColor(color.Red)
		assert.Equal(t, consts.ErrorsColorResolved, err)
	})

	t.Run("resolved_wild_matches_by_color", func(t *testing.T) {
		wildCard := card.NewWild()
		resolved, err := wildCard.ResolveColor(color.Green)
		require.NoError(t, err)
		assert.True(t, card.NewNumber(color.Green, 7).Playable(resolved))
		assert.False(t, card.NewNumber(color.Red, 7).Playable(resolved))
	})

	t.Run("forbidden_on_non_wild_cards", func(t *testing.T) {
		_, err := card.NewNumber(color.Red, 5).ResolveColor(color.Green)
		assert.Equal(t, consts.ErrorsNotWildCard, err)

		_, err = card.NewSkip(color.Red).ResolveColor(color.Green)
		assert.Equal(t, consts.ErrorsNotWildCard, err)
	})

	t.Run("rejects_the_none_color", func(t *testing.T) {
		_, err := card.NewWild().ResolveColor(color.None)
		assert.Equal(t, consts.ErrorsColorInvalid, err)
	})
}

func TestFirstPlayable(t *testing.T) {
	assert.True(t, card.NewNumber(color.Red, 0).FirstPlayable())
	assert.True(t, card.NewDraw(color.Red, 2).FirstPlayable())
	assert.True(t, card.NewSkip(color.Red).FirstPlayable())
	assert.True(t, card.NewReverse(color.Red).FirstPlayable())
	assert.False(t, card.NewWild().FirstPlayable())
	assert.False(t, card.NewWildDraw(4).FirstPlayable())
}

func TestPoints(t *testing.T) {
	assert.Equal(t, 6, card.NewNumber(color.Red, 5).Points())
	assert.Equal(t, 1, card.NewNumber(color.Blue, 0).Points())
	assert.Equal(t, 26, card.NewDraw(color.Red, 2).Points())
	assert.Equal(t, 26, card.NewSkip(color.Red).Points())
	assert.Equal(t, 26, card.NewReverse(color.Red).Points())
	assert.Equal(t, 51, card.NewWild().Points())
	assert.Equal(t, 51, card.NewWildDraw(4).Points())
}

func TestEqual(t *testing.T) {
	assert.True(t, card.NewNumber(color.Red, 5).Equal(card.NewNumber(color.Red, 5)))
	assert.False(t, card.NewNumber(color.Red, 5).Equal(card.NewNumber(color.Red, 6)))
	assert.False(t, card.NewNumber(color.Red, 5).Equal(card.NewSkip(color.Red)))
	assert.True(t, card.NewWild().Equal(card.NewWild()))

	resolved, err := card.NewWild().ResolveColor(color.Red)
	require.NoError(t, err)
	assert.False(t, resolved.Equal(card.NewWild()))
}
