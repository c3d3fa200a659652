package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	randomMocks "github.com/xxreen/MAID-BOT-24H/internal/random/mocks"
)

func TestValidate(t *testing.T) {
	c := New()

	assert.NoError(t, c.Validate(GenreAnime, DifficultyEasy))
	assert.NoError(t, c.Validate(GenreGames, DifficultyHard))

	assert.ErrorIs(t, c.Validate("cooking", DifficultyEasy), ErrUnknownSelection)
	assert.ErrorIs(t, c.Validate(GenreAnime, "impossible"), ErrUnknownSelection)
	assert.ErrorIs(t, c.Validate("", ""), ErrUnknownSelection)
}

func TestPick(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPicker := randomMocks.NewMockPicker(mockCtrl)
	c := New()

	bucket := questions[GenreAnime][DifficultyEasy]
	require.NotEmpty(t, bucket)

	// The picker decides the index within the bucket
	mockPicker.EXPECT().Intn(len(bucket)).Return(len(bucket) - 1)

	q, err := c.Pick(GenreAnime, DifficultyEasy, mockPicker)
	require.NoError(t, err)
	assert.Equal(t, bucket[len(bucket)-1], q)
	assert.NotEmpty(t, q.Question)
	assert.NotEmpty(t, q.Answer)
}

func TestPickUnknownSelection(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPicker := randomMocks.NewMockPicker(mockCtrl)
	c := New()

	_, err := c.Pick("cooking", DifficultyEasy, mockPicker)
	assert.ErrorIs(t, err, ErrUnknownSelection)
}

func TestPickNilPicker(t *testing.T) {
	c := New()

	_, err := c.Pick(GenreAnime, DifficultyEasy, nil)
	assert.ErrorIs(t, err, ErrNilPicker)
}

func TestGenres(t *testing.T) {
	c := New()

	assert.Equal(t, []string{GenreAnime, GenreGames}, c.Genres())
}

func TestAllQuestionsHaveAnswers(t *testing.T) {
	for genre, byDifficulty := range questions {
		for difficulty, bucket := range byDifficulty {
			require.NotEmpty(t, bucket, "%s/%s has no questions", genre, difficulty)
			for _, q := range bucket {
				assert.NotEmpty(t, q.Question, "%s/%s", genre, difficulty)
				assert.NotEmpty(t, q.Answer, "%s/%s", genre, difficulty)
			}
		}
	}
}
