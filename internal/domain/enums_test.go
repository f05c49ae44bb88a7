package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidGenre(t *testing.T) {
	tests := []struct {
		genre string
		want  bool
	}{
		{"Jazz", true},
		{"R&B", true},
		{"Rock n Roll", true},
		{"Other", true},
		{"jazz", false},
		{"Polka", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.genre, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGenre(tt.genre))
		})
	}
}

func TestValidGenres(t *testing.T) {
	assert.True(t, ValidGenres([]string{"Jazz", "Classical"}))
	assert.False(t, ValidGenres([]string{"Jazz", "Polka"}))
	assert.True(t, ValidGenres(nil))
}

func TestValidState(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{"CA", true},
		{"NY", true},
		{"DC", true},
		{"ca", false},
		{"XX", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidState(tt.state))
		})
	}
}

func TestEnumListsComplete(t *testing.T) {
	assert.Len(t, Genres, 19)
	assert.Len(t, States, 51)

	for _, g := range Genres {
		assert.True(t, ValidGenre(g), g)
	}
	for _, s := range States {
		assert.True(t, ValidState(s), s)
	}
}
