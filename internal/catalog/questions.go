package catalog

import (
	"github.com/xxreen/MAID-BOT-24H/internal/models"
)

// Genres in the bank
const (
	GenreAnime = "anime"
	GenreGames = "games"
)

var questions = map[string]map[string][]models.QuizQuestion{
	GenreAnime: {
		DifficultyEasy: {
			{Question: "What is the name of the protagonist of Naruto?", Answer: "Naruto Uzumaki", Hint: "He is a ninja."},
			{Question: "Who is the protagonist of Dragon Ball?", Answer: "Goku", Hint: "He is a Saiyan."},
			{Question: "In One Piece, what is Luffy's crew called?", Answer: "Straw Hat Pirates", Hint: "Named after his hat."},
		},
		DifficultyMedium: {
			{Question: "In Attack on Titan, what surrounds the world the story starts in?", Answer: "Walls", Hint: "The outside is dangerous."},
			{Question: "What is Luffy's dream in One Piece?", Answer: "To become the Pirate King", Hint: "The top of all pirates."},
			{Question: "In Fullmetal Alchemist, what do the Elric brothers try to bring back?", Answer: "Their mother", Hint: "The reason for their bodies."},
		},
		DifficultyHard: {
			{Question: "What is the name of the protagonist of Cowboy Bebop?", Answer: "Spike Spiegel", Hint: "A bounty hunter in space."},
			{Question: "In Code Geass, what is the name of Lelouch's younger sister?", Answer: "Nunnally", Hint: "A kind girl."},
			{Question: "Who directed the film Akira?", Answer: "Katsuhiro Otomo", Hint: "He also wrote the manga."},
		},
	},
	GenreGames: {
		DifficultyEasy: {
			{Question: "What is the name of the princess Mario keeps rescuing?", Answer: "Peach", Hint: "A fruit."},
			{Question: "In Pokemon, what type is Pikachu?", Answer: "Electric", Hint: "Shocking."},
		},
		DifficultyMedium: {
			{Question: "What is the hero of The Legend of Zelda called?", Answer: "Link", Hint: "Not the princess."},
			{Question: "In Final Fantasy VII, what is the protagonist's name?", Answer: "Cloud Strife", Hint: "Weather-related."},
		},
		DifficultyHard: {
			{Question: "What year was the original Space Invaders released?", Answer: "1978", Hint: "Late seventies."},
			{Question: "Who composed the music for the original Super Mario Bros.?", Answer: "Koji Kondo", Hint: "Also wrote Zelda's theme."},
		},
	},
}
