package db

import (
	"fmt"

	"gorm.io/gorm"
)

// cannedReplies is the fixed auto-reply set. Inserted once, never
// touched again.
var cannedReplies = []string{
	"Bonjour, je suis content que vous soyez intéressé par mon chat !",
	"Salut, mon chat est le plus mignon, voulez-vous en savoir plus ?",
	"Hello, avez-vous aussi un chat ? Le mien adore les câlins !",
	"Coucou, j'espère que vous aimez les chats joueurs !",
	"Mon chat et moi vous saluons !",
}

// demoProfiles are the demo cats shipped with a fresh database. IDs are
// fixed so photo filenames stay stable across reseeds.
var demoProfiles = []Profile{
	{
		ID: "b40ec084-925c-44a6-a5a6-d533e7397014", Name: "Minou", City: "Paris", Age: 3, Gender: "M",
		Description: "Je suis un vrai parisien, élégant et toujours à la recherche de câlins. J'adore observer les passants depuis la fenêtre et chasser les ombres. À la recherche d'une compagne pour des siestes partagées et des aventures dans les ruelles de Paris.",
	},
	{
		ID: "0881fc7c-3f06-4e1f-bf8c-21597eff596e", Name: "Félix", City: "Lyon", Age: 2, Gender: "M",
		Description: "Petit aventurier à quatre pattes, je suis un explorateur des pentes de Lyon. Joueur et curieux, j'aime grimper et découvrir de nouveaux horizons. J'aimerais rencontrer une chatte aussi curieuse que moi pour des escapades félines.",
	},
	{
		ID: "49a7e2dd-4513-4ef1-8acb-d1f8967bd5c9", Name: "Choupette", City: "Marseille", Age: 4, Gender: "F",
		Description: "Sous le soleil de Marseille, je suis une beauté raffinée au pelage doux comme la soie. J'aime me prélasser au soleil et savourer la tranquillité. Si tu aimes la dolce vita, rejoins-moi pour une vie de siestes au bord de la fenêtre.",
	},
	{
		ID: "befc7995-93eb-46f2-91b3-9fab3743dc98", Name: "Gribouille", City: "Toulouse", Age: 1, Gender: "M",
		Description: "Je suis un petit chaton plein d'énergie, toujours prêt pour une partie de chasse (de jouets) et une course-poursuite autour de la maison. J'adore les câlins mais seulement après une bonne séance de jeu. À la recherche d'une compagne tout aussi active !",
	},
	{
		ID: "6d394c43-9bf9-4f8a-8b0f-6ab8579fbfc3", Name: "Mimi", City: "Nice", Age: 5, Gender: "F",
		Description: "Doyenne de mon quartier à Nice, je suis une chatte élégante et un peu gourmande. J'adore les caresses et les moments de détente sur un coussin moelleux. Je cherche un compagnon calme et affectueux pour des moments de tendresse sous le soleil niçois.",
	},
	{
		ID: "0df44c15-448a-44ca-832f-a10e2c3ed6a0", Name: "Pacha", City: "Nantes", Age: 6, Gender: "M",
		Description: "Véritable roi de la maison, je suis un chat majestueux avec une grande personnalité. J'aime être le centre de l'attention et je sais me faire entendre quand j'ai envie de câlins ou de friandises. À la recherche d'une princesse féline pour régner à deux.",
	},
	{
		ID: "fdcf2670-c58b-4427-bb36-a6e0297f3609", Name: "Luna", City: "Bordeaux", Age: 3, Gender: "F",
		Description: "Mystérieuse et élégante, je suis la chatte parfaite pour ceux qui aiment le charme et la grâce. Je suis une grande fan des fenêtres ouvertes et des couchers de soleil. Si tu veux partager des moments calmes et doux, fais-moi signe.",
	},
	{
		ID: "9797aae8-7e00-49a7-9221-0e5678add447", Name: "Caramel", City: "Lille", Age: 4, Gender: "M",
		Description: "Je suis un chat à la personnalité chaleureuse, comme mon nom l'indique. J'aime les longues siestes et je suis toujours partant pour un bon repas. Je cherche une compagne affectueuse pour partager des moments doux et tranquilles.",
	},
	{
		ID: "bb254d89-4db1-49be-8cea-320a491cb4f3", Name: "Nala", City: "Strasbourg", Age: 2, Gender: "F",
		Description: "Curieuse et pleine de vie, j'adore explorer les coins de la maison et jouer avec tout ce qui bouge. Si tu es un chat actif à la recherche d'une partenaire pour des aventures félines, alors je suis la chatte qu'il te faut !",
	},
	{
		ID: "4fa73261-1006-4494-9b29-77984e283008", Name: "Tigrou", City: "Montpellier", Age: 1, Gender: "M",
		Description: "Petit tigre de Montpellier, je suis un chaton joueur avec un grand cœur. Je suis toujours en mouvement, prêt à courir, sauter et explorer. Si tu es aussi joueur que moi, on va bien s'entendre !",
	},
}

// Seed populates canned replies and demo profiles if their tables are
// empty. Safe to run on every startup; it never duplicates rows and is
// meant to complete before the server accepts traffic.
func Seed(db *gorm.DB) error {
	var count int64

	if err := db.Model(&CannedMessage{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count canned messages: %w", err)
	}
	if count == 0 {
		msgs := make([]CannedMessage, 0, len(cannedReplies))
		for _, content := range cannedReplies {
			msgs = append(msgs, CannedMessage{Content: content})
		}
		if err := db.Create(&msgs).Error; err != nil {
			return fmt.Errorf("failed to seed canned messages: %w", err)
		}
	}

	if err := db.Model(&Profile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count profiles: %w", err)
	}
	if count == 0 {
		profiles := make([]Profile, len(demoProfiles))
		copy(profiles, demoProfiles)
		for i := range profiles {
			photo := profiles[i].ID + ".png"
			profiles[i].Photo = &photo
		}
		if err := db.Create(&profiles).Error; err != nil {
			return fmt.Errorf("failed to seed profiles: %w", err)
		}
	}

	return nil
}
