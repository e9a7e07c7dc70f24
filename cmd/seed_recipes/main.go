package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slastice/backend/config"
	"github.com/slastice/backend/internal/database"
	"github.com/slastice/backend/internal/service"
	"github.com/slastice/backend/internal/types"
)

type seedUser struct {
	name     string
	email    string
	password string
}

type seedRecipe struct {
	owner string // email of the seed user
	req   types.CreateRecipeRequest
}

var seedUsers = []seedUser{
	{name: "Ana Anić", email: "ana@slastice.hr", password: "lozinka123"},
	{name: "Ivo Ivić", email: "ivo@slastice.hr", password: "lozinka123"},
}

var seedRecipes = []seedRecipe{
	{
		owner: "ana@slastice.hr",
		req: types.CreateRecipeRequest{
			Name:         "Čokoladna torta",
			Ingredients:  []string{"200 g tamne čokolade", "150 g maslaca", "4 jaja", "150 g šećera", "100 g brašna"},
			Instructions: []string{"Istopiti čokoladu i maslac.", "Umutiti jaja sa šećerom.", "Sjediniti i umiješati brašno.", "Peći 25 minuta na 180 °C."},
			Servings:     8,
		},
	},
	{
		owner: "ana@slastice.hr",
		req: types.CreateRecipeRequest{
			Name:         "Palačinke",
			Ingredients:  []string{"250 g brašna", "2 jaja", "500 ml mlijeka", "prstohvat soli"},
			Instructions: []string{"Umutiti glatko tijesto.", "Peći tanke palačinke na vrućoj tavi."},
			Servings:     4,
		},
	},
	{
		owner: "ivo@slastice.hr",
		req: types.CreateRecipeRequest{
			Name:         "Fritule",
			Ingredients:  []string{"500 g brašna", "2 jaja", "100 g grožđica", "rum", "ulje za prženje"},
			Instructions: []string{"Zamijesiti tijesto i ostaviti da se diže.", "Žlicom oblikovati kuglice i pržiti do zlatne boje.", "Posuti šećerom u prahu."},
			Servings:     6,
		},
	},
	{
		owner: "ivo@slastice.hr",
		req: types.CreateRecipeRequest{
			Name:         "Jabučna pita",
			Ingredients:  []string{"300 g brašna", "150 g maslaca", "1 kg jabuka", "cimet", "šećer"},
			Instructions: []string{"Zamijesiti prhko tijesto.", "Naribati jabuke i pomiješati s cimetom.", "Složiti i peći 40 minuta na 180 °C."},
			Servings:     10,
		},
	},
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	ctx := context.Background()
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipes := service.NewRecipeService(db)

	owners := make(map[string]uuid.UUID, len(seedUsers))
	for _, u := range seedUsers {
		user, err := auth.Register(ctx, u.name, u.email, u.password)
		if errors.Is(err, service.ErrConflict) {
			logger.Info("user already seeded", zap.String("email", u.email))
			existing, _, err := auth.Login(ctx, u.email, u.password)
			if err != nil {
				logger.Fatal("failed to load seeded user", zap.String("email", u.email), zap.Error(err))
			}
			user = existing
		} else if err != nil {
			logger.Fatal("failed to seed user", zap.String("email", u.email), zap.Error(err))
		}
		owners[u.email] = user.ID
	}

	for _, r := range seedRecipes {
		ownerID, ok := owners[r.owner]
		if !ok {
			logger.Fatal("recipe references unknown seed user", zap.String("owner", r.owner))
		}
		req := r.req
		created, err := recipes.Create(ctx, ownerID, &req)
		if err != nil {
			logger.Fatal("failed to seed recipe", zap.String("name", r.req.Name), zap.Error(err))
		}
		logger.Info("seeded recipe", zap.String("name", created.Name), zap.String("id", created.ID.String()))
	}

	logger.Info("seeding complete",
		zap.Int("users", len(seedUsers)),
		zap.Int("recipes", len(seedRecipes)),
	)
}
