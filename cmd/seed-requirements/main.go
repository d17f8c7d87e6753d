package main

import (
	"context"
	"fmt"
	"time"

	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/database"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/logger"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/model"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/repository"
)

// seedRows are the known graduation requirement versions. Rows for new
// cohorts are added here as the university publishes them; unknown
// cohorts fall back to the 2023 baseline at resolve time.
var seedRows = []model.GraduationRequirement{
	{
		Cohort:       2023,
		Major:        "소프트웨어전공",
		TotalCredits: 140,
		GeneralEducation: model.GeneralEducationRequirement{
			Total: 42, Basic: 18, General: 9, Extended: 3, BasicScience: 12,
		},
		MajorCredits: model.MajorCreditRequirement{Total: 78, Required: 28, Elective: 50},
	},
	{
		Cohort:       2023,
		Major:        "인공지능전공",
		TotalCredits: 140,
		GeneralEducation: model.GeneralEducationRequirement{
			Total: 42, Basic: 18, General: 9, Extended: 3, BasicScience: 12,
		},
		MajorCredits: model.MajorCreditRequirement{Total: 38, Required: 3, Elective: 35},
	},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	repo := repository.NewRequirementRepository(pool)

	fmt.Printf("=== Seeding %d Graduation Requirements ===\n", len(seedRows))

	for i := range seedRows {
		row := seedRows[i]
		if err := repo.Upsert(ctx, &row); err != nil {
			log.Fatal().Err(err).
				Int("cohort", row.Cohort).
				Str("major", row.Major).
				Msg("Failed to seed requirement")
		}
		fmt.Printf("  %d %s (id=%d)\n", row.Cohort, row.Major, row.ID)
	}

	fmt.Println("Done.")
}
