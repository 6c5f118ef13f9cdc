package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/okan/courseatlas/internal/app/models"
	appRepos "github.com/okan/courseatlas/internal/app/repositories"
	"github.com/okan/courseatlas/internal/config"
	"github.com/okan/courseatlas/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// defaultSBCs are the curriculum requirement codes served by /sbcs.
// Seeded on every start so new codes land without a migration.
var defaultSBCs = []appModels.SBC{
	{Code: "ARTS", Name: "Arts", Description: "Engage with the arts through analysis or creative practice."},
	{Code: "CER", Name: "Ethical Reasoning", Description: "Practice and respect critical and ethical reasoning."},
	{Code: "DIV", Name: "Diversity", Description: "Engage questions of diversity in the United States."},
	{Code: "ESI", Name: "Evaluate and Synthesize Information", Description: "Evaluate and synthesize researched information."},
	{Code: "EXP", Name: "Experiential Learning", Description: "Apply learning beyond the classroom."},
	{Code: "GLO", Name: "Global Issues", Description: "Engage global issues across societies."},
	{Code: "HCA", Name: "Humanities and Cultural Analysis", Description: "Address problems using humanities methods."},
	{Code: "HFA+", Name: "Humanities and Fine Arts", Description: "Advanced work in the humanities and fine arts."},
	{Code: "LANG", Name: "Language", Description: "Communicate in a human language other than English."},
	{Code: "QPS", Name: "Quantitative Problem Solving", Description: "Master quantitative problem solving."},
	{Code: "SBS", Name: "Social and Behavioral Sciences", Description: "Address problems using social and behavioral science methods."},
	{Code: "SBS+", Name: "Social and Behavioral Sciences (Advanced)", Description: "Advanced work in the social and behavioral sciences."},
	{Code: "SNW", Name: "Study the Natural World", Description: "Study the natural world using scientific methods."},
	{Code: "SPK", Name: "Speak Effectively", Description: "Speak effectively before an audience."},
	{Code: "STAS", Name: "Science, Technology and Society", Description: "Understand relationships between science, technology and the arts."},
	{Code: "STEM+", Name: "STEM (Advanced)", Description: "Advanced work in science, technology, engineering or mathematics."},
	{Code: "TECH", Name: "Technology", Description: "Understand technology and apply it to problems."},
	{Code: "USA", Name: "United States", Description: "Understand the political, economic and social history of the United States."},
	{Code: "WRT", Name: "Write Effectively", Description: "Write effectively in English."},
	{Code: "WRTD", Name: "Write in the Discipline", Description: "Write effectively within one's discipline."},
}

// CreateDefaultData seeds the SBC definitions and the admin account, plus a
// small starter catalog when the courses table is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	sbcRepo := appRepos.NewSBCRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	var finalErr error

	for _, sbc := range defaultSBCs {
		if err := sbcRepo.Upsert(ctx, &sbc); err != nil {
			lgr.Error().Err(err).Str("code", sbc.Code).Msg("Error seeding SBC definition")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		hashed, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:        cfg.Admin.Email,
				PasswordHash: hashed,
				RoleType:     appModels.RoleAdmin,
			}
			err = userRepo.Create(ctx, admin)
			switch {
			case errors.Is(err, appRepos.ErrUserAlreadyExists):
				lgr.Debug().Msg("Admin user already exists, skipping creation")
			case err != nil:
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			default:
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created")
			}
		}
	}

	departments, err := courseRepo.ListDepartments(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking catalog state")
		return errors.Join(finalErr, err)
	}
	if len(departments) > 0 {
		return finalErr
	}

	lgr.Info().Msg("Catalog is empty, seeding starter courses...")
	if err := seedStarterCatalog(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// seedStarterCatalog inserts a handful of courses with section history so a
// fresh install has something to browse.
func seedStarterCatalog(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	sectionRepo := appRepos.NewSectionRepository(dbPool)
	linkRepo := appRepos.NewRedditLinkRepository(dbPool)

	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	courses := []appModels.Course{
		{
			Department:  "CSE",
			Number:      "114",
			Title:       "Introduction to Object-Oriented Programming",
			Description: strPtr("Procedural and object-oriented programming in Java with an emphasis on program structure and design."),
			Credits:     4,
			SBCs:        []string{"TECH"},
		},
		{
			Department:  "CSE",
			Number:      "214",
			Title:       "Data Structures",
			Description: strPtr("Lists, stacks, queues, trees, hashing and their use in problem solving."),
			Credits:     4,
			Prereqs:     strPtr("C or higher in CSE 114"),
		},
		{
			Department:  "CSE",
			Number:      "320",
			Title:       "System Fundamentals II",
			Description: strPtr("Systems-level programming: memory management, processes, concurrency and virtualization."),
			Credits:     4,
			Prereqs:     strPtr("C or higher in CSE 220"),
		},
		{
			Department:  "AMS",
			Number:      "210",
			Title:       "Applied Linear Algebra",
			Description: strPtr("Matrices, linear systems, eigenvalues and applications."),
			Credits:     3,
			SBCs:        []string{"QPS"},
		},
		{
			Department:  "WRT",
			Number:      "102",
			Title:       "Intermediate Writing Workshop",
			Description: strPtr("Analytic and argumentative writing across academic contexts."),
			Credits:     3,
			SBCs:        []string{"WRT"},
		},
	}

	var finalErr error
	for i := range courses {
		if err := courseRepo.Create(ctx, &courses[i]); err != nil {
			lgr.Error().Err(err).Str("course", courses[i].Code()).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if courses[2].ID > 0 {
		sections := []appModels.Section{
			{
				CourseID:    courses[2].ID,
				Semester:    "Spring 2025",
				SectionCode: "01",
				Instructor:  "E. Stark",
				Enrollment:  intPtr(93),
				Grades: &appModels.GradeDistribution{
					APlus: 8.6, A: 20.4, AMinus: 10.8, BPlus: 9.7, B: 14.0, BMinus: 7.5,
					CPlus: 6.5, C: 10.8, CMinus: 3.2, DPlus: 2.2, D: 2.2, F: 3.2, W: 1.1,
				},
			},
			{
				CourseID:    courses[2].ID,
				Semester:    "Fall 2024",
				SectionCode: "01",
				Instructor:  "E. Stark",
				Enrollment:  intPtr(88),
			},
		}
		for i := range sections {
			if err := sectionRepo.Create(ctx, &sections[i]); err != nil {
				lgr.Error().Err(err).Msg("Error seeding section")
				finalErr = errors.Join(finalErr, err)
			}
		}

		link := &appModels.RedditLink{
			CourseNumber: "CSE320",
			Title:        "How hard is CSE 320 really?",
			URL:          "https://www.reddit.com/r/SBU/comments/example/cse320_difficulty/",
		}
		if err := linkRepo.Create(ctx, link); err != nil {
			lgr.Error().Err(err).Msg("Error seeding discussion link")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
