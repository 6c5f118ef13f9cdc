package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	SectionRepository    *SectionRepository
	ProfessorRepository  *ProfessorRepository
	RedditLinkRepository *RedditLinkRepository
	SyllabusRepository   *SyllabusRepository
	SBCRepository        *SBCRepository
	UserRepository       *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(db),
		SectionRepository:    NewSectionRepository(db),
		ProfessorRepository:  NewProfessorRepository(db),
		RedditLinkRepository: NewRedditLinkRepository(db),
		SyllabusRepository:   NewSyllabusRepository(db),
		SBCRepository:        NewSBCRepository(db),
		UserRepository:       NewUserRepository(db),
	}
}
