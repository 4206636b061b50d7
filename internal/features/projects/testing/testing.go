package projects_testing

import (
	"errors"
	"slices"
	"sync"
	"time"

	profiles_models "devcollab/internal/features/profiles/models"
	projects_enums "devcollab/internal/features/projects/enums"
	projects_models "devcollab/internal/features/projects/models"

	"github.com/google/uuid"
)

var ErrNetwork = errors.New("network error: failed to fetch")

type InMemoryProjectRepository struct {
	mu       sync.Mutex
	projects []*projects_models.Project
	likes    []projects_models.ProjectLike

	// FailWith makes every call return this error.
	FailWith    error
	FetchCalls  int
	InsertCalls int
}

func (r *InMemoryProjectRepository) CreateProject(project *projects_models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.InsertCalls++
	if r.FailWith != nil {
		return r.FailWith
	}

	copied := *project
	r.projects = append(r.projects, &copied)
	return nil
}

func (r *InMemoryProjectRepository) GetVisibleProjects(viewerID uuid.UUID) ([]*projects_models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.FetchCalls++
	if r.FailWith != nil {
		return nil, r.FailWith
	}

	result := []*projects_models.Project{}
	for _, project := range r.projects {
		if project.IsVisibleTo(viewerID) {
			result = append(result, r.joined(project))
		}
	}

	slices.SortStableFunc(result, func(a, b *projects_models.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r *InMemoryProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return nil, r.FailWith
	}

	for _, project := range r.projects {
		if project.ID == projectID {
			return r.joined(project), nil
		}
	}

	return nil, nil
}

func (r *InMemoryProjectRepository) CreateLike(like *projects_models.ProjectLike) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return r.FailWith
	}

	for _, existing := range r.likes {
		if existing.ProjectID == like.ProjectID && existing.UserID == like.UserID {
			return nil
		}
	}

	r.likes = append(r.likes, *like)
	return nil
}

func (r *InMemoryProjectRepository) DeleteLike(projectID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return r.FailWith
	}

	r.likes = slices.DeleteFunc(r.likes, func(like projects_models.ProjectLike) bool {
		return like.ProjectID == projectID && like.UserID == userID
	})
	return nil
}

func (r *InMemoryProjectRepository) CountLikes(projectID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailWith != nil {
		return 0, r.FailWith
	}

	return len(r.likesOf(projectID)), nil
}

// Projects returns the stored rows without joins.
func (r *InMemoryProjectRepository) Projects() []projects_models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]projects_models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		result = append(result, *project)
	}
	return result
}

// Seed stores a project as-is, including its Creator and Collaborators.
func (r *InMemoryProjectRepository) Seed(project *projects_models.Project) *projects_models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = projects_enums.ProjectStatusActive
	}

	r.projects = append(r.projects, project)
	return project
}

func (r *InMemoryProjectRepository) joined(project *projects_models.Project) *projects_models.Project {
	copied := *project
	copied.Likes = r.likesOf(project.ID)
	return &copied
}

func (r *InMemoryProjectRepository) likesOf(projectID uuid.UUID) []projects_models.ProjectLike {
	likes := []projects_models.ProjectLike{}
	for _, like := range r.likes {
		if like.ProjectID == projectID {
			likes = append(likes, like)
		}
	}
	return likes
}

// SeedSampleProjects stores the four showcase projects, oldest first, so the
// directory lists them TaskFlow first. The AI Code Review Assistant is
// private.
func SeedSampleProjects(repository *InMemoryProjectRepository) []*projects_models.Project {
	now := time.Now().UTC()

	samples := []struct {
		title       string
		description string
		author      string
		tags        []string
		isPrivate   bool
	}{
		{
			"DevPortfolio Generator",
			"Automatically generate stunning developer portfolios from GitHub data. Features customizable themes and one-click deployment.",
			"Alex Kim",
			[]string{"Next.js", "GitHub API", "Vercel", "Tailwind"},
			false,
		},
		{
			"EcoTrack - Sustainability Platform",
			"Track your carbon footprint and discover eco-friendly alternatives. Built with Vue.js and featuring beautiful data visualizations.",
			"Emma Rodriguez",
			[]string{"Vue.js", "TypeScript", "PostgreSQL", "AWS"},
			false,
		},
		{
			"AI Code Review Assistant",
			"An intelligent code review tool that uses machine learning to provide automated feedback and suggestions for code improvements.",
			"Marcus Johnson",
			[]string{"Python", "TensorFlow", "React", "FastAPI"},
			true,
		},
		{
			"TaskFlow - Project Management App",
			"A modern project management tool built with React and Node.js. Features real-time collaboration, task tracking, and team analytics.",
			"Sarah Chen",
			[]string{"React", "Node.js", "MongoDB", "Socket.io"},
			false,
		},
	}

	seeded := make([]*projects_models.Project, 0, len(samples))
	for i, sample := range samples {
		creatorID := uuid.New()
		description := sample.description
		fullName := sample.author

		seeded = append(seeded, repository.Seed(&projects_models.Project{
			CreatorID:   creatorID,
			Title:       sample.title,
			Description: &description,
			TechStack:   sample.tags,
			IsPrivate:   sample.isPrivate,
			CreatedAt:   now.Add(time.Duration(i-len(samples)) * time.Hour),
			Creator: &profiles_models.Profile{
				ID:       creatorID,
				Username: sample.author,
				FullName: &fullName,
			},
		}))
	}

	return seeded
}
