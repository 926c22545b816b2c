package repository

import "github.com/Lieutenant23/Construapp/models"

// ProjectRepository defines the interface for project operations.
// Getters return (nil, nil) when the row does not exist.
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	ListProjectsByUser(userID int64) ([]*models.Project, error)
	GetProjectByID(id int64) (*models.Project, error)
	UpdateProject(project *models.Project) error
	// DeleteProjectCascade removes the project with its expenses and
	// attachment rows. Stored files are the caller's responsibility.
	DeleteProjectCascade(projectID int64) error
}
