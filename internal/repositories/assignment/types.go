package assignment

import "github.com/jdramirez/giftmatch/internal/models"

// SaveAssignmentsInput contains parameters for saving the history
type SaveAssignmentsInput struct {
	Assignments []*models.Assignment
}
