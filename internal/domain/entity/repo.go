package entity

type Repository struct {
	ID          int64
	Name        string
	Description *string
	HTMLURL     string
}

// OwnReposGroup is the group key of the viewer's personal repositories.
const OwnReposGroup = "own"
