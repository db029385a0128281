package models

// View-only types for the home screen sections. Friends and communities are
// static collections; posts are mutated locally (like counter) and never sent
// anywhere.

type Post struct {
	ID        int
	Author    string
	Avatar    string
	Content   string
	Likes     int
	Comments  int
	Timestamp string
}

type Friend struct {
	ID       int
	Name     string
	Avatar   string
	Status   string
	IsOnline bool
}

type Community struct {
	ID          int
	Name        string
	Members     int
	Description string
}
