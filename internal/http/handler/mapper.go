package handler

import (
	"time"

	"vocabapi/internal/model"
)

type FolderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FolderDeleteResponse struct {
	ID                 string `json:"id"`
	Cascade            bool   `json:"cascade"`
	AssignmentsRemoved int64  `json:"assignments_removed"`
}

type WordResponse struct {
	ID         string    `json:"id"`
	WordID     string    `json:"word_id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Example    *string   `json:"example"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignmentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	FolderID   string    `json:"folder_id"`
	WordID     string    `json:"word_id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Example    *string   `json:"example"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ImageResponse struct {
	WordID      string `json:"word_id"`
	ImageURL    string `json:"image_url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toFolderResponse(f model.Folder) FolderResponse {
	color, icon := f.Color, f.Icon
	if color == "" {
		color = model.DefaultFolderColor
	}
	if icon == "" {
		icon = model.DefaultFolderIcon
	}
	return FolderResponse{
		ID:          f.ID.String(),
		UserID:      f.UserID.String(),
		Name:        f.Name,
		Description: f.Description,
		Color:       color,
		Icon:        icon,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFolderResponses(items []model.Folder) []FolderResponse {
	out := make([]FolderResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFolderResponse(f))
	}
	return out
}

func toWordResponse(w model.Word) WordResponse {
	return WordResponse{
		ID:         w.ID.String(),
		WordID:     w.WordID,
		Word:       w.Word,
		Definition: w.Definition,
		Example:    w.Example,
		ImageURL:   w.ImageURL,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func toAssignmentResponse(a model.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		FolderID:   a.FolderID.String(),
		WordID:     a.WordID,
		Word:       a.Word,
		Definition: a.Definition,
		Example:    a.Example,
		ImageURL:   a.ImageURL,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAssignmentResponses(items []model.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAssignmentResponse(a))
	}
	return out
}

func toImageResponse(r model.ImageRef) ImageResponse {
	return ImageResponse{
		WordID:      r.WordID,
		ImageURL:    r.ImageURL,
		ContentType: r.ContentType,
		Size:        r.Size,
	}
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
