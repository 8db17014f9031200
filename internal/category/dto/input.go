package dto

type CreateCategoryInput struct {
	Name        string
	Description string
}
