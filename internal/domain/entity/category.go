package entity

// Category agrupa productos del catálogo.
type Category struct {
	ID   string
	Name string
}
