package entity

// Supplier representa un proveedor del almacén.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
}
